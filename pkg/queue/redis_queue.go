package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisEventQueue 基于Redis的事件队列，供下游通知服务消费，
// 同时通过Pub/Sub向在线管理端实时广播
type RedisEventQueue struct {
	client *redis.Client
	prefix string
}

// EventMessage 队列中的事件消息
type EventMessage struct {
	EventID    string                 `json:"event_id"`
	EventType  string                 `json:"event_type"`  // 如 property.deleted / tenancy.ended
	EntityType string                 `json:"entity_type"` // property / unit / tenant / tenant_unit
	EntityID   uint                   `json:"entity_id"`
	ActorID    uint                   `json:"actor_id"` // 操作人ID
	Payload    map[string]interface{} `json:"payload"`
	Created    int64                  `json:"created"`
}

// Config Redis配置
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	Prefix   string
}

// NewRedisEventQueue 创建Redis事件队列实例
func NewRedisEventQueue(config *Config) *RedisEventQueue {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	prefix := config.Prefix
	if prefix == "" {
		prefix = "rentadmin:events"
	}

	return &RedisEventQueue{
		client: client,
		prefix: prefix,
	}
}

// Close 关闭Redis连接
func (q *RedisEventQueue) Close() error {
	return q.client.Close()
}

// Ping 测试Redis连接
func (q *RedisEventQueue) Ping() error {
	ctx := context.Background()
	return q.client.Ping(ctx).Err()
}

// Enqueue 将事件加入队列并广播
func (q *RedisEventQueue) Enqueue(message *EventMessage) error {
	ctx := context.Background()

	if message.Created == 0 {
		message.Created = time.Now().Unix()
	}

	// 序列化消息
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("序列化事件消息失败: %v", err)
	}

	// 加入队列（左侧入队）
	if err := q.client.LPush(ctx, q.queueKey(), data).Err(); err != nil {
		return fmt.Errorf("事件入队失败: %v", err)
	}

	// 广播给实时订阅者，失败不影响入队结果
	q.client.Publish(ctx, q.channelKey(), data)

	return nil
}

// Dequeue 从队列取出一条事件（右侧出队），超时返回redis.Nil
func (q *RedisEventQueue) Dequeue(timeout time.Duration) (*EventMessage, error) {
	ctx := context.Background()

	result, err := q.client.BRPop(ctx, timeout, q.queueKey()).Result()
	if err != nil {
		return nil, err
	}

	var message EventMessage
	if err := json.Unmarshal([]byte(result[1]), &message); err != nil {
		return nil, fmt.Errorf("反序列化事件消息失败: %v", err)
	}

	return &message, nil
}

// Subscribe 订阅实时事件广播
func (q *RedisEventQueue) Subscribe(ctx context.Context) *redis.PubSub {
	return q.client.Subscribe(ctx, q.channelKey())
}

// Len 获取队列长度
func (q *RedisEventQueue) Len() (int64, error) {
	ctx := context.Background()
	return q.client.LLen(ctx, q.queueKey()).Result()
}

func (q *RedisEventQueue) queueKey() string {
	return q.prefix + ":queue"
}

func (q *RedisEventQueue) channelKey() string {
	return q.prefix + ":channel"
}
