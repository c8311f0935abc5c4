package database

import (
	"sync"

	"rentadmin/pkg/config"
	"rentadmin/pkg/queue"
)

var (
	eventQueueInstance *queue.RedisEventQueue
	eventQueueOnce     sync.Once
)

// GetEventQueue 获取Redis事件队列的单例实例
func GetEventQueue() *queue.RedisEventQueue {
	eventQueueOnce.Do(func() {
		cfg := config.GetConfig()
		eventQueueInstance = queue.NewRedisEventQueue(&queue.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	})
	return eventQueueInstance
}

// CloseEventQueue 关闭Redis连接
func CloseEventQueue() error {
	if eventQueueInstance != nil {
		return eventQueueInstance.Close()
	}
	return nil
}
