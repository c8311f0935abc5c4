package services

import (
	"rentadmin/pkg/logger"
	"rentadmin/pkg/queue"

	"github.com/google/uuid"
)

// 全局事件队列，启动时注入；为空时事件发布自动关闭
var eventQueue *queue.RedisEventQueue

// SetEventQueue 设置全局事件队列
func SetEventQueue(q *queue.RedisEventQueue) {
	eventQueue = q
}

// publishEvent 在事务提交后尽力而为地发布事件。
// 发布失败只记日志，绝不影响已提交的变更
func publishEvent(eventType, entityType string, entityID, actorID uint, payload map[string]interface{}) {
	if eventQueue == nil {
		return
	}

	message := &queue.EventMessage{
		EventID:    uuid.New().String(),
		EventType:  eventType,
		EntityType: entityType,
		EntityID:   entityID,
		ActorID:    actorID,
		Payload:    payload,
	}

	if err := eventQueue.Enqueue(message); err != nil {
		logger.GetLogger().Warnf("发布事件失败 type=%s entity=%s/%d: %v", eventType, entityType, entityID, err)
	}
}
