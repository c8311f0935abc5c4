package handlers

import (
	"context"
	"net/http"

	"rentadmin/internal/database"
	"rentadmin/pkg/config"
	"rentadmin/pkg/logger"
	"rentadmin/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// EventStreamHandler 事件流处理器：
// 把Redis广播的删除/入住/退租事件实时推给在线管理端
type EventStreamHandler struct {
	upgrader websocket.Upgrader
	log      *logrus.Logger
}

// NewEventStreamHandler 创建事件流处理器
func NewEventStreamHandler() *EventStreamHandler {
	cfg := config.GetConfig()
	allowedOrigins := cfg.CORS.AllowOrigins

	return &EventStreamHandler{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")

				// 同源请求Origin为空，允许
				if origin == "" {
					return true
				}

				for _, allowed := range allowedOrigins {
					if allowed == "*" || allowed == origin {
						return true
					}
				}

				logger.GetLogger().Warnf("WebSocket连接被拒绝，非法Origin: %s", origin)
				return false
			},
			ReadBufferSize:  1024 * 4,
			WriteBufferSize: 1024 * 4,
		},
		log: logger.GetLogger(),
	}
}

// Stream 升级为WebSocket连接并转发事件广播
func (h *EventStreamHandler) Stream(c *gin.Context) {
	eventQueue := database.GetEventQueue()
	if eventQueue == nil {
		response.ServerError(c, "事件通道未启用")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warnf("WebSocket升级失败: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	pubsub := eventQueue.Subscribe(ctx)
	defer pubsub.Close()

	// 读循环只用于感知客户端断开
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		}
	}
}
