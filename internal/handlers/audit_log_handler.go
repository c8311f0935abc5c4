package handlers

import (
	"strconv"

	"rentadmin/internal/services"
	"rentadmin/pkg/pagination"
	"rentadmin/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditLogHandler struct {
	service *services.AuditLogService
}

func NewAuditLogHandler(service *services.AuditLogService) *AuditLogHandler {
	return &AuditLogHandler{service: service}
}

// GetAll 分页查询审计日志
func (h *AuditLogHandler) GetAll(c *gin.Context) {
	pageParams := pagination.ParsePageParams(c)

	action := c.Query("action")
	entityType := c.Query("entity_type")

	var entityID uint
	if v := c.Query("entity_id"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			response.BadRequest(c, "entity_id格式错误")
			return
		}
		entityID = uint(parsed)
	}

	logs, total, err := h.service.List(pageParams, action, entityType, entityID)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	pageInfo := pagination.NewPageInfo(pageParams.Page, pageParams.PageSize, total)
	response.SuccessWithPage(c, logs, pageInfo)
}
