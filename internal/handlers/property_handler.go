package handlers

import (
	"strconv"

	"rentadmin/internal/models"
	"rentadmin/internal/services"
	"rentadmin/pkg/pagination"
	"rentadmin/pkg/response"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	service *services.PropertyService
}

func NewPropertyHandler(service *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// Create 创建房产
func (h *PropertyHandler) Create(c *gin.Context) {
	var req models.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	property, err := h.service.Create(currentClaims(c).UserID, &req)
	if err != nil {
		handleServiceError(c, err, "创建房产失败")
		return
	}

	response.Success(c, property)
}

// GetAll 获取当前用户名下的房产列表
func (h *PropertyHandler) GetAll(c *gin.Context) {
	pageParams := pagination.ParsePageParams(c)

	properties, total, err := h.service.ListByActor(currentClaims(c).UserID, pageParams)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	pageInfo := pagination.NewPageInfo(pageParams.Page, pageParams.PageSize, total)
	response.SuccessWithPage(c, properties, pageInfo)
}

// GetByID 获取房产详情
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	property, err := h.service.GetByID(uint(id))
	if err != nil {
		handleServiceError(c, err, "查询失败")
		return
	}

	response.Success(c, property)
}

// Update 更新房产
func (h *PropertyHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	var req models.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	property, err := h.service.Update(uint(id), currentClaims(c).UserID, &req)
	if err != nil {
		handleServiceError(c, err, "更新房产失败")
		return
	}

	response.Success(c, property)
}

// GetRelatedData 获取房产的关联数据快照（删除前预检）
func (h *PropertyHandler) GetRelatedData(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	snapshot, err := h.service.AuditRelatedData(uint(id))
	if err != nil {
		handleServiceError(c, err, "查询失败")
		return
	}

	response.Success(c, snapshot)
}

// Delete 删除房产，?force=true 时连同全部关联数据一并删除
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	force := c.Query("force") == "true"

	property, err := h.service.Delete(uint(id), currentClaims(c).UserID, force)
	if err != nil {
		handleServiceError(c, err, "删除房产失败")
		return
	}

	response.SuccessWithMessage(c, "房产已删除", property)
}
