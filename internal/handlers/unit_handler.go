package handlers

import (
	"strconv"

	"rentadmin/internal/models"
	"rentadmin/internal/services"
	"rentadmin/pkg/pagination"
	"rentadmin/pkg/response"

	"github.com/gin-gonic/gin"
)

type UnitHandler struct {
	service *services.UnitService
}

func NewUnitHandler(service *services.UnitService) *UnitHandler {
	return &UnitHandler{service: service}
}

// Create 创建单元
func (h *UnitHandler) Create(c *gin.Context) {
	var req models.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	unit, err := h.service.Create(currentClaims(c).UserID, &req)
	if err != nil {
		handleServiceError(c, err, "创建单元失败")
		return
	}

	response.Success(c, unit)
}

// GetByID 获取单元详情
func (h *UnitHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	unit, err := h.service.GetByID(uint(id))
	if err != nil {
		handleServiceError(c, err, "查询失败")
		return
	}

	response.Success(c, unit)
}

// GetByProperty 获取房产下的单元列表
func (h *UnitHandler) GetByProperty(c *gin.Context) {
	propertyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	pageParams := pagination.ParsePageParams(c)

	units, total, err := h.service.ListByProperty(uint(propertyID), pageParams)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	pageInfo := pagination.NewPageInfo(pageParams.Page, pageParams.PageSize, total)
	response.SuccessWithPage(c, units, pageInfo)
}

// Update 更新单元
func (h *UnitHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	var req models.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	unit, err := h.service.Update(uint(id), currentClaims(c).UserID, &req)
	if err != nil {
		handleServiceError(c, err, "更新单元失败")
		return
	}

	response.Success(c, unit)
}

// Delete 删除单元。在住中的单元会被拒绝；
// 历史入住记录随单元删除，账单/文档/维修工单保留并解除关联
func (h *UnitHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	unit, err := h.service.Delete(uint(id), currentClaims(c).UserID)
	if err != nil {
		handleServiceError(c, err, "删除单元失败")
		return
	}

	response.SuccessWithMessage(c, "单元已删除", unit)
}
