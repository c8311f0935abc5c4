package handlers

import (
	"strconv"

	"rentadmin/internal/models"
	"rentadmin/internal/services"
	"rentadmin/pkg/pagination"
	"rentadmin/pkg/response"

	"github.com/gin-gonic/gin"
)

type TenantHandler struct {
	service *services.TenantService
}

func NewTenantHandler(service *services.TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

// Create 创建租客
func (h *TenantHandler) Create(c *gin.Context) {
	var req models.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	tenant, err := h.service.Create(&req)
	if err != nil {
		handleServiceError(c, err, "创建租客失败")
		return
	}

	response.Success(c, tenant)
}

// GetAll 获取租客列表
func (h *TenantHandler) GetAll(c *gin.Context) {
	pageParams := pagination.ParsePageParams(c)
	keyword := c.Query("keyword")

	tenants, total, err := h.service.List(pageParams, keyword)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	pageInfo := pagination.NewPageInfo(pageParams.Page, pageParams.PageSize, total)
	response.SuccessWithPage(c, tenants, pageInfo)
}

// GetByID 获取租客详情
func (h *TenantHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	tenant, err := h.service.GetByID(uint(id))
	if err != nil {
		handleServiceError(c, err, "查询失败")
		return
	}

	response.Success(c, tenant)
}

// Delete 删除租客，存在在住记录时拒绝
func (h *TenantHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	tenant, err := h.service.Delete(uint(id), currentClaims(c).UserID)
	if err != nil {
		handleServiceError(c, err, "删除租客失败")
		return
	}

	response.SuccessWithMessage(c, "租客已删除", tenant)
}
