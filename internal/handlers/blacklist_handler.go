package handlers

import (
	"strconv"

	"rentadmin/internal/models"
	"rentadmin/internal/services"
	"rentadmin/pkg/pagination"
	"rentadmin/pkg/response"

	"github.com/gin-gonic/gin"
)

type BlacklistHandler struct {
	service *services.BlacklistService
}

func NewBlacklistHandler(service *services.BlacklistService) *BlacklistHandler {
	return &BlacklistHandler{service: service}
}

// Create 加入黑名单
func (h *BlacklistHandler) Create(c *gin.Context) {
	var req models.CreateBlacklistEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	entry, err := h.service.Add(&req)
	if err != nil {
		handleServiceError(c, err, "加入黑名单失败")
		return
	}

	response.Success(c, entry)
}

// GetAll 获取黑名单列表
func (h *BlacklistHandler) GetAll(c *gin.Context) {
	pageParams := pagination.ParsePageParams(c)
	identityNumber := c.Query("identity_number")

	entries, total, err := h.service.List(pageParams, identityNumber)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	pageInfo := pagination.NewPageInfo(pageParams.Page, pageParams.PageSize, total)
	response.SuccessWithPage(c, entries, pageInfo)
}

// Delete 移出黑名单
func (h *BlacklistHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	if err := h.service.Remove(uint(id)); err != nil {
		handleServiceError(c, err, "移出黑名单失败")
		return
	}

	response.SuccessWithMessage(c, "已移出黑名单", nil)
}
