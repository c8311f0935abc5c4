package handlers

import (
	"strconv"

	"rentadmin/internal/models"
	"rentadmin/internal/services"
	"rentadmin/pkg/pagination"
	"rentadmin/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type TenantUnitHandler struct {
	service *services.TenantUnitService
}

func NewTenantUnitHandler(service *services.TenantUnitService) *TenantUnitHandler {
	return &TenantUnitHandler{service: service}
}

// Assign 租客入住
func (h *TenantUnitHandler) Assign(c *gin.Context) {
	var req models.AssignTenantUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// 解析验证错误，提供更友好的提示
		if validationErr, ok := err.(validator.ValidationErrors); ok {
			errorMsg := "参数验证失败"
			for _, fieldErr := range validationErr {
				switch fieldErr.Field() {
				case "TenantID":
					errorMsg = "租客ID不能为空"
				case "UnitID":
					errorMsg = "单元ID不能为空"
				case "Rent":
					errorMsg = "租金不能为负数"
				case "Status":
					errorMsg = "入住状态只能是 pending 或 active"
				}
			}
			response.BadRequest(c, errorMsg)
			return
		}
		response.BadRequest(c, "参数错误")
		return
	}

	tenantUnit, err := h.service.Assign(currentClaims(c).UserID, &req)
	if err != nil {
		handleServiceError(c, err, "办理入住失败")
		return
	}

	response.Success(c, tenantUnit)
}

// EndTenancy 退租
func (h *TenantUnitHandler) EndTenancy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	tenantUnit, err := h.service.EndTenancy(uint(id), currentClaims(c).UserID)
	if err != nil {
		handleServiceError(c, err, "办理退租失败")
		return
	}

	response.SuccessWithMessage(c, "已退租", tenantUnit)
}

// GetByUnit 获取单元的入住记录（含历史）
func (h *TenantUnitHandler) GetByUnit(c *gin.Context) {
	unitID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	pageParams := pagination.ParsePageParams(c)

	tenantUnits, total, err := h.service.ListByUnit(uint(unitID), pageParams)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	pageInfo := pagination.NewPageInfo(pageParams.Page, pageParams.PageSize, total)
	response.SuccessWithPage(c, tenantUnits, pageInfo)
}
