package handlers

import (
	"errors"

	apperrors "rentadmin/pkg/errors"
	"rentadmin/pkg/jwt"
	"rentadmin/pkg/response"

	"github.com/gin-gonic/gin"
)

// currentClaims 获取当前登录用户的JWT声明
func currentClaims(c *gin.Context) *jwt.JWTClaims {
	claims, _ := c.Get("claims")
	return claims.(*jwt.JWTClaims)
}

// handleServiceError 把服务层错误映射为统一返回格式
func handleServiceError(c *gin.Context, err error, fallback string) {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		switch svcErr.Code {
		case apperrors.ErrCodeNotFound:
			response.NotFound(c, svcErr.Message)
		case apperrors.ErrCodeAccessDenied:
			response.Forbidden(c, svcErr.Message)
		case apperrors.ErrCodeBusinessRule:
			response.BadRequest(c, svcErr.Message)
		case apperrors.ErrCodePropertyHasRelatedData:
			response.ErrorWithDetails(c, apperrors.CodeConflict, svcErr.Message, svcErr.Details)
		default:
			response.ServerError(c, svcErr.Message)
		}
		return
	}
	response.ServerError(c, fallback)
}
