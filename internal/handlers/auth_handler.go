package handlers

import (
	"rentadmin/internal/services"
	"rentadmin/pkg/jwt"
	"rentadmin/pkg/logger"
	"rentadmin/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService *services.UserService
	jwtManager  *jwt.JWTManager
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtManager:  jwt.GetJWTManager(),
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 用户登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	user, err := h.userService.GetByUsername(req.Username)
	if err != nil || !user.CheckPassword(req.Password) {
		response.Unauthorized(c, "用户名或密码错误")
		return
	}

	if !user.IsActive() {
		response.Unauthorized(c, "用户已被禁用")
		return
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		response.ServerError(c, "生成令牌失败")
		return
	}

	if err := h.userService.UpdateLastLogin(user.ID); err != nil {
		logger.GetLogger().Warnf("更新最后登录时间失败: %v", err)
	}

	response.Success(c, gin.H{
		"token": token,
		"user":  user,
	})
}

// RefreshRequest 刷新令牌请求
type RefreshRequest struct {
	Token string `json:"token" binding:"required"`
}

// RefreshToken 刷新令牌
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	token, err := h.jwtManager.RefreshToken(req.Token)
	if err != nil {
		response.Unauthorized(c, "Token无效或已过期")
		return
	}

	response.Success(c, gin.H{"token": token})
}

// Me 获取当前用户信息
func (h *AuthHandler) Me(c *gin.Context) {
	claims := currentClaims(c)

	user, err := h.userService.GetByID(claims.UserID)
	if err != nil {
		handleServiceError(c, err, "查询失败")
		return
	}

	response.Success(c, user)
}
