package router

import (
	"time"

	"rentadmin/internal/database"
	"rentadmin/internal/handlers"
	"rentadmin/internal/middleware"
	"rentadmin/internal/services"
	"rentadmin/pkg/response"

	"github.com/gin-gonic/gin"
)

// SetupRouter 设置路由
func SetupRouter() *gin.Engine {
	router := gin.New()

	// 中间件
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.SetupCORS())

	// 注册路由
	registerRoutes(router)
	return router
}

// 注册所有路由
func registerRoutes(router *gin.Engine) {
	db := database.GetDB()
	auth := middleware.NewAuthMiddleware(db)

	// API路由组
	api := router.Group("/api/v1")
	{
		// 健康检查接口
		api.GET("/health", healthCheck)
		api.GET("/ping", ping)

		// 认证路由
		authHandler := handlers.NewAuthHandler(services.NewUserService(db))
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.RefreshToken)
			authGroup.GET("/me", auth.RequireLogin(), authHandler.Me)
		}

		// 房产路由
		propertyHandler := handlers.NewPropertyHandler(services.NewPropertyService(db))
		unitHandler := handlers.NewUnitHandler(services.NewUnitService(db))
		properties := api.Group("/properties", auth.RequireLogin())
		{
			properties.POST("", propertyHandler.Create)
			properties.GET("", propertyHandler.GetAll)
			properties.GET("/:id", propertyHandler.GetByID)
			properties.PUT("/:id", propertyHandler.Update)
			// 删除前预检：关联数据快照
			properties.GET("/:id/related-data", propertyHandler.GetRelatedData)
			// 硬删除，?force=true 时连同关联数据一并删除
			properties.DELETE("/:id", propertyHandler.Delete)
			properties.GET("/:id/units", unitHandler.GetByProperty)
		}

		// 单元路由
		tenantUnitHandler := handlers.NewTenantUnitHandler(services.NewTenantUnitService(db))
		units := api.Group("/units", auth.RequireLogin())
		{
			units.POST("", unitHandler.Create)
			units.GET("/:id", unitHandler.GetByID)
			units.PUT("/:id", unitHandler.Update)
			units.DELETE("/:id", unitHandler.Delete)
			units.GET("/:id/tenant-units", tenantUnitHandler.GetByUnit)
		}

		// 租客路由
		tenantHandler := handlers.NewTenantHandler(services.NewTenantService(db))
		tenants := api.Group("/tenants", auth.RequireLogin())
		{
			tenants.POST("", tenantHandler.Create)
			tenants.GET("", tenantHandler.GetAll)
			tenants.GET("/:id", tenantHandler.GetByID)
			tenants.DELETE("/:id", tenantHandler.Delete)
		}

		// 入住/退租路由
		tenantUnits := api.Group("/tenant-units", auth.RequireLogin())
		{
			tenantUnits.POST("", tenantUnitHandler.Assign)
			tenantUnits.POST("/:id/end", tenantUnitHandler.EndTenancy)
		}

		// 黑名单路由（管理员）
		blacklistHandler := handlers.NewBlacklistHandler(services.NewBlacklistService(db))
		blacklist := api.Group("/blacklist", auth.RequireLogin(), auth.RequireAdmin())
		{
			blacklist.POST("", blacklistHandler.Create)
			blacklist.GET("", blacklistHandler.GetAll)
			blacklist.DELETE("/:id", blacklistHandler.Delete)
		}

		// 审计日志路由（管理员，只读）
		auditLogHandler := handlers.NewAuditLogHandler(services.NewAuditLogService(db))
		auditLogs := api.Group("/audit-logs", auth.RequireLogin(), auth.RequireAdmin())
		{
			auditLogs.GET("", auditLogHandler.GetAll)
		}

		// 事件实时推送（管理员）
		eventStreamHandler := handlers.NewEventStreamHandler()
		api.GET("/events/stream", auth.RequireLogin(), auth.RequireAdmin(), eventStreamHandler.Stream)
	}
}

// healthCheck 健康检查
func healthCheck(c *gin.Context) {
	response.Success(c, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// ping 连通性测试
func ping(c *gin.Context) {
	response.Success(c, gin.H{"message": "pong"})
}
