package database

import (
	"rentadmin/internal/models"
	"rentadmin/pkg/logger"
)

// Migrate 执行数据库迁移
func Migrate() error {
	appLogger := logger.GetLogger()
	appLogger.Info("Starting database migration...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Unit{},
		&models.Tenant{},
		&models.TenantUnit{},
		&models.BlacklistEntry{},
		&models.Bill{},
		&models.Document{},
		&models.MaintenanceRequest{},
		&models.AuditLog{},
	)

	if err != nil {
		appLogger.Errorf("Database migration failed: %v", err)
		return err
	}

	appLogger.Info("Database migration completed successfully")

	// 种子数据初始化在 main.go 中单独调用，避免循环依赖

	return nil
}
