package main

import (
	"fmt"

	"rentadmin/internal/database"
	"rentadmin/internal/models"
	"rentadmin/pkg/logger"

	"gorm.io/gorm"
)

// seedData 初始化种子数据
func seedData() error {
	appLogger := logger.GetLogger()
	appLogger.Info("Starting seed data initialization...")

	db := database.GetDB()

	if err := createDefaultAdmin(db); err != nil {
		return fmt.Errorf("创建默认管理员失败: %v", err)
	}

	appLogger.Info("Seed data initialization completed successfully")
	return nil
}

// createDefaultAdmin 创建默认管理员用户
func createDefaultAdmin(db *gorm.DB) error {
	var count int64
	db.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	if count > 0 {
		logger.GetLogger().Info("默认管理员已存在，跳过创建")
		return nil
	}

	admin := &models.User{
		Username: "admin",
		Email:    "admin@rentadmin.local",
		Name:     "系统管理员",
		Status:   models.UserStatusActive,
		IsAdmin:  true,
	}

	if err := admin.SetPassword("Admin@123"); err != nil {
		return err
	}

	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.GetLogger().Info("默认管理员已创建: admin / Admin@123，请尽快修改密码")
	return nil
}
