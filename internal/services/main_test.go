package services

import (
	"testing"
	"time"

	"rentadmin/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB 创建内存数据库并迁移全部模型
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
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
	require.NoError(t, err)

	return db
}

func uintPtr(v uint) *uint {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}

// createTestProperty 创建归属于actorID的房产
func createTestProperty(t *testing.T, db *gorm.DB, actorID uint) *models.Property {
	t.Helper()

	property := &models.Property{
		Name:      "测试公寓",
		Address:   "测试路1号",
		CreatorID: uintPtr(actorID),
		OwnerID:   uintPtr(actorID),
	}
	require.NoError(t, db.Create(property).Error)
	return property
}

// createTestUnit 在房产下创建单元
func createTestUnit(t *testing.T, db *gorm.DB, propertyID uint, status string) *models.Unit {
	t.Helper()

	unit := &models.Unit{
		PropertyID: propertyID,
		Name:       "101室",
		Price:      2000,
		Status:     status,
	}
	require.NoError(t, db.Create(unit).Error)
	return unit
}

// createTestTenant 创建租客
func createTestTenant(t *testing.T, db *gorm.DB, identityNumber, name string) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{
		IdentityNumber: identityNumber,
		Name:           name,
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}
