package services

import (
	"errors"
	"testing"

	"rentadmin/internal/models"
	"rentadmin/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRecordTxRollsBackWithMutation(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuditLogService(db)

	// 事务失败时审计记录必须一起回滚
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := service.RecordTx(tx, models.AuditActionDeleteUnit, models.AuditEntityUnit, 1, 1, "删除单元", nil); err != nil {
			return err
		}
		return errors.New("模拟事务失败")
	})
	require.Error(t, err)

	var count int64
	db.Model(&models.AuditLog{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRecordTxMetadata(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuditLogService(db)

	err := db.Transaction(func(tx *gorm.DB) error {
		return service.RecordTx(tx, models.AuditActionDeleteProperty, models.AuditEntityProperty, 7, 3, "删除房产",
			map[string]interface{}{"force_delete": true})
	})
	require.NoError(t, err)

	var entry models.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, uint(7), entry.EntityID)
	assert.Equal(t, uint(3), entry.ActorID)
	assert.Contains(t, string(entry.Metadata), `"force_delete":true`)
}

func TestAuditLogList(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuditLogService(db)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := service.RecordTx(tx, models.AuditActionDeleteProperty, models.AuditEntityProperty, 1, 1, "删除房产", nil); err != nil {
			return err
		}
		return service.RecordTx(tx, models.AuditActionDeleteUnit, models.AuditEntityUnit, 2, 1, "删除单元", nil)
	})
	require.NoError(t, err)

	params := &pagination.PageParams{Page: 1, PageSize: 10}

	logs, total, err := service.List(params, "", "", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, logs, 2)

	logs, total, err = service.List(params, models.AuditActionDeleteUnit, "", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, logs, 1)
	assert.Equal(t, models.AuditEntityUnit, logs[0].EntityType)

	logs, total, err = service.List(params, "", models.AuditEntityProperty, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, models.AuditActionDeleteProperty, logs[0].Action)
}
