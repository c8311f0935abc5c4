package services

import (
	"testing"
	"time"

	"rentadmin/internal/models"
	apperrors "rentadmin/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteUnitNullOutCascade(t *testing.T) {
	db := setupTestDB(t)
	service := NewUnitService(db)
	property := createTestProperty(t, db, 1)
	unit := createTestUnit(t, db, property.ID, models.UnitStatusVacant)

	// 两条历史入住记录 + 关联的账单/文档/维修工单
	require.NoError(t, db.Create(&models.TenantUnit{TenantID: 1, UnitID: unit.ID, Status: models.TenantUnitStatusTerminated, MoveInDate: time.Now().AddDate(-1, 0, 0)}).Error)
	require.NoError(t, db.Create(&models.TenantUnit{TenantID: 2, UnitID: unit.ID, Status: models.TenantUnitStatusExpired, MoveInDate: time.Now().AddDate(-2, 0, 0)}).Error)
	require.NoError(t, db.Create(&models.Bill{BillNo: "B-001", PropertyID: property.ID, UnitID: &unit.ID, Amount: 2000}).Error)
	require.NoError(t, db.Create(&models.Document{PropertyID: property.ID, UnitID: &unit.ID, Name: "租赁合同"}).Error)
	require.NoError(t, db.Create(&models.MaintenanceRequest{PropertyID: property.ID, UnitID: &unit.ID, Title: "修门锁"}).Error)

	deleted, err := service.Delete(unit.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, unit.ID, deleted.ID)

	// 单元和历史入住记录硬删除
	var count int64
	db.Model(&models.Unit{}).Where("id = ?", unit.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&models.TenantUnit{}).Where("unit_id = ?", unit.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// 账单保留，仅解除关联并追加备注
	var bill models.Bill
	require.NoError(t, db.Where("bill_no = ?", "B-001").First(&bill).Error)
	assert.Nil(t, bill.UnitID)
	assert.Contains(t, bill.Remark, "关联单元已删除")
	assert.Contains(t, bill.Remark, unit.Name)

	// 文档仅解除关联
	var document models.Document
	require.NoError(t, db.Where("property_id = ?", property.ID).First(&document).Error)
	assert.Nil(t, document.UnitID)

	// 维修工单保留，解除关联并追加备注
	var request models.MaintenanceRequest
	require.NoError(t, db.Where("property_id = ?", property.ID).First(&request).Error)
	assert.Nil(t, request.UnitID)
	assert.Contains(t, request.Remark, "关联单元已删除")

	// 审计记录携带各类数据计数
	var entry models.AuditLog
	require.NoError(t, db.Where("action = ?", models.AuditActionDeleteUnit).First(&entry).Error)
	assert.Contains(t, string(entry.Metadata), `"tenant_units":2`)
	assert.Contains(t, string(entry.Metadata), `"bills":1`)
}

func TestDeleteUnitActiveTenancyBlocked(t *testing.T) {
	db := setupTestDB(t)
	service := NewUnitService(db)
	property := createTestProperty(t, db, 1)
	unit := createTestUnit(t, db, property.ID, models.UnitStatusOccupied)

	require.NoError(t, db.Create(&models.TenantUnit{TenantID: 1, UnitID: unit.ID, Status: models.TenantUnitStatusActive, MoveInDate: time.Now()}).Error)
	require.NoError(t, db.Create(&models.Bill{BillNo: "B-001", PropertyID: property.ID, UnitID: &unit.ID, Amount: 2000}).Error)

	_, err := service.Delete(unit.ID, 1)
	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, apperrors.ErrCodeBusinessRule, svcErr.Code)

	// 任何行都未被改动
	var count int64
	db.Model(&models.Unit{}).Where("id = ?", unit.ID).Count(&count)
	assert.Equal(t, int64(1), count)
	db.Model(&models.TenantUnit{}).Where("unit_id = ?", unit.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	var bill models.Bill
	require.NoError(t, db.Where("bill_no = ?", "B-001").First(&bill).Error)
	assert.NotNil(t, bill.UnitID)
}

func TestDeleteUnitRenewedTenancyBlocked(t *testing.T) {
	db := setupTestDB(t)
	service := NewUnitService(db)
	property := createTestProperty(t, db, 1)
	unit := createTestUnit(t, db, property.ID, models.UnitStatusOccupied)

	// renewed视为在住，同样阻止删除
	require.NoError(t, db.Create(&models.TenantUnit{TenantID: 1, UnitID: unit.ID, Status: models.TenantUnitStatusRenewed, MoveInDate: time.Now()}).Error)

	_, err := service.Delete(unit.ID, 1)
	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, apperrors.ErrCodeBusinessRule, svcErr.Code)
}

func TestDeleteUnitNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewUnitService(db)

	_, err := service.Delete(999, 1)
	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, svcErr.Code)
}

func TestDeleteUnitAccessDenied(t *testing.T) {
	db := setupTestDB(t)
	service := NewUnitService(db)
	property := createTestProperty(t, db, 1)
	unit := createTestUnit(t, db, property.ID, models.UnitStatusVacant)

	_, err := service.Delete(unit.ID, 99)
	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, apperrors.ErrCodeAccessDenied, svcErr.Code)
}

func TestUpdateUnitStatusGuard(t *testing.T) {
	db := setupTestDB(t)
	service := NewUnitService(db)
	property := createTestProperty(t, db, 1)
	unit := createTestUnit(t, db, property.ID, models.UnitStatusVacant)

	// 在住状态由入住流转维护，不允许手动写入
	_, err := service.Update(unit.ID, 1, &models.UpdateUnitRequest{Status: models.UnitStatusOccupied})
	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, apperrors.ErrCodeBusinessRule, svcErr.Code)

	// 非在住状态之间允许调整
	_, err = service.Update(unit.ID, 1, &models.UpdateUnitRequest{Status: models.UnitStatusMaintenance})
	require.NoError(t, err)

	var updated models.Unit
	require.NoError(t, db.First(&updated, unit.ID).Error)
	assert.Equal(t, models.UnitStatusMaintenance, updated.Status)
}
