package services

import (
	"testing"
	"time"

	"rentadmin/internal/models"
	apperrors "rentadmin/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignSetsUnitOccupied(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantUnitService(db)
	property := createTestProperty(t, db, 1)
	unit := createTestUnit(t, db, property.ID, models.UnitStatusVacant)
	tenant := createTestTenant(t, db, "110101199001011234", "张三")

	tenantUnit, err := service.Assign(1, &models.AssignTenantUnitRequest{
		TenantID:     tenant.ID,
		UnitID:       unit.ID,
		IsMainTenant: true,
		Rent:         2000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TenantUnitStatusActive, tenantUnit.Status)
	assert.True(t, tenantUnit.IsMainTenant)

	var updated models.Unit
	require.NoError(t, db.First(&updated, unit.ID).Error)
	assert.Equal(t, models.UnitStatusOccupied, updated.Status)

	// 入住动作落审计
	var auditCount int64
	db.Model(&models.AuditLog{}).Where("action = ?", models.AuditActionAssignTenant).Count(&auditCount)
	assert.Equal(t, int64(1), auditCount)
}

func TestAssignPendingDoesNotOccupy(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantUnitService(db)
	property := createTestProperty(t, db, 1)
	unit := createTestUnit(t, db, property.ID, models.UnitStatusVacant)
	tenant := createTestTenant(t, db, "110101199001011234", "张三")

	_, err := service.Assign(1, &models.AssignTenantUnitRequest{
		TenantID: tenant.ID,
		UnitID:   unit.ID,
		Status:   models.TenantUnitStatusPending,
	})
	require.NoError(t, err)

	var updated models.Unit
	require.NoError(t, db.First(&updated, unit.ID).Error)
	assert.Equal(t, models.UnitStatusVacant, updated.Status)
}

func TestAssignBlacklisted(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantUnitService(db)
	property := createTestProperty(t, db, 1)
	unit := createTestUnit(t, db, property.ID, models.UnitStatusVacant)
	tenant := createTestTenant(t, db, "110101199001011234", "张三")

	// 永久黑名单
	require.NoError(t, db.Create(&models.BlacklistEntry{IdentityNumber: tenant.IdentityNumber, Reason: "恶意欠租"}).Error)

	_, err := service.Assign(1, &models.AssignTenantUnitRequest{TenantID: tenant.ID, UnitID: unit.ID})
	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, apperrors.ErrCodeBusinessRule, svcErr.Code)

	// 条目过期后允许入住
	require.NoError(t, db.Model(&models.BlacklistEntry{}).
		Where("identity_number = ?", tenant.IdentityNumber).
		Update("expiry_date", time.Now().AddDate(0, 0, -1)).Error)

	_, err = service.Assign(1, &models.AssignTenantUnitRequest{TenantID: tenant.ID, UnitID: unit.ID})
	require.NoError(t, err)
}

func TestAssignDuplicate(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantUnitService(db)
	property := createTestProperty(t, db, 1)
	unit := createTestUnit(t, db, property.ID, models.UnitStatusVacant)
	tenant := createTestTenant(t, db, "110101199001011234", "张三")

	_, err := service.Assign(1, &models.AssignTenantUnitRequest{TenantID: tenant.ID, UnitID: unit.ID})
	require.NoError(t, err)

	// 同租客同单元在住中，重复入住被拒
	_, err = service.Assign(1, &models.AssignTenantUnitRequest{TenantID: tenant.ID, UnitID: unit.ID})
	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, apperrors.ErrCodeBusinessRule, svcErr.Code)
}

func TestAssignNotFoundAndAccessDenied(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantUnitService(db)
	property := createTestProperty(t, db, 1)
	unit := createTestUnit(t, db, property.ID, models.UnitStatusVacant)
	tenant := createTestTenant(t, db, "110101199001011234", "张三")

	var svcErr *apperrors.ServiceError

	_, err := service.Assign(1, &models.AssignTenantUnitRequest{TenantID: 999, UnitID: unit.ID})
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, svcErr.Code)

	_, err = service.Assign(1, &models.AssignTenantUnitRequest{TenantID: tenant.ID, UnitID: 999})
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, svcErr.Code)

	_, err = service.Assign(99, &models.AssignTenantUnitRequest{TenantID: tenant.ID, UnitID: unit.ID})
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, apperrors.ErrCodeAccessDenied, svcErr.Code)
}

func TestEndTenancyMultipleTenants(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantUnitService(db)
	property := createTestProperty(t, db, 1)
	unit := createTestUnit(t, db, property.ID, models.UnitStatusVacant)
	tenantA := createTestTenant(t, db, "110101199001011234", "张三")
	tenantB := createTestTenant(t, db, "110101199002022345", "李四")

	linkA, err := service.Assign(1, &models.AssignTenantUnitRequest{TenantID: tenantA.ID, UnitID: unit.ID, IsMainTenant: true})
	require.NoError(t, err)
	linkB, err := service.Assign(1, &models.AssignTenantUnitRequest{TenantID: tenantB.ID, UnitID: unit.ID})
	require.NoError(t, err)

	// 退掉A，B仍在住，单元保持在住
	ended, err := service.EndTenancy(linkA.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, models.TenantUnitStatusTerminated, ended.Status)
	require.NotNil(t, ended.MoveOutDate)

	var updated models.Unit
	require.NoError(t, db.First(&updated, unit.ID).Error)
	assert.Equal(t, models.UnitStatusOccupied, updated.Status)

	// 退掉B后单元回到空置
	_, err = service.EndTenancy(linkB.ID, 1)
	require.NoError(t, err)

	require.NoError(t, db.First(&updated, unit.ID).Error)
	assert.Equal(t, models.UnitStatusVacant, updated.Status)

	// 已结束的关联不能再退
	_, err = service.EndTenancy(linkA.ID, 1)
	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, apperrors.ErrCodeBusinessRule, svcErr.Code)
}

func TestEndTenancyRenewedKeepsUnitOccupied(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantUnitService(db)
	property := createTestProperty(t, db, 1)
	unit := createTestUnit(t, db, property.ID, models.UnitStatusVacant)
	tenantA := createTestTenant(t, db, "110101199001011234", "张三")
	tenantB := createTestTenant(t, db, "110101199002022345", "李四")

	linkA, err := service.Assign(1, &models.AssignTenantUnitRequest{TenantID: tenantA.ID, UnitID: unit.ID})
	require.NoError(t, err)
	linkB, err := service.Assign(1, &models.AssignTenantUnitRequest{TenantID: tenantB.ID, UnitID: unit.ID})
	require.NoError(t, err)

	// A续租：renewed视为新的在住周期
	require.NoError(t, db.Model(&models.TenantUnit{}).Where("id = ?", linkA.ID).
		Update("status", models.TenantUnitStatusRenewed).Error)

	_, err = service.EndTenancy(linkB.ID, 1)
	require.NoError(t, err)

	var updated models.Unit
	require.NoError(t, db.First(&updated, unit.ID).Error)
	assert.Equal(t, models.UnitStatusOccupied, updated.Status)
}

func TestEndTenancyNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantUnitService(db)

	_, err := service.EndTenancy(999, 1)
	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, svcErr.Code)
}

func TestExpireOverdue(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantUnitService(db)
	property := createTestProperty(t, db, 1)
	unit := createTestUnit(t, db, property.ID, models.UnitStatusOccupied)
	tenant := createTestTenant(t, db, "110101199001011234", "张三")

	// 约定的退租日期已过，但状态仍为在住
	link := &models.TenantUnit{
		TenantID:    tenant.ID,
		UnitID:      unit.ID,
		Status:      models.TenantUnitStatusActive,
		MoveInDate:  time.Now().AddDate(-1, 0, 0),
		MoveOutDate: timePtr(time.Now().AddDate(0, 0, -1)),
	}
	require.NoError(t, db.Create(link).Error)

	expired, err := service.ExpireOverdue(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), expired)

	var updatedLink models.TenantUnit
	require.NoError(t, db.First(&updatedLink, link.ID).Error)
	assert.Equal(t, models.TenantUnitStatusExpired, updatedLink.Status)

	var updatedUnit models.Unit
	require.NoError(t, db.First(&updatedUnit, unit.ID).Error)
	assert.Equal(t, models.UnitStatusVacant, updatedUnit.Status)
}
