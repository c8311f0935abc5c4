package services

import (
	"testing"

	"rentadmin/internal/models"
	apperrors "rentadmin/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTenantDuplicateIdentity(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantService(db)

	_, err := service.Create(&models.CreateTenantRequest{IdentityNumber: "110101199001011234", Name: "张三"})
	require.NoError(t, err)

	_, err = service.Create(&models.CreateTenantRequest{IdentityNumber: "110101199001011234", Name: "李四"})
	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, apperrors.ErrCodeBusinessRule, svcErr.Code)
}

func TestRemoveTenant(t *testing.T) {
	db := setupTestDB(t)
	tenantService := NewTenantService(db)
	tenantUnitService := NewTenantUnitService(db)
	property := createTestProperty(t, db, 1)
	unit := createTestUnit(t, db, property.ID, models.UnitStatusVacant)
	tenant := createTestTenant(t, db, "110101199001011234", "张三")

	link, err := tenantUnitService.Assign(1, &models.AssignTenantUnitRequest{TenantID: tenant.ID, UnitID: unit.ID})
	require.NoError(t, err)

	// 在住中不可删除
	_, err = tenantService.Delete(tenant.ID, 1)
	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, apperrors.ErrCodeBusinessRule, svcErr.Code)

	// 退租后可以删除
	_, err = tenantUnitService.EndTenancy(link.ID, 1)
	require.NoError(t, err)

	deleted, err := tenantService.Delete(tenant.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, deleted.ID)

	_, err = tenantService.GetByID(tenant.ID)
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, svcErr.Code)

	// 历史入住记录保留
	var linkCount int64
	db.Model(&models.TenantUnit{}).Where("tenant_id = ?", tenant.ID).Count(&linkCount)
	assert.Equal(t, int64(1), linkCount)

	// 删除动作落审计
	var auditCount int64
	db.Model(&models.AuditLog{}).
		Where("action = ? AND entity_id = ?", models.AuditActionDeleteTenant, tenant.ID).
		Count(&auditCount)
	assert.Equal(t, int64(1), auditCount)
}

func TestRemoveTenantNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantService(db)

	_, err := service.Delete(999, 1)
	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, svcErr.Code)
}
