package services

import (
	"errors"
	"fmt"

	"rentadmin/internal/models"
	apperrors "rentadmin/pkg/errors"
	"rentadmin/pkg/pagination"

	"gorm.io/gorm"
)

// TenantService 租客服务
type TenantService struct {
	db       *gorm.DB
	auditLog *AuditLogService
}

// NewTenantService 创建租客服务
func NewTenantService(db *gorm.DB) *TenantService {
	return &TenantService{
		db:       db,
		auditLog: NewAuditLogService(db),
	}
}

// Create 创建租客，证件号为业务唯一键
func (s *TenantService) Create(req *models.CreateTenantRequest) (*models.Tenant, error) {
	var count int64
	if err := s.db.Model(&models.Tenant{}).
		Where("identity_number = ?", req.IdentityNumber).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.New(apperrors.ErrCodeBusinessRule, "证件号已存在")
	}

	tenant := &models.Tenant{
		IdentityNumber: req.IdentityNumber,
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
	}

	if err := s.db.Create(tenant).Error; err != nil {
		return nil, err
	}

	return tenant, nil
}

// GetByID 根据ID获取租客
func (s *TenantService) GetByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.db.First(&tenant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "租客不存在")
		}
		return nil, err
	}
	return &tenant, nil
}

// List 分页获取租客，支持按姓名或证件号模糊查询
func (s *TenantService) List(params *pagination.PageParams, keyword string) ([]models.Tenant, int64, error) {
	query := s.db.Model(&models.Tenant{})
	if keyword != "" {
		query = query.Where("name LIKE ? OR identity_number LIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tenants []models.Tenant
	err := query.Order("id DESC").
		Offset(params.GetOffset()).
		Limit(params.GetLimit()).
		Find(&tenants).Error
	return tenants, total, err
}

// Delete 删除租客。存在在住中的入住关联时拒绝执行；
// 历史入住记录保留不动。operatorID仅用于审计归属
func (s *TenantService) Delete(tenantID, operatorID uint) (*models.Tenant, error) {
	tenant, err := s.GetByID(tenantID)
	if err != nil {
		return nil, err
	}

	var activeCount int64
	if err := s.db.Model(&models.TenantUnit{}).
		Where("tenant_id = ? AND status IN ?", tenantID, models.OccupancyStatuses).
		Count(&activeCount).Error; err != nil {
		return nil, err
	}
	if activeCount > 0 {
		return nil, apperrors.New(apperrors.ErrCodeBusinessRule, "租客存在在住记录，请先办理退租")
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Tenant{}, tenantID).Error; err != nil {
			return err
		}

		return s.auditLog.RecordTx(tx,
			models.AuditActionDeleteTenant, models.AuditEntityTenant, tenantID, operatorID,
			fmt.Sprintf("删除租客 %s", tenant.Name),
			map[string]interface{}{
				"identity_number": tenant.IdentityNumber,
			})
	})
	if txErr != nil {
		return nil, txErr
	}

	publishEvent("tenant.deleted", models.AuditEntityTenant, tenantID, operatorID, map[string]interface{}{
		"name": tenant.Name,
	})

	return tenant, nil
}
