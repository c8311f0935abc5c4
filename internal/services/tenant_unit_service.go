package services

import (
	"errors"
	"fmt"
	"time"

	"rentadmin/internal/models"
	apperrors "rentadmin/pkg/errors"
	"rentadmin/pkg/pagination"

	"gorm.io/gorm"
)

// TenantUnitService 入住关联服务，维护租客入住/退租的状态流转，
// 并以此推导单元的在住状态
type TenantUnitService struct {
	db        *gorm.DB
	auditLog  *AuditLogService
	blacklist *BlacklistService
}

// NewTenantUnitService 创建入住关联服务
func NewTenantUnitService(db *gorm.DB) *TenantUnitService {
	return &TenantUnitService{
		db:        db,
		auditLog:  NewAuditLogService(db),
		blacklist: NewBlacklistService(db),
	}
}

// Assign 租客入住。前置校验：租客和单元存在、操作人对单元所属房产有权限、
// 租客证件号未命中未过期黑名单、同租客同单元没有在住中的关联。
// 重复入住在事务内复查，避免并发下双写
func (s *TenantUnitService) Assign(actorID uint, req *models.AssignTenantUnitRequest) (*models.TenantUnit, error) {
	var tenant models.Tenant
	if err := s.db.First(&tenant, req.TenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "租客不存在")
		}
		return nil, err
	}

	var unit models.Unit
	if err := s.db.Preload("Property").First(&unit, req.UnitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "单元不存在")
		}
		return nil, err
	}

	if !CanManageProperty(actorID, unit.Property) {
		return nil, apperrors.New(apperrors.ErrCodeAccessDenied, "无权操作该单元")
	}

	blacklisted, err := s.blacklist.IsBlacklisted(tenant.IdentityNumber, time.Now())
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, apperrors.New(apperrors.ErrCodeBusinessRule, "租客在黑名单中，禁止办理入住")
	}

	moveInDate := time.Now()
	if req.MoveInDate != nil {
		moveInDate = *req.MoveInDate
	}

	status := req.Status
	if status == "" {
		status = models.TenantUnitStatusActive
	}

	tenantUnit := &models.TenantUnit{
		TenantID:     req.TenantID,
		UnitID:       req.UnitID,
		Status:       status,
		MoveInDate:   moveInDate,
		IsMainTenant: req.IsMainTenant,
		Rent:         req.Rent,
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		// 事务内复查重复入住
		var count int64
		if err := tx.Model(&models.TenantUnit{}).
			Where("tenant_id = ? AND unit_id = ?", req.TenantID, req.UnitID).
			Where("status IN ?", models.OccupancyStatuses).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.New(apperrors.ErrCodeBusinessRule, "该租客已入住此单元")
		}

		if err := tx.Create(tenantUnit).Error; err != nil {
			return err
		}

		if tenantUnit.IsOccupying() && unit.Status != models.UnitStatusOccupied {
			if err := tx.Model(&models.Unit{}).Where("id = ?", unit.ID).
				Update("status", models.UnitStatusOccupied).Error; err != nil {
				return err
			}
		}

		return s.auditLog.RecordTx(tx,
			models.AuditActionAssignTenant, models.AuditEntityTenantUnit, tenantUnit.ID, actorID,
			fmt.Sprintf("租客 %s 入住单元 %s", tenant.Name, unit.Name),
			map[string]interface{}{
				"tenant_id": tenant.ID,
				"unit_id":   unit.ID,
				"status":    status,
			})
	})
	if txErr != nil {
		return nil, txErr
	}

	publishEvent("tenancy.assigned", models.AuditEntityTenantUnit, tenantUnit.ID, actorID, map[string]interface{}{
		"tenant_id": tenant.ID,
		"unit_id":   unit.ID,
	})

	return tenantUnit, nil
}

// EndTenancy 退租。仅在住中的关联可退；退租后重算该单元的在住数，
// 没有其他在住租客时才把单元置回空置（支持一单元多租客）
func (s *TenantUnitService) EndTenancy(tenantUnitID, actorID uint) (*models.TenantUnit, error) {
	var tenantUnit models.TenantUnit
	if err := s.db.Preload("Unit.Property").Preload("Tenant").First(&tenantUnit, tenantUnitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "入住记录不存在")
		}
		return nil, err
	}

	if tenantUnit.Unit == nil {
		return nil, apperrors.New(apperrors.ErrCodeNotFound, "单元不存在")
	}

	if !CanManageProperty(actorID, tenantUnit.Unit.Property) {
		return nil, apperrors.New(apperrors.ErrCodeAccessDenied, "无权操作该入住记录")
	}

	if !tenantUnit.IsOccupying() {
		return nil, apperrors.New(apperrors.ErrCodeBusinessRule, "该入住记录已结束")
	}

	now := time.Now()

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&tenantUnit).Updates(map[string]interface{}{
			"status":        models.TenantUnitStatusTerminated,
			"move_out_date": now,
		}).Error; err != nil {
			return err
		}

		// 重算单元在住数，仍有其他在住租客时不改单元状态
		var remaining int64
		if err := tx.Model(&models.TenantUnit{}).
			Where("unit_id = ? AND id <> ?", tenantUnit.UnitID, tenantUnit.ID).
			Where("status IN ?", models.OccupancyStatuses).
			Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			if err := tx.Model(&models.Unit{}).Where("id = ?", tenantUnit.UnitID).
				Update("status", models.UnitStatusVacant).Error; err != nil {
				return err
			}
		}

		return s.auditLog.RecordTx(tx,
			models.AuditActionEndTenancy, models.AuditEntityTenantUnit, tenantUnit.ID, actorID,
			fmt.Sprintf("单元 %s 退租", tenantUnit.Unit.Name),
			map[string]interface{}{
				"tenant_id": tenantUnit.TenantID,
				"unit_id":   tenantUnit.UnitID,
			})
	})
	if txErr != nil {
		return nil, txErr
	}

	tenantUnit.Status = models.TenantUnitStatusTerminated
	tenantUnit.MoveOutDate = &now

	publishEvent("tenancy.ended", models.AuditEntityTenantUnit, tenantUnit.ID, actorID, map[string]interface{}{
		"tenant_id": tenantUnit.TenantID,
		"unit_id":   tenantUnit.UnitID,
	})

	return &tenantUnit, nil
}

// ListByUnit 分页获取单元的入住记录（含历史）
func (s *TenantUnitService) ListByUnit(unitID uint, params *pagination.PageParams) ([]models.TenantUnit, int64, error) {
	query := s.db.Model(&models.TenantUnit{}).Where("unit_id = ?", unitID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tenantUnits []models.TenantUnit
	err := query.Preload("Tenant").Order("id DESC").
		Offset(params.GetOffset()).
		Limit(params.GetLimit()).
		Find(&tenantUnits).Error
	return tenantUnits, total, err
}

// ExpireOverdue 将已过退租日期仍在住的关联置为到期，并重算受影响单元的状态。
// 由调度器周期调用，返回到期的关联数
func (s *TenantUnitService) ExpireOverdue(now time.Time) (int64, error) {
	var due []models.TenantUnit
	if err := s.db.Where("status IN ?", models.OccupancyStatuses).
		Where("move_out_date IS NOT NULL AND move_out_date < ?", now).
		Find(&due).Error; err != nil {
		return 0, err
	}
	if len(due) == 0 {
		return 0, nil
	}

	unitIDs := make(map[uint]struct{})
	for _, tu := range due {
		unitIDs[tu.UnitID] = struct{}{}
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		for _, tu := range due {
			if err := tx.Model(&models.TenantUnit{}).Where("id = ?", tu.ID).
				Update("status", models.TenantUnitStatusExpired).Error; err != nil {
				return err
			}
		}

		for unitID := range unitIDs {
			var remaining int64
			if err := tx.Model(&models.TenantUnit{}).
				Where("unit_id = ? AND status IN ?", unitID, models.OccupancyStatuses).
				Count(&remaining).Error; err != nil {
				return err
			}
			if remaining == 0 {
				if err := tx.Model(&models.Unit{}).
					Where("id = ? AND status = ?", unitID, models.UnitStatusOccupied).
					Update("status", models.UnitStatusVacant).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if txErr != nil {
		return 0, txErr
	}

	return int64(len(due)), nil
}
