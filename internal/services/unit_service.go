package services

import (
	"errors"
	"fmt"

	"rentadmin/internal/models"
	apperrors "rentadmin/pkg/errors"
	"rentadmin/pkg/pagination"

	"gorm.io/gorm"
)

// UnitService 单元服务
type UnitService struct {
	db       *gorm.DB
	auditLog *AuditLogService
}

// NewUnitService 创建单元服务
func NewUnitService(db *gorm.DB) *UnitService {
	return &UnitService{
		db:       db,
		auditLog: NewAuditLogService(db),
	}
}

// Create 在房产下创建单元
func (s *UnitService) Create(actorID uint, req *models.CreateUnitRequest) (*models.Unit, error) {
	var property models.Property
	if err := s.db.First(&property, req.PropertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "房产不存在")
		}
		return nil, err
	}

	if !CanManageProperty(actorID, &property) {
		return nil, apperrors.New(apperrors.ErrCodeAccessDenied, "无权操作该房产")
	}

	unit := &models.Unit{
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Floor:      req.Floor,
		Price:      req.Price,
		Status:     req.Status,
	}
	if unit.Status == "" {
		unit.Status = models.UnitStatusVacant
	}

	if err := s.db.Create(unit).Error; err != nil {
		return nil, err
	}

	return unit, nil
}

// GetByID 根据ID获取单元（带所属房产）
func (s *UnitService) GetByID(id uint) (*models.Unit, error) {
	var unit models.Unit
	if err := s.db.Preload("Property").First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "单元不存在")
		}
		return nil, err
	}
	return &unit, nil
}

// ListByProperty 分页获取房产下的单元
func (s *UnitService) ListByProperty(propertyID uint, params *pagination.PageParams) ([]models.Unit, int64, error) {
	query := s.db.Model(&models.Unit{}).Where("property_id = ?", propertyID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var units []models.Unit
	err := query.Order("id").
		Offset(params.GetOffset()).
		Limit(params.GetLimit()).
		Find(&units).Error
	return units, total, err
}

// Update 更新单元信息，状态仅允许人工在非在住状态间调整
func (s *UnitService) Update(id, actorID uint, req *models.UpdateUnitRequest) (*models.Unit, error) {
	unit, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !CanManageProperty(actorID, unit.Property) {
		return nil, apperrors.New(apperrors.ErrCodeAccessDenied, "无权操作该单元")
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Floor != nil {
		updates["floor"] = *req.Floor
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Status != "" {
		// 在住状态由入住流转维护，不接受人工写入
		if req.Status == models.UnitStatusOccupied || unit.Status == models.UnitStatusOccupied {
			return nil, apperrors.New(apperrors.ErrCodeBusinessRule, "在住状态由入住流转维护，不能手动修改")
		}
		updates["status"] = req.Status
	}

	if len(updates) > 0 {
		if err := s.db.Model(unit).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return unit, nil
}

// Delete 删除单元。仍有在住租客时拒绝执行；
// 否则在单个事务内硬删除全部入住关联（历史记录），
// 将账单、文档、维修工单的单元外键置空（账单和维修工单追加删除备注），
// 删除单元本身，并落一条带各类数据计数的审计记录。
// 与房产删除是两套独立的、有意为之的级联策略，不要合并
func (s *UnitService) Delete(unitID, actorID uint) (*models.Unit, error) {
	var unit models.Unit
	if err := s.db.Preload("Property").Preload("TenantUnits").First(&unit, unitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "单元不存在")
		}
		return nil, err
	}

	if !CanManageProperty(actorID, unit.Property) {
		return nil, apperrors.New(apperrors.ErrCodeAccessDenied, "无权删除该单元")
	}

	for _, tu := range unit.TenantUnits {
		if tu.IsOccupying() {
			return nil, apperrors.New(apperrors.ErrCodeBusinessRule, "单元仍有在住租客，请先办理退租")
		}
	}

	note := fmt.Sprintf("[关联单元已删除: %s #%d]", unit.Name, unit.ID)
	var tenancyCount, billCount, documentCount, maintenanceCount int64

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("unit_id = ?", unitID).Delete(&models.TenantUnit{})
		if res.Error != nil {
			return res.Error
		}
		tenancyCount = res.RowsAffected

		res = tx.Model(&models.Bill{}).Where("unit_id = ?", unitID).Updates(map[string]interface{}{
			"unit_id": nil,
			"remark":  gorm.Expr("TRIM(remark || ?)", " "+note),
		})
		if res.Error != nil {
			return res.Error
		}
		billCount = res.RowsAffected

		res = tx.Model(&models.Document{}).Where("unit_id = ?", unitID).Update("unit_id", nil)
		if res.Error != nil {
			return res.Error
		}
		documentCount = res.RowsAffected

		res = tx.Model(&models.MaintenanceRequest{}).Where("unit_id = ?", unitID).Updates(map[string]interface{}{
			"unit_id": nil,
			"remark":  gorm.Expr("TRIM(remark || ?)", " "+note),
		})
		if res.Error != nil {
			return res.Error
		}
		maintenanceCount = res.RowsAffected

		if err := tx.Delete(&models.Unit{}, unitID).Error; err != nil {
			return err
		}

		return s.auditLog.RecordTx(tx,
			models.AuditActionDeleteUnit, models.AuditEntityUnit, unitID, actorID,
			fmt.Sprintf("删除单元 %s", unit.Name),
			map[string]interface{}{
				"property_id":          unit.PropertyID,
				"tenant_units":         tenancyCount,
				"bills":                billCount,
				"documents":            documentCount,
				"maintenance_requests": maintenanceCount,
			})
	})
	if txErr != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeDeleteUnit, "删除单元失败", txErr)
	}

	publishEvent("unit.deleted", models.AuditEntityUnit, unitID, actorID, map[string]interface{}{
		"name":        unit.Name,
		"property_id": unit.PropertyID,
	})

	return &unit, nil
}
