package services

import (
	"errors"
	"fmt"

	"rentadmin/internal/models"
	apperrors "rentadmin/pkg/errors"
	"rentadmin/pkg/pagination"

	"gorm.io/gorm"
)

// PropertyService 房产服务
type PropertyService struct {
	db       *gorm.DB
	auditLog *AuditLogService
}

// NewPropertyService 创建房产服务
func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{
		db:       db,
		auditLog: NewAuditLogService(db),
	}
}

// Create 创建房产，创建人默认同时为所有人
func (s *PropertyService) Create(actorID uint, req *models.CreatePropertyRequest) (*models.Property, error) {
	ownerID := req.OwnerID
	if ownerID == nil {
		ownerID = &actorID
	}

	property := &models.Property{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		CreatorID:   &actorID,
		OwnerID:     ownerID,
	}

	if err := s.db.Create(property).Error; err != nil {
		return nil, err
	}

	return property, nil
}

// GetByID 根据ID获取房产
func (s *PropertyService) GetByID(id uint) (*models.Property, error) {
	var property models.Property
	if err := s.db.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "房产不存在")
		}
		return nil, err
	}
	return &property, nil
}

// ListByActor 分页获取操作人名下的房产（创建或持有）
func (s *PropertyService) ListByActor(actorID uint, params *pagination.PageParams) ([]models.Property, int64, error) {
	query := s.db.Model(&models.Property{}).
		Where("creator_id = ? OR owner_id = ?", actorID, actorID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var properties []models.Property
	err := query.Order("id DESC").
		Offset(params.GetOffset()).
		Limit(params.GetLimit()).
		Find(&properties).Error
	return properties, total, err
}

// Update 更新房产基础信息
func (s *PropertyService) Update(id, actorID uint, req *models.UpdatePropertyRequest) (*models.Property, error) {
	property, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !CanManageProperty(actorID, property) {
		return nil, apperrors.New(apperrors.ErrCodeAccessDenied, "无权操作该房产")
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}

	if len(updates) > 0 {
		if err := s.db.Model(property).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return property, nil
}

// AuditRelatedData 统计房产的关联数据。
// 四次独立的只读计数，不加锁，结果是时间点快照
func (s *PropertyService) AuditRelatedData(propertyID uint) (*models.RelatedDataSnapshot, error) {
	if _, err := s.GetByID(propertyID); err != nil {
		return nil, err
	}

	snapshot := &models.RelatedDataSnapshot{}

	if err := s.db.Model(&models.Unit{}).Where("property_id = ?", propertyID).Count(&snapshot.Units).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.MaintenanceRequest{}).Where("property_id = ?", propertyID).Count(&snapshot.MaintenanceRequests).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Document{}).Where("property_id = ?", propertyID).Count(&snapshot.Documents).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Bill{}).Where("property_id = ?", propertyID).Count(&snapshot.Bills).Error; err != nil {
		return nil, err
	}

	snapshot.Total = snapshot.Units + snapshot.MaintenanceRequests + snapshot.Documents + snapshot.Bills
	return snapshot, nil
}

// Delete 删除房产。存在关联数据且未指定force时返回冲突并附带快照，不产生任何写入；
// 否则在单个事务内硬删除所有关联数据（含账单和维修历史）、房产本身，并落一条审计记录
func (s *PropertyService) Delete(propertyID, actorID uint, force bool) (*models.Property, error) {
	property, err := s.GetByID(propertyID)
	if err != nil {
		return nil, err
	}

	if !CanManageProperty(actorID, property) {
		return nil, apperrors.New(apperrors.ErrCodeAccessDenied, "无权删除该房产")
	}

	snapshot, err := s.AuditRelatedData(propertyID)
	if err != nil {
		return nil, err
	}

	if snapshot.Total > 0 && !force {
		return nil, apperrors.NewWithDetails(apperrors.ErrCodePropertyHasRelatedData,
			fmt.Sprintf("房产存在 %d 条关联数据，如需删除请使用强制删除", snapshot.Total), snapshot)
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		// 先取单元ID，入住关联随单元一并硬删除
		var unitIDs []uint
		if err := tx.Model(&models.Unit{}).Where("property_id = ?", propertyID).Pluck("id", &unitIDs).Error; err != nil {
			return err
		}
		if len(unitIDs) > 0 {
			if err := tx.Where("unit_id IN ?", unitIDs).Delete(&models.TenantUnit{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("property_id = ?", propertyID).Delete(&models.Unit{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", propertyID).Delete(&models.Document{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", propertyID).Delete(&models.MaintenanceRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", propertyID).Delete(&models.Bill{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Property{}, propertyID).Error; err != nil {
			return err
		}

		return s.auditLog.RecordTx(tx,
			models.AuditActionDeleteProperty, models.AuditEntityProperty, propertyID, actorID,
			fmt.Sprintf("删除房产 %s", property.Name),
			map[string]interface{}{
				"force_delete": force,
				"related_data": snapshot,
			})
	})
	if txErr != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeDeleteProperty, "删除房产失败", txErr)
	}

	publishEvent("property.deleted", models.AuditEntityProperty, propertyID, actorID, map[string]interface{}{
		"name":         property.Name,
		"force_delete": force,
		"related_data": snapshot,
	})

	return property, nil
}
