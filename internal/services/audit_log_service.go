package services

import (
	"encoding/json"

	"rentadmin/internal/models"
	"rentadmin/pkg/pagination"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditLogService 审计日志服务。日志仅追加，本服务不提供更新和删除
type AuditLogService struct {
	db *gorm.DB
}

// NewAuditLogService 创建审计日志服务
func NewAuditLogService(db *gorm.DB) *AuditLogService {
	return &AuditLogService{db: db}
}

// RecordTx 在调用方事务内追加一条审计记录，
// 保证变更和审计记录要么一起提交要么一起回滚
func (s *AuditLogService) RecordTx(tx *gorm.DB, action, entityType string, entityID, actorID uint, description string, metadata map[string]interface{}) error {
	entry := &models.AuditLog{
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		ActorID:     actorID,
		Description: description,
	}

	if metadata != nil {
		data, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		entry.Metadata = datatypes.JSON(data)
	}

	return tx.Create(entry).Error
}

// List 分页查询审计日志，支持按动作、实体类型、实体ID过滤
func (s *AuditLogService) List(params *pagination.PageParams, action, entityType string, entityID uint) ([]models.AuditLog, int64, error) {
	query := s.db.Model(&models.AuditLog{})

	if action != "" {
		query = query.Where("action = ?", action)
	}
	if entityType != "" {
		query = query.Where("entity_type = ?", entityType)
	}
	if entityID > 0 {
		query = query.Where("entity_id = ?", entityID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	err := query.Order("id DESC").
		Offset(params.GetOffset()).
		Limit(params.GetLimit()).
		Find(&logs).Error
	return logs, total, err
}
