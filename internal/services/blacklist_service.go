package services

import (
	"errors"
	"time"

	"rentadmin/internal/models"
	apperrors "rentadmin/pkg/errors"
	"rentadmin/pkg/pagination"

	"gorm.io/gorm"
)

// BlacklistService 租客黑名单服务
type BlacklistService struct {
	db *gorm.DB
}

// NewBlacklistService 创建黑名单服务
func NewBlacklistService(db *gorm.DB) *BlacklistService {
	return &BlacklistService{db: db}
}

// Add 加入黑名单，expiry_date为空表示永久
func (s *BlacklistService) Add(req *models.CreateBlacklistEntryRequest) (*models.BlacklistEntry, error) {
	entry := &models.BlacklistEntry{
		IdentityNumber: req.IdentityNumber,
		Reason:         req.Reason,
		ExpiryDate:     req.ExpiryDate,
	}

	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}

	return entry, nil
}

// Remove 移出黑名单
func (s *BlacklistService) Remove(id uint) error {
	var entry models.BlacklistEntry
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.ErrCodeNotFound, "黑名单条目不存在")
		}
		return err
	}
	return s.db.Delete(&entry).Error
}

// List 分页获取黑名单，支持按证件号过滤
func (s *BlacklistService) List(params *pagination.PageParams, identityNumber string) ([]models.BlacklistEntry, int64, error) {
	query := s.db.Model(&models.BlacklistEntry{})
	if identityNumber != "" {
		query = query.Where("identity_number = ?", identityNumber)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.BlacklistEntry
	err := query.Order("id DESC").
		Offset(params.GetOffset()).
		Limit(params.GetLimit()).
		Find(&entries).Error
	return entries, total, err
}

// IsBlacklisted 证件号是否命中未过期的黑名单条目
func (s *BlacklistService) IsBlacklisted(identityNumber string, now time.Time) (bool, error) {
	var count int64
	err := s.db.Model(&models.BlacklistEntry{}).
		Where("identity_number = ?", identityNumber).
		Where("expiry_date IS NULL OR expiry_date > ?", now).
		Count(&count).Error
	return count > 0, err
}

// PurgeExpired 清理已过期的黑名单条目，返回清理数量
func (s *BlacklistService) PurgeExpired(now time.Time) (int64, error) {
	res := s.db.Where("expiry_date IS NOT NULL AND expiry_date <= ?", now).
		Delete(&models.BlacklistEntry{})
	return res.RowsAffected, res.Error
}
