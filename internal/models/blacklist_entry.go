package models

import "time"

// BlacklistEntry 租客黑名单条目，按证件号匹配
type BlacklistEntry struct {
	BaseModel
	IdentityNumber string     `json:"identity_number" gorm:"not null;size:50;index"`
	Reason         string     `json:"reason" gorm:"not null;size:255"`
	ExpiryDate     *time.Time `json:"expiry_date"` // 为空表示永久
}

// TableName 表名
func (BlacklistEntry) TableName() string {
	return "blacklist_entries"
}

// IsEffective 条目在指定时间是否仍然生效
func (b *BlacklistEntry) IsEffective(now time.Time) bool {
	return b.ExpiryDate == nil || b.ExpiryDate.After(now)
}

// CreateBlacklistEntryRequest 加入黑名单请求
type CreateBlacklistEntryRequest struct {
	IdentityNumber string     `json:"identity_number" binding:"required,max=50"`
	Reason         string     `json:"reason" binding:"required,max=255"`
	ExpiryDate     *time.Time `json:"expiry_date"`
}
