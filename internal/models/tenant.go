package models

// Tenant 租客模型
type Tenant struct {
	BaseModel
	IdentityNumber string  `json:"identity_number" gorm:"unique;not null;size:50;index"` // 证件号，业务唯一键
	Name           string  `json:"name" gorm:"not null;size:100"`
	Phone          *string `json:"phone" gorm:"size:20"`
	Email          *string `json:"email" gorm:"size:100"`

	// 关联
	TenantUnits []TenantUnit `gorm:"foreignKey:TenantID" json:"tenant_units,omitempty"`
}

// TableName 表名
func (t *Tenant) TableName() string {
	return "tenants"
}

// CreateTenantRequest 创建租客请求
type CreateTenantRequest struct {
	IdentityNumber string  `json:"identity_number" binding:"required,max=50"`
	Name           string  `json:"name" binding:"required,max=100"`
	Phone          *string `json:"phone" binding:"omitempty,max=20"`
	Email          *string `json:"email" binding:"omitempty,email"`
}
