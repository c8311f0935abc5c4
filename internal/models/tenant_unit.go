package models

import "time"

// TenantUnit 租客-单元入住关联，带自身的状态生命周期
type TenantUnit struct {
	BaseModel
	TenantID     uint       `json:"tenant_id" gorm:"not null;index:idx_tenant_unit"`
	UnitID       uint       `json:"unit_id" gorm:"not null;index:idx_tenant_unit"`
	Status       string     `json:"status" gorm:"default:'active';size:20;index"`
	MoveInDate   time.Time  `json:"move_in_date" gorm:"not null"`
	MoveOutDate  *time.Time `json:"move_out_date"`
	IsMainTenant bool       `json:"is_main_tenant" gorm:"default:false"`
	Rent         float64    `json:"rent" gorm:"default:0"`

	// 关联
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Unit   *Unit   `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
}

// TableName 表名
func (TenantUnit) TableName() string {
	return "tenant_units"
}

// 入住状态常量
const (
	TenantUnitStatusPending    = "pending"
	TenantUnitStatusActive     = "active"
	TenantUnitStatusExpired    = "expired"
	TenantUnitStatusTerminated = "terminated"
	TenantUnitStatusRenewed    = "renewed"
)

// OccupancyStatuses 计入"在住"的状态集合，renewed视为新的在住周期
var OccupancyStatuses = []string{TenantUnitStatusActive, TenantUnitStatusRenewed}

// IsOccupying 该关联是否计入在住
func (tu *TenantUnit) IsOccupying() bool {
	return tu.Status == TenantUnitStatusActive || tu.Status == TenantUnitStatusRenewed
}

// AssignTenantUnitRequest 租客入住请求
type AssignTenantUnitRequest struct {
	TenantID     uint       `json:"tenant_id" binding:"required"`
	UnitID       uint       `json:"unit_id" binding:"required"`
	MoveInDate   *time.Time `json:"move_in_date"`
	IsMainTenant bool       `json:"is_main_tenant"`
	Rent         float64    `json:"rent" binding:"gte=0"`
	Status       string     `json:"status" binding:"omitempty,oneof=pending active"`
}
