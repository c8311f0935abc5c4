package models

// Unit 单元模型 - 房产内可独立出租的空间
type Unit struct {
	BaseModel
	PropertyID uint    `json:"property_id" gorm:"not null;index"`
	Name       string  `json:"name" gorm:"not null;size:100"`
	Floor      *int    `json:"floor"`
	Price      float64 `json:"price" gorm:"default:0"`
	Status     string  `json:"status" gorm:"default:'vacant';size:20;index"`

	// 关联
	Property    *Property    `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	TenantUnits []TenantUnit `gorm:"foreignKey:UnitID" json:"tenant_units,omitempty"`
}

// TableName 表名
func (u *Unit) TableName() string {
	return "units"
}

// 单元状态常量
const (
	UnitStatusVacant      = "vacant"
	UnitStatusOccupied    = "occupied"
	UnitStatusMaintenance = "maintenance"
	UnitStatusReserved    = "reserved"
	UnitStatusInactive    = "inactive"
)

// CreateUnitRequest 创建单元请求
type CreateUnitRequest struct {
	PropertyID uint    `json:"property_id" binding:"required"`
	Name       string  `json:"name" binding:"required,max=100"`
	Floor      *int    `json:"floor"`
	Price      float64 `json:"price" binding:"gte=0"`
	Status     string  `json:"status" binding:"omitempty,oneof=vacant occupied maintenance reserved inactive"`
}

// UpdateUnitRequest 更新单元请求
type UpdateUnitRequest struct {
	Name   string   `json:"name" binding:"max=100"`
	Floor  *int     `json:"floor"`
	Price  *float64 `json:"price" binding:"omitempty,gte=0"`
	Status string   `json:"status" binding:"omitempty,oneof=vacant occupied maintenance reserved inactive"`
}
