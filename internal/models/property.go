package models

// Property 房产模型 - 顶层出租资产，拥有若干单元
type Property struct {
	BaseModel
	Name        string  `json:"name" gorm:"not null;size:100"`
	Address     string  `json:"address" gorm:"size:255"`
	Description string  `json:"description" gorm:"type:text"`
	CreatorID   *uint   `json:"creator_id" gorm:"index"` // 创建人
	OwnerID     *uint   `json:"owner_id" gorm:"index"`   // 所有人（可与创建人不同）

	// 关联
	Units               []Unit               `gorm:"foreignKey:PropertyID" json:"units,omitempty"`
	Bills               []Bill               `gorm:"foreignKey:PropertyID" json:"bills,omitempty"`
	Documents           []Document           `gorm:"foreignKey:PropertyID" json:"documents,omitempty"`
	MaintenanceRequests []MaintenanceRequest `gorm:"foreignKey:PropertyID" json:"maintenance_requests,omitempty"`
}

// TableName 表名
func (p *Property) TableName() string {
	return "properties"
}

// RelatedDataSnapshot 关联数据快照 - 删除前的只读统计，不落库
type RelatedDataSnapshot struct {
	Units               int64 `json:"units"`
	MaintenanceRequests int64 `json:"maintenance_requests"`
	Documents           int64 `json:"documents"`
	Bills               int64 `json:"bills"`
	Total               int64 `json:"total"`
}

// CreatePropertyRequest 创建房产请求
type CreatePropertyRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Address     string `json:"address" binding:"max=255"`
	Description string `json:"description"`
	OwnerID     *uint  `json:"owner_id"`
}

// UpdatePropertyRequest 更新房产请求
type UpdatePropertyRequest struct {
	Name        string `json:"name" binding:"max=100"`
	Address     string `json:"address" binding:"max=255"`
	Description string `json:"description"`
}
