package models

// MaintenanceRequest 维修工单模型。UnitID可空，单元删除后保留历史
type MaintenanceRequest struct {
	BaseModel
	PropertyID  uint   `json:"property_id" gorm:"not null;index"`
	UnitID      *uint  `json:"unit_id" gorm:"index"`
	Title       string `json:"title" gorm:"not null;size:200"`
	Description string `json:"description" gorm:"type:text"`
	Status      string `json:"status" gorm:"default:'pending';size:20;index"`
	Remark      string `json:"remark" gorm:"type:text;not null;default:''"`
}

// TableName 表名
func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}

// 维修工单状态常量
const (
	MaintenanceStatusPending    = "pending"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusCompleted  = "completed"
	MaintenanceStatusCancelled  = "cancelled"
)
