package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog 审计日志 - 仅追加，任何代码路径不得更新或删除
type AuditLog struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Action      string         `json:"action" gorm:"not null;size:50;index"`
	EntityType  string         `json:"entity_type" gorm:"not null;size:50;index"`
	EntityID    uint           `json:"entity_id" gorm:"not null;index"`
	ActorID     uint           `json:"actor_id" gorm:"not null;index"`
	Description string         `json:"description" gorm:"type:text"`
	Metadata    datatypes.JSON `json:"metadata" gorm:"type:json"`
	CreatedAt   time.Time      `json:"created_at" gorm:"index"`
}

// TableName 表名
func (AuditLog) TableName() string {
	return "audit_logs"
}

// 审计动作常量
const (
	AuditActionDeleteProperty = "DELETE_PROPERTY"
	AuditActionDeleteUnit     = "DELETE_UNIT"
	AuditActionDeleteTenant   = "DELETE_TENANT"
	AuditActionAssignTenant   = "ASSIGN_TENANT"
	AuditActionEndTenancy     = "END_TENANCY"
)

// 审计实体类型常量
const (
	AuditEntityProperty   = "property"
	AuditEntityUnit       = "unit"
	AuditEntityTenant     = "tenant"
	AuditEntityTenantUnit = "tenant_unit"
)
