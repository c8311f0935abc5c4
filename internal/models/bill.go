package models

import "time"

// Bill 账单模型。UnitID可空：单元被删除后账单保留，仅解除关联
type Bill struct {
	BaseModel
	BillNo     string     `json:"bill_no" gorm:"unique;not null;size:50;index"`
	PropertyID uint       `json:"property_id" gorm:"not null;index"`
	UnitID     *uint      `json:"unit_id" gorm:"index"`
	Type       string     `json:"type" gorm:"default:'rent';size:20"`
	Amount     float64    `json:"amount" gorm:"not null"`
	Status     string     `json:"status" gorm:"default:'unpaid';size:20;index"`
	DueDate    *time.Time `json:"due_date"`
	Remark     string     `json:"remark" gorm:"type:text;not null;default:''"`
}

// TableName 表名
func (Bill) TableName() string {
	return "bills"
}

// 账单类型常量
const (
	BillTypeRent    = "rent"
	BillTypeDeposit = "deposit"
	BillTypeUtility = "utility"
	BillTypeOther   = "other"
)

// 账单状态常量
const (
	BillStatusUnpaid  = "unpaid"
	BillStatusPaid    = "paid"
	BillStatusOverdue = "overdue"
)
