package models

// Document 文档模型（合同、凭证等）。UnitID可空，单元删除后仅解除关联
type Document struct {
	BaseModel
	PropertyID uint   `json:"property_id" gorm:"not null;index"`
	UnitID     *uint  `json:"unit_id" gorm:"index"`
	Name       string `json:"name" gorm:"not null;size:200"`
	Category   string `json:"category" gorm:"default:'other';size:20"`
	FileURL    string `json:"file_url" gorm:"size:500"`
}

// TableName 表名
func (Document) TableName() string {
	return "documents"
}

// 文档分类常量
const (
	DocumentCategoryContract    = "contract"
	DocumentCategoryCertificate = "certificate"
	DocumentCategoryOther       = "other"
)
