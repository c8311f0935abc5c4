package services

import "rentadmin/internal/models"

// IsAuthorized 所有权判定：操作人是资源的创建者或所有者之一即放行。
// 两个字段均可为空，空字段不参与匹配。纯谓词，无任何副作用
func IsAuthorized(actorID uint, creatorID, ownerID *uint) bool {
	if creatorID != nil && *creatorID == actorID {
		return true
	}
	if ownerID != nil && *ownerID == actorID {
		return true
	}
	return false
}

// CanManageProperty 判定操作人能否管理该房产。
// 单元级操作通过其所属房产做同样的判定
func CanManageProperty(actorID uint, property *models.Property) bool {
	if property == nil {
		return false
	}
	return IsAuthorized(actorID, property.CreatorID, property.OwnerID)
}
