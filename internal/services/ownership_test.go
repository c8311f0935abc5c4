package services

import (
	"testing"

	"rentadmin/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestIsAuthorized(t *testing.T) {
	creator := uint(1)
	owner := uint(2)

	// 创建者匹配
	assert.True(t, IsAuthorized(1, &creator, &owner))
	// 所有者匹配
	assert.True(t, IsAuthorized(2, &creator, &owner))
	// 都不匹配
	assert.False(t, IsAuthorized(3, &creator, &owner))
	// 空字段不参与匹配
	assert.True(t, IsAuthorized(2, nil, &owner))
	assert.True(t, IsAuthorized(1, &creator, nil))
	assert.False(t, IsAuthorized(1, nil, nil))
}

func TestCanManageProperty(t *testing.T) {
	creator := uint(1)
	property := &models.Property{CreatorID: &creator}

	assert.True(t, CanManageProperty(1, property))
	assert.False(t, CanManageProperty(2, property))
	assert.False(t, CanManageProperty(1, nil))
}
