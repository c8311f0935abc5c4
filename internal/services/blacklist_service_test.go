package services

import (
	"testing"
	"time"

	"rentadmin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlacklisted(t *testing.T) {
	db := setupTestDB(t)
	service := NewBlacklistService(db)
	now := time.Now()

	// 永久条目
	_, err := service.Add(&models.CreateBlacklistEntryRequest{IdentityNumber: "A001", Reason: "恶意欠租"})
	require.NoError(t, err)
	// 未过期条目
	_, err = service.Add(&models.CreateBlacklistEntryRequest{IdentityNumber: "A002", Reason: "损坏房屋", ExpiryDate: timePtr(now.AddDate(0, 1, 0))})
	require.NoError(t, err)
	// 已过期条目
	_, err = service.Add(&models.CreateBlacklistEntryRequest{IdentityNumber: "A003", Reason: "噪音扰民", ExpiryDate: timePtr(now.AddDate(0, 0, -1))})
	require.NoError(t, err)

	blacklisted, err := service.IsBlacklisted("A001", now)
	require.NoError(t, err)
	assert.True(t, blacklisted)

	blacklisted, err = service.IsBlacklisted("A002", now)
	require.NoError(t, err)
	assert.True(t, blacklisted)

	blacklisted, err = service.IsBlacklisted("A003", now)
	require.NoError(t, err)
	assert.False(t, blacklisted)

	blacklisted, err = service.IsBlacklisted("A999", now)
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

func TestPurgeExpired(t *testing.T) {
	db := setupTestDB(t)
	service := NewBlacklistService(db)
	now := time.Now()

	_, err := service.Add(&models.CreateBlacklistEntryRequest{IdentityNumber: "A001", Reason: "永久"})
	require.NoError(t, err)
	_, err = service.Add(&models.CreateBlacklistEntryRequest{IdentityNumber: "A002", Reason: "已过期", ExpiryDate: timePtr(now.AddDate(0, 0, -1))})
	require.NoError(t, err)

	purged, err := service.PurgeExpired(now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	// 永久条目不受影响
	var count int64
	db.Model(&models.BlacklistEntry{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
