package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/milliybrend/reklama-bot/models"
)

func setupAdminTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func TestIsAdmin(t *testing.T) {
	db := setupAdminTestDB(t)
	admins := NewAdminService(db)
	policy := NewAccessPolicy([]int64{100, 200}, 100, admins)

	_, err := admins.AddWorker(300, "worker", "Worker User")
	require.NoError(t, err)

	tests := []struct {
		name    string
		userID  int64
		isAdmin bool
	}{
		{name: "static admin", userID: 200, isAdmin: true},
		{name: "super admin", userID: 100, isAdmin: true},
		{name: "stored worker", userID: 300, isAdmin: true},
		{name: "regular user", userID: 999, isAdmin: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isAdmin, policy.IsAdmin(tt.userID))
		})
	}
}

func TestIsSuperAdmin(t *testing.T) {
	db := setupAdminTestDB(t)
	admins := NewAdminService(db)

	policy := NewAccessPolicy([]int64{100, 200}, 100, admins)
	assert.True(t, policy.IsSuperAdmin(100))
	assert.False(t, policy.IsSuperAdmin(200))

	// Without an explicit super admin the first static id takes the role.
	fallback := NewAccessPolicy([]int64{100, 200}, 0, admins)
	assert.True(t, fallback.IsSuperAdmin(100))
	assert.False(t, fallback.IsSuperAdmin(200))
}

func TestRemovedWorkerLosesAccess(t *testing.T) {
	db := setupAdminTestDB(t)
	admins := NewAdminService(db)
	policy := NewAccessPolicy([]int64{100}, 100, admins)

	_, err := admins.AddWorker(300, "", "")
	require.NoError(t, err)
	assert.True(t, policy.IsAdmin(300))

	removed, err := admins.RemoveWorker(300)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, policy.IsAdmin(300))
}

func TestAddWorkerDuplicate(t *testing.T) {
	db := setupAdminTestDB(t)
	admins := NewAdminService(db)

	_, err := admins.AddWorker(300, "", "")
	require.NoError(t, err)

	_, err = admins.AddWorker(300, "", "")
	assert.ErrorIs(t, err, ErrAdminExists)
}

func TestAllAdminIDs(t *testing.T) {
	db := setupAdminTestDB(t)
	admins := NewAdminService(db)
	policy := NewAccessPolicy([]int64{100, 200}, 100, admins)

	_, err := admins.AddWorker(300, "", "")
	require.NoError(t, err)
	_, err = admins.AddWorker(200, "", "")
	require.NoError(t, err)

	// Workers appear once even when they duplicate a static id.
	assert.Equal(t, []int64{100, 200, 300}, policy.AllAdminIDs())
}
