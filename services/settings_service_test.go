package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/milliybrend/reklama-bot/config"
	"github.com/milliybrend/reklama-bot/models"
)

func setupSettingsTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func TestSettingsFallback(t *testing.T) {
	db := setupSettingsTestDB(t)
	defaults := DefaultSettings(config.ContactInfo{
		Phone1:   "+998 90 123 45 67",
		Telegram: "@milliybrend",
	})
	svc := NewSettingsService(db, defaults)

	// Empty table falls back to the defaults.
	assert.Equal(t, "+998 90 123 45 67", svc.Get(SettingPhone1))
	assert.Equal(t, "@milliybrend", svc.Get(SettingTelegram))
	assert.Equal(t, DefaultAboutText, svc.Get(SettingAbout))
	assert.Equal(t, "", svc.Get("unknown_key"))
}

func TestSettingsSetOverridesDefault(t *testing.T) {
	db := setupSettingsTestDB(t)
	svc := NewSettingsService(db, DefaultSettings(config.ContactInfo{Phone1: "old"}))

	require.NoError(t, svc.Set(SettingPhone1, "+998 91 000 00 00"))
	assert.Equal(t, "+998 91 000 00 00", svc.Get(SettingPhone1))

	// Upsert replaces the stored value.
	require.NoError(t, svc.Set(SettingPhone1, "+998 91 111 11 11"))
	assert.Equal(t, "+998 91 111 11 11", svc.Get(SettingPhone1))

	all, err := svc.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSettingsSeedDefaults(t *testing.T) {
	db := setupSettingsTestDB(t)
	svc := NewSettingsService(db, DefaultSettings(config.ContactInfo{
		Phone1:   "p1",
		Phone2:   "p2",
		Telegram: "tg",
		Address:  "addr",
	}))

	require.NoError(t, svc.SeedDefaults())

	all, err := svc.All()
	require.NoError(t, err)
	assert.Len(t, all, 5)

	// A later seed must not clobber edited values.
	require.NoError(t, svc.Set(SettingPhone1, "edited"))
	require.NoError(t, svc.SeedDefaults())
	assert.Equal(t, "edited", svc.Get(SettingPhone1))
}
