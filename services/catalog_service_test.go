package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/milliybrend/reklama-bot/models"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Service{}, &models.PortfolioCategory{}, &models.PortfolioItem{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func TestSeedDefaults(t *testing.T) {
	db := setupCatalogTestDB(t)
	svc := NewCatalogService(db)

	require.NoError(t, svc.SeedDefaults())

	servicesList, err := svc.ActiveServices()
	require.NoError(t, err)
	assert.Len(t, servicesList, 6)

	categories, err := svc.ActiveCategories()
	require.NoError(t, err)
	assert.Len(t, categories, 4)

	// Seeding again must not duplicate rows.
	require.NoError(t, svc.SeedDefaults())
	servicesList, err = svc.ActiveServices()
	require.NoError(t, err)
	assert.Len(t, servicesList, 6)
}

func TestAddAndDeleteService(t *testing.T) {
	db := setupCatalogTestDB(t)
	svc := NewCatalogService(db)

	added, err := svc.AddService("🚀", "Launch kampaniyalari")
	require.NoError(t, err)
	assert.NotEmpty(t, added.CallbackID)

	found, err := svc.ServiceByCallbackID(added.CallbackID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Launch kampaniyalari", found.Name)

	deleted, err := svc.DeleteService(added.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteService(added.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestPortfolioItems(t *testing.T) {
	db := setupCatalogTestDB(t)
	svc := NewCatalogService(db)

	category, err := svc.AddCategory("📌", "Banner ishlari")
	require.NoError(t, err)

	photoID := "photo-file-id"
	_, err = svc.AddItem(category.CallbackID, "Supermarket banneri", "4x6 metr", &photoID)
	require.NoError(t, err)
	_, err = svc.AddItem(category.CallbackID, "Matnli ish", "Fotosiz namuna", nil)
	require.NoError(t, err)

	items, err := svc.ItemsByCategory(category.CallbackID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Newest first.
	assert.Equal(t, "Matnli ish", items[0].Title)
	assert.Nil(t, items[0].PhotoID)
	require.NotNil(t, items[1].PhotoID)
	assert.Equal(t, "photo-file-id", *items[1].PhotoID)

	deleted, err := svc.DeleteItem(items[0].ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	items, err = svc.ItemsByCategory(category.CallbackID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
