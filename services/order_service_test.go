package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/milliybrend/reklama-bot/models"
)

func setupOrderTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Order{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func TestNextOrderID(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := NewOrderService(db)

	id, err := svc.NextOrderID()
	require.NoError(t, err)
	assert.Equal(t, "MBR-1001", id)

	// With one existing order the counter moves on.
	err = svc.Create(&models.Order{ID: id, UserID: 1})
	require.NoError(t, err)

	id, err = svc.NextOrderID()
	require.NoError(t, err)
	assert.Equal(t, "MBR-1002", id)
}

func TestCreateOrderDefaults(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := NewOrderService(db)

	order := &models.Order{
		ID:          "MBR-1001",
		UserID:      42,
		UserName:    "Aziz",
		Phone:       "+998901234567",
		ServiceType: "🎨 Grafika va SMM dizayn",
	}
	require.NoError(t, svc.Create(order))
	assert.Equal(t, models.StatusNew, order.Status)
	assert.Equal(t, "[]", order.Files)

	loaded, err := svc.GetByID("MBR-1001")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, int64(42), loaded.UserID)
	assert.Equal(t, models.StatusNew, loaded.Status)
}

func TestGetByIDNotFound(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := NewOrderService(db)

	order, err := svc.GetByID("MBR-9999")
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestUpdateStatus(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := NewOrderService(db)

	err := svc.Create(&models.Order{ID: "MBR-1001", UserID: 1})
	require.NoError(t, err)

	tests := []struct {
		name    string
		orderID string
		status  string
		updated bool
	}{
		{
			name:    "existing order",
			orderID: "MBR-1001",
			status:  models.StatusInDesign,
			updated: true,
		},
		{
			name:    "missing order",
			orderID: "MBR-9999",
			status:  models.StatusClosed,
			updated: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, err := svc.UpdateStatus(tt.orderID, tt.status)
			require.NoError(t, err)
			assert.Equal(t, tt.updated, updated)
		})
	}

	loaded, err := svc.GetByID("MBR-1001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInDesign, loaded.Status)
}

func TestSearch(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := NewOrderService(db)

	err := svc.Create(&models.Order{ID: "MBR-1001", UserID: 1, CompanyName: "Milliy Trade", UserName: "Aziz", Phone: "+998901112233"})
	require.NoError(t, err)
	err = svc.Create(&models.Order{ID: "MBR-1002", UserID: 2, CompanyName: "Global Foods", UserName: "Bobur", Phone: "+998907778899"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "by order id", query: "mbr-1001", expected: []string{"MBR-1001"}},
		{name: "by company", query: "global", expected: []string{"MBR-1002"}},
		{name: "by phone fragment", query: "7778899", expected: []string{"MBR-1002"}},
		{name: "no match", query: "yo'q", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := svc.Search(tt.query)
			require.NoError(t, err)
			var ids []string
			for _, order := range results {
				ids = append(ids, order.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestListNew(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := NewOrderService(db)

	err := svc.Create(&models.Order{ID: "MBR-1001", UserID: 1})
	require.NoError(t, err)
	err = svc.Create(&models.Order{ID: "MBR-1002", UserID: 2})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus("MBR-1001", models.StatusClosed)
	require.NoError(t, err)
	require.True(t, updated)

	orders, err := svc.ListNew(10)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "MBR-1002", orders[0].ID)
}
