package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/milliybrend/reklama-bot/config"
	"github.com/milliybrend/reklama-bot/models"
	"github.com/milliybrend/reklama-bot/services"
)

func setupStatusTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.User{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	config.SetDB(db)

	status := NewStatusController(services.NewOrderService(db), services.NewUserService(db))
	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", status.HealthCheck)
		v1.GET("/database/status", status.DatabaseStatus)
		v1.GET("/stats", status.Stats)
	}
	return router, db
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupStatusTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}

func TestDatabaseStatus(t *testing.T) {
	router, _ := setupStatusTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/database/status", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Database connected", response["message"])
}

func TestStats(t *testing.T) {
	router, db := setupStatusTestRouter(t)

	require.NoError(t, db.Create(&models.Order{ID: "MBR-1001", UserID: 1}).Error)
	users := services.NewUserService(db)
	require.NoError(t, users.Save(1, "a", "A"))
	require.NoError(t, users.Save(2, "b", "B"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["orders"])
	assert.Equal(t, float64(2), data["users"])
}
