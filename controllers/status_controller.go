package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/milliybrend/reklama-bot/config"
	"github.com/milliybrend/reklama-bot/services"
)

// StatusController exposes a small operational API alongside the bot:
// health probing and aggregate counters for monitoring dashboards.
type StatusController struct {
	orders *services.OrderService
	users  *services.UserService
}

func NewStatusController(orders *services.OrderService, users *services.UserService) *StatusController {
	return &StatusController{orders: orders, users: users}
}

// HealthCheck handles the health check endpoint
func (sc *StatusController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Milliy Brend bot is running",
	})
}

// DatabaseStatus checks database connectivity
func (sc *StatusController) DatabaseStatus(c *gin.Context) {
	db := config.GetDB()

	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
	})
}

// Stats returns aggregate order and user counters
func (sc *StatusController) Stats(c *gin.Context) {
	orderCount, err := sc.orders.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to count orders",
			},
		})
		return
	}

	userCount, err := sc.users.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to count users",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"orders": orderCount,
			"users":  userCount,
		},
	})
}
