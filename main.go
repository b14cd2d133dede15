package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/milliybrend/reklama-bot/bot"
	"github.com/milliybrend/reklama-bot/config"
	"github.com/milliybrend/reklama-bot/controllers"
	"github.com/milliybrend/reklama-bot/models"
	"github.com/milliybrend/reklama-bot/services"
)

func main() {
	// Basic logging
	log.Println("Starting Milliy Brend bot...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.Order{},
		&models.User{},
		&models.Service{},
		&models.PortfolioCategory{},
		&models.PortfolioItem{},
		&models.Setting{},
		&models.Admin{},
		&models.UserQuestion{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	orders := services.NewOrderService(db)
	users := services.NewUserService(db)
	catalog := services.NewCatalogService(db)
	settings := services.NewSettingsService(db, services.DefaultSettings(cfg.Contact))
	questions := services.NewQuestionService(db)
	admins := services.NewAdminService(db)
	policy := services.NewAccessPolicy(cfg.AdminIDs, cfg.SuperAdminID, admins)

	if err := catalog.SeedDefaults(); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	if err := settings.SeedDefaults(); err != nil {
		log.Fatalf("Failed to seed settings: %v", err)
	}

	telegram, err := services.NewTelegramService(cfg.BotToken)
	if err != nil {
		log.Fatalf("Failed to connect to Telegram: %v", err)
	}

	// Attachment archiving is optional; without a bucket the bot keeps the
	// Telegram file ids only.
	var archive services.ArchiveInterface
	if cfg.AWSS3Bucket != "" {
		archive, err = services.NewArchiveService(cfg, telegram)
		if err != nil {
			log.Fatalf("Failed to initialize archive storage: %v", err)
		}
		log.Printf("Archiving order attachments to s3://%s", cfg.AWSS3Bucket)
	}

	customer := bot.NewCustomerEngine(
		bot.NewSessionStore(), telegram,
		orders, catalog, settings, questions, users, policy, archive,
	)
	admin := bot.NewAdminEngine(
		bot.NewAdminSessionStore(), telegram,
		orders, catalog, settings, questions, users, admins, policy,
	)
	dispatcher := bot.NewDispatcher(admin, customer)

	// Operational HTTP API
	go runStatusAPI(cfg, orders, users)

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	updates := telegram.UpdatesChan()
	log.Println("Listening for updates")
	for {
		select {
		case update := <-updates:
			go dispatcher.Dispatch(update)
		case sig := <-done:
			log.Printf("Received %s, shutting down", sig)
			telegram.Stop()
			return
		}
	}
}

func runStatusAPI(cfg *config.Config, orders *services.OrderService, users *services.UserService) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(cors.Default())

	status := controllers.NewStatusController(orders, users)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", status.HealthCheck)
		v1.GET("/database/status", status.DatabaseStatus)
		v1.GET("/stats", status.Stats)
	}

	addr := ":" + cfg.Port
	log.Printf("Status API is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start status API: %v", err)
	}
}
