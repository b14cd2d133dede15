package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ContactInfo is the static fallback contact block shown when the settings
// table has no value for a contact key.
type ContactInfo struct {
	Phone1   string
	Phone2   string
	Telegram string
	Address  string
}

// Config holds all application configuration
type Config struct {
	BotToken     string
	AdminIDs     []int64
	SuperAdminID int64
	DatabaseURL  string
	DatabasePath string
	Port         string
	GoEnv        string

	AWSRegion          string
	AWSS3Bucket        string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	Contact ContactInfo
}

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try to load environment-specific file first
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file found, using system environment variables")
		}
	} else {
		log.Printf("Loaded configuration from %s", envFile)
	}

	config := &Config{
		BotToken:           getEnv("BOT_TOKEN", ""),
		AdminIDs:           parseIDList(getEnv("ADMIN_IDS", "")),
		SuperAdminID:       parseID(getEnv("SUPER_ADMIN_ID", "")),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "data.db"),
		Port:               getEnv("PORT", "8080"),
		GoEnv:              env,
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSS3Bucket:        getEnv("AWS_S3_BUCKET", ""),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		Contact: ContactInfo{
			Phone1:   getEnv("CONTACT_PHONE1", "+998 90 123 45 67"),
			Phone2:   getEnv("CONTACT_PHONE2", "+998 91 234 56 78"),
			Telegram: getEnv("CONTACT_TELEGRAM", "@milliybrend"),
			Address:  getEnv("CONTACT_ADDRESS", "Samarkand shahar, Amir Temur ko'chasi 1"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that all required configuration values are set
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	return nil
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseIDList parses a comma-separated list of numeric Telegram identities.
// Malformed entries are skipped rather than failing startup.
func parseIDList(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			log.Printf("Ignoring malformed admin id %q", part)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func parseID(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("Ignoring malformed SUPER_ADMIN_ID %q", raw)
		return 0
	}
	return id
}
