package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/labstockease/insights/internal/domain/models"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Digest  DigestConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for the inventory record store.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// DigestConfig holds settings for the scheduled stock-alert digest. An empty
// WebhookURL disables the digest entirely.
type DigestConfig struct {
	CronSchedule string
	WebhookURL   string
	WebhookToken string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "CollegeLabStockEase"),
		},
		Digest: DigestConfig{
			CronSchedule: getenvWithDefault("DIGEST_CRON_SCHEDULE", "0 8 * * *"),
			WebhookURL:   os.Getenv("ALERT_WEBHOOK_URL"),
			WebhookToken: os.Getenv("ALERT_WEBHOOK_TOKEN"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated and that
// the class-to-collection mappings are complete. Checking the mappings here
// surfaces misconfiguration at startup instead of silently dropping entries
// during a scan.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI must be provided")
	}
	if c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.Digest.WebhookURL != "" && c.Digest.CronSchedule == "" {
		return errors.New("DIGEST_CRON_SCHEDULE must be provided when ALERT_WEBHOOK_URL is set")
	}

	return validateCollections()
}

func validateCollections() error {
	for _, class := range models.ScanOrder {
		if models.ItemCollections[class] == "" {
			return fmt.Errorf("inventory class %s has no items collection", class)
		}
	}
	for _, class := range models.ResolutionOrder {
		if models.ItemCollections[class] == "" {
			return fmt.Errorf("resolution order references unmapped class %s", class)
		}
	}
	for class, collection := range models.RestockCollections {
		if collection == "" {
			return fmt.Errorf("inventory class %s has an empty restock collection", class)
		}
		if models.ItemCollections[class] == "" {
			return fmt.Errorf("restock collection %s references unknown class %s", collection, class)
		}
	}
	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
