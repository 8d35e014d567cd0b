package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGODB_DB_NAME", "")
	t.Setenv("ALERT_WEBHOOK_URL", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "CollegeLabStockEase", cfg.MongoDB.DBName)
	assert.Equal(t, "0 8 * * *", cfg.Digest.CronSchedule)
	assert.Empty(t, cfg.Digest.WebhookURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("MONGODB_DB_NAME", "labstock")
	t.Setenv("ALERT_WEBHOOK_URL", "https://alerts.lab.edu/hook")
	t.Setenv("ALERT_WEBHOOK_TOKEN", "tok")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoDB.URI)
	assert.Equal(t, "labstock", cfg.MongoDB.DBName)
	assert.Equal(t, "https://alerts.lab.edu/hook", cfg.Digest.WebhookURL)
	assert.Equal(t, "tok", cfg.Digest.WebhookToken)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server:  ServerConfig{Port: "8080"},
		MongoDB: MongoDBConfig{URI: "mongodb://localhost:27017", DBName: "labstock"},
		Digest:  DigestConfig{CronSchedule: "0 8 * * *"},
	}

	t.Run("Valid", func(t *testing.T) {
		cfg := valid
		assert.NoError(t, cfg.Validate())
	})

	t.Run("MissingPort", func(t *testing.T) {
		cfg := valid
		cfg.Server.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("MissingURI", func(t *testing.T) {
		cfg := valid
		cfg.MongoDB.URI = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("WebhookWithoutSchedule", func(t *testing.T) {
		cfg := valid
		cfg.Digest.WebhookURL = "https://alerts.lab.edu/hook"
		cfg.Digest.CronSchedule = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("CollectionMappingsComplete", func(t *testing.T) {
		assert.NoError(t, validateCollections())
	})
}
