package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file", cfg.StoreBackend)
	assert.Equal(t, "migrantHealthData.json", cfg.StateFile)
	assert.Equal(t, "backups", cfg.BackupDir)
	assert.Equal(t, "migranthealth", cfg.MongoDB)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_BACKEND", "mongo")
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "mongo", cfg.StoreBackend)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
}
