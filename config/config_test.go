package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "share-meal", cfg.Mongo.DBName)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_USERNAME", "app")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "app", cfg.Mongo.Username)
	assert.Equal(t, "hunter2", cfg.Mongo.Password)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
}

func TestConnectionURIComposedFromCredentials(t *testing.T) {
	m := MongoConfig{Username: "app", Password: "hunter2"}
	assert.Contains(t, m.ConnectionURI(), "mongodb+srv://app:hunter2@")
}

func TestConnectionURIOverride(t *testing.T) {
	m := MongoConfig{URI: "mongodb://localhost:27017", Username: "ignored"}
	assert.Equal(t, "mongodb://localhost:27017", m.ConnectionURI())
}
