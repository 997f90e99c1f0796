package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ENV", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("STORAGE_BACKEND", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, StorageLocal, cfg.Storage.Backend)
	assert.Equal(t, "https://api.hubapi.com", cfg.HubSpot.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.HubSpot.Timeout)
	assert.Equal(t, 5, cfg.OutboxMaxTries)
}

func TestLoad_InjectsHubSpotSettings(t *testing.T) {
	t.Setenv("HUBSPOT_ACCESS_TOKEN", "pat-na1-xyz")
	t.Setenv("HUBSPOT_BASE_URL", "http://localhost:9999/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "pat-na1-xyz", cfg.HubSpot.AccessToken)
	assert.Equal(t, "http://localhost:9999", cfg.HubSpot.BaseURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("JWT_TTL", "forever")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_TTL")
}

func TestLoad_CloudinaryNeedsURL(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "cloudinary")
	t.Setenv("CLOUDINARY_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "CLOUDINARY_URL")
}

func TestLoad_ProdRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("COOKIE_SECURE", "true")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}
