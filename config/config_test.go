package config

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PORT", "NODE_ENV", "APP_ENV", "DB_NAME", "SECRET_KEY", "STRIPE_SECRET_KEY",
		"CORS_ORIGINS", "MONGO_URI", "DB_USER", "DB_PASS", "DB_HOST",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	_, err := Load()
	assert.EqualError(t, err, "SECRET_KEY is required")
}

func TestLoadRequiresMongoCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET_KEY", "s3cret")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("DB_USER", "petcare")
	t.Setenv("DB_PASS", "p@ss")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "petCere", cfg.DBName)
	assert.Equal(t, defaultOrigins, cfg.CORSOrigins)
	assert.Contains(t, cfg.MongoURI, "mongodb+srv://petcare:p%40ss@")
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.CookieSecure())
	assert.Equal(t, http.SameSiteStrictMode, cfg.CookieSameSite())
}

func TestProductionCookiePolicy(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("CORS_ORIGINS", "https://petcare.app, https://admin.petcare.app")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.CookieSecure())
	assert.Equal(t, http.SameSiteNoneMode, cfg.CookieSameSite())
	assert.Equal(t, []string{"https://petcare.app", "https://admin.petcare.app"}, cfg.CORSOrigins)
}
