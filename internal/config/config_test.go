package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RHEUMA_SECURITY_JWTSECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "disk", cfg.Storage.Driver)
	assert.Equal(t, "uploads", cfg.Storage.UploadDir)
	assert.Equal(t, "test-secret", cfg.Security.JWTSecret)
	assert.Equal(t, "30m0s", cfg.Security.JWTTTL.String())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("RHEUMA_SECURITY_JWTSECRET", "test-secret")
	t.Setenv("RHEUMA_ENVIRONMENT", "production")
	t.Setenv("RHEUMA_STORAGE_DRIVER", "s3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "s3", cfg.Storage.Driver)
}
