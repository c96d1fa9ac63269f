package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak into a case.
func clearEnv(t *testing.T) {
	for _, k := range []string{
		"GO_ENV", "DATABASE_URL", "PORT", "JWT_SECRET", "TOKEN_TTL", "REQUEST_TIMEOUT",
		"CORS_ALLOWED_ORIGINS", "AUTO_MIGRATE", "BCRYPT_COST",
		"S3_BUCKET", "S3_REGION", "S3_ENDPOINT", "S3_ACCESS_KEY_ID", "S3_SECRET_ACCESS_KEY", "S3_PUBLIC_BASE_URL", "S3_USE_PATH_STYLE",
		"MAIL_PROVIDER", "MAIL_FROM_ADDRESS", "MAIL_FROM_NAME", "AWS_SES_REGION", "AWS_SES_ACCESS_KEY_ID", "AWS_SES_SECRET_ACCESS_KEY",
	} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.Equal(t, "noop", cfg.Mail.Provider)
	assert.False(t, cfg.AutoMigrate)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "24h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.example.cm, http://localhost:5173 ,")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("S3_BUCKET", "media")
	t.Setenv("S3_REGION", "eu-west-1")
	t.Setenv("MAIL_PROVIDER", "SES")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"https://admin.example.cm", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, "https://media.s3.eu-west-1.amazonaws.com", cfg.S3.PublicBaseURL)
	assert.Equal(t, "ses", cfg.Mail.Provider)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"production without secret", map[string]string{"GO_ENV": "production"}},
		{"bad ttl", map[string]string{"TOKEN_TTL": "a week"}},
		{"negative timeout", map[string]string{"REQUEST_TIMEOUT": "-1s"}},
		{"bad bool", map[string]string{"AUTO_MIGRATE": "sometimes"}},
		{"unknown mail provider", map[string]string{"MAIL_PROVIDER": "smtp"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
