package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "tok")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "tok", cfg.AdminToken)
	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.TrustProxy)
	assert.False(t, cfg.IsProduction())
}

func TestLoadRequiresAdminToken(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingAdminToken)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "tok")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("RATE_LIMIT", "3")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("ALLOWED_ORIGINS", "https://school.test, http://localhost:5173")
	t.Setenv("APP_ENV", "production")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, 3, cfg.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, []string{"https://school.test", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.True(t, cfg.TrustProxy)
	assert.True(t, cfg.IsProduction())
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "tok")
	t.Setenv("STORE_DRIVER", "cassandra")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadPostgresNeedsURL(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "tok")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestMailEnabled(t *testing.T) {
	cfg := Config{MailProvider: MailSMTP, NotifyRecipient: "office@school.test"}
	assert.False(t, cfg.MailEnabled())

	cfg.SMTPHost = "smtp.school.test"
	assert.True(t, cfg.MailEnabled())

	cfg.MailProvider = MailSendGrid
	assert.False(t, cfg.MailEnabled())
	cfg.SendGridAPIKey = "key"
	assert.True(t, cfg.MailEnabled())
}
