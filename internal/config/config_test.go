package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "JWT_SECRET", "JWT_EXPIRES_IN", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
}

func TestNewDefaults(t *testing.T) {
	clearEnv(t)

	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, "3000", c.Port)
	assert.Equal(t, DefaultJwtSecret, c.JwtSecret)
	assert.Equal(t, time.Hour, c.TokenTTL())
	assert.Equal(t, logrus.InfoLevel, c.Level())
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.False(t, c.IsProduction())
}

func TestNewFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRES_IN", "15m")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, "8081", c.Port)
	assert.Equal(t, "s3cret", c.JwtSecret)
	assert.Equal(t, 15*time.Minute, c.TokenTTL())
	assert.Equal(t, logrus.DebugLevel, c.Level())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowedOrigins)
}

func TestNewRejectsDefaultSecretInProduction(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "Production")

	_, err := New()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "real-secret")
	c, err := New()
	require.NoError(t, err)
	assert.True(t, c.IsProduction())
}

func TestNewRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "http")
	_, err := New()
	require.Error(t, err)

	clearEnv(t)
	t.Setenv("LOG_LEVEL", "loud")
	_, err = New()
	require.Error(t, err)
}
