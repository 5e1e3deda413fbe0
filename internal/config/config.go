package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/example/filmly/internal/token"
)

// DefaultJwtSecret is the development signing key. It is rejected when ENV is production.
const DefaultJwtSecret = "purple-wallet-dev-secret"

type Config struct {
	Port         string
	Env          string
	JwtSecret    string
	JwtExpiresIn string
	LogLevel     string

	// Origins allowed by the CORS middleware; "*" allows any
	AllowedOrigins []string
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

// TokenTTL converts JwtExpiresIn ("3600", "15m", "1d", ...) into a duration.
func (c *Config) TokenTTL() time.Duration {
	return token.ParseTTL(c.JwtExpiresIn)
}

// Level returns the logrus level for LogLevel, falling back to info.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// Load reads an optional .env file from the working directory and then builds
// the Config. Variables already present in the environment take precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return New()
}

func New() (*Config, error) {
	c := &Config{
		Port:           getenv("PORT", "3000"),
		Env:            strings.ToLower(getenv("ENV", "development")),
		JwtSecret:      getenv("JWT_SECRET", DefaultJwtSecret),
		JwtExpiresIn:   getenv("JWT_EXPIRES_IN", "3600"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
	}

	// Validate JWT secret in production
	if c.IsProduction() && c.JwtSecret == DefaultJwtSecret {
		return nil, errors.New("JWT_SECRET must be set in production")
	}

	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %s", c.Port)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %s", c.LogLevel)
	}

	return c, nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
