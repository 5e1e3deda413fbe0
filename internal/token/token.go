// Package token issues and verifies the HS256 access tokens handed out by
// the login endpoint. Revocation is tracked elsewhere; a token that verifies
// here may still be blacklisted.
package token

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL applies when a configured lifetime cannot be parsed.
const DefaultTTL = time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims embedded in every access token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// ExpiresIn is the token lifetime in whole seconds.
func (s *Service) ExpiresIn() int64 {
	return int64(s.ttl / time.Second)
}

func (s *Service) Issue(email string) (string, error) {
	now := s.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry. Every failure, whatever its
// cause, is reported as ErrInvalidToken.
func (s *Service) Verify(raw string) (*Claims, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

var ttlPattern = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)([smhd])$`)

var ttlUnits = map[string]time.Duration{
	"s": time.Second,
	"m": time.Minute,
	"h": time.Hour,
	"d": 24 * time.Hour,
}

// MaxTTL bounds a configured lifetime. Longer values cannot be carried
// through time.Duration and the exp claim intact.
const MaxTTL = 100 * 365 * 24 * time.Hour

// ParseTTL accepts a plain number of seconds ("3600", "90.5") or a number with
// a unit suffix ("15m", "12H", "1d"). Anything else, including a lifetime
// above MaxTTL, yields DefaultTTL.
func ParseTTL(v string) time.Duration {
	v = strings.TrimSpace(v)
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		return fromSeconds(n)
	}
	m := ttlPattern.FindStringSubmatch(v)
	if m == nil {
		return DefaultTTL
	}
	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return DefaultTTL
	}
	unit := ttlUnits[strings.ToLower(m[2])]
	return fromSeconds(amount * unit.Seconds())
}

func fromSeconds(secs float64) time.Duration {
	secs = math.Round(secs)
	if math.IsNaN(secs) || secs <= 0 || secs > MaxTTL.Seconds() {
		return DefaultTTL
	}
	return time.Duration(secs) * time.Second
}
