package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	s := New("secret", time.Hour)

	raw, err := s.Issue("user@example.com")
	require.NoError(t, err)

	claims, err := s.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
	assert.Equal(t, int64(3600), s.ExpiresIn())
}

func TestIssueGivesDistinctTokens(t *testing.T) {
	s := New("secret", time.Hour)
	a, err := s.Issue("user@example.com")
	require.NoError(t, err)
	b, err := s.Issue("user@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	raw, err := New("secret", time.Hour).Issue("user@example.com")
	require.NoError(t, err)

	_, err = New("other", time.Hour).Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	s := New("secret", time.Hour)
	raw, err := s.Issue("user@example.com")
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)
	forged, err := New("secret", time.Hour).Issue("admin@example.com")
	require.NoError(t, err)
	parts[1] = strings.Split(forged, ".")[1]

	_, err = s.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	s := New("secret", time.Minute)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	raw, err := s.Issue("user@example.com")
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMalformedAndUnsigned(t *testing.T) {
	s := New("secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := s.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, raw)
	}

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Email: "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = s.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRequiresExpiry(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Email: "user@example.com"}).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = New("secret", time.Hour).Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTTL(t *testing.T) {
	cases := map[string]time.Duration{
		"3600":  time.Hour,
		"90":    90 * time.Second,
		"90.6":  91 * time.Second,
		"30s":   30 * time.Second,
		"2m":    2 * time.Minute,
		"1H":    time.Hour,
		"1.5h":  90 * time.Minute,
		"7d":    7 * 24 * time.Hour,
		" 15m ": 15 * time.Minute,
		"bogus": DefaultTTL,
		"10w":   DefaultTTL,
		"":      DefaultTTL,
		"0":     DefaultTTL,
		"-5":    DefaultTTL,
		"0.4":   DefaultTTL,
		"1e3":   1000 * time.Second,

		"36500d": MaxTTL,

		// Too long to represent: fall back instead of wrapping around.
		"36501d":         DefaultTTL,
		"1e12":           DefaultTTL,
		"20000000000":    DefaultTTL,
		"9999999999999h": DefaultTTL,
		"1e400":          DefaultTTL,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseTTL(in), in)
	}
}

func TestNewFallsBackToDefaultTTL(t *testing.T) {
	assert.Equal(t, int64(3600), New("secret", 0).ExpiresIn())
}

func TestExpiresInMatchesExpClaim(t *testing.T) {
	for _, v := range []string{"1e12", "36500d"} {
		svc := New("secret", ParseTTL(v))
		raw, err := svc.Issue("user@example.com")
		require.NoError(t, err)
		claims, err := svc.Verify(raw)
		require.NoError(t, err, v)
		assert.Equal(t, svc.ExpiresIn(), claims.ExpiresAt.Unix()-claims.IssuedAt.Unix(), v)
	}
}
