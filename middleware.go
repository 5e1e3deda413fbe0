package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/example/filmly/internal/token"
)

type contextKey string

const (
	claimsContextKey = contextKey("claims")
	tokenContextKey  = contextKey("token")
)

func claimsFromContext(ctx context.Context) (*token.Claims, bool) {
	c, ok := ctx.Value(claimsContextKey).(*token.Claims)
	return c, ok && c != nil
}

func tokenFromContext(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(tokenContextKey).(string)
	return t, ok && t != ""
}

// bearerToken extracts <token> from "Authorization: Bearer <token>"
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

// Authenticate middleware guards every route except health and login. The
// blacklist is consulted before the signature so a revoked token is rejected
// even while it would still verify.
func (a *App) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			unauthorized(w, "Authorization header is missing or invalid")
			return
		}

		if a.DB.IsTokenRevoked(raw) {
			unauthorized(w, "Token has been revoked")
			return
		}

		claims, err := a.Tokens.Verify(raw)
		if err != nil {
			unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		ctx = context.WithValue(ctx, tokenContextKey, raw)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CORS middleware handles CORS headers and answers preflight requests
func (a *App) CORS(next http.Handler) http.Handler {
	allowAny := false
	for _, o := range a.Config.AllowedOrigins {
		if o == "*" {
			allowAny = true
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			allowed := allowAny
			for _, o := range a.Config.AllowedOrigins {
				if o == origin {
					allowed = true
					break
				}
			}
			if allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Logging middleware tags each request with an id and logs it once served
func (a *App) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		fields := requestFields(r)
		fields["request_id"] = requestID
		fields["status"] = rec.status
		fields["bytes"] = rec.bytes
		fields["duration"] = time.Since(start).String()
		fields["remote_addr"] = r.RemoteAddr
		a.logger.WithFields(fields).Info("request served")
	})
}

func requestFields(r *http.Request) logrus.Fields {
	return logrus.Fields{
		"request_method": r.Method,
		"request_url":    r.URL.String(),
	}
}

// statusRecorder remembers what was sent so the request log can report it.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}

// recoverPanic turns a panicking handler into a 500 and closes the connection
func (a *App) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				a.serverError(w, r, fmt.Errorf("%v", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// SecurityHeaders sets the hardening headers on every response. API
// responses carry bearer tokens and the live favorites list, so they are
// never stored by caches; the docs pages may be.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		if strings.HasPrefix(r.URL.Path, apiPrefix+"/") {
			h.Set("Cache-Control", "no-store")
		}
		next.ServeHTTP(w, r)
	})
}
