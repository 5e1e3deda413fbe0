package docs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONDescriptor(t *testing.T) {
	b, err := JSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	for _, p := range []string{"/health", "/auth", "/logout", "/genres", "/movies", "/favorites"} {
		assert.Contains(t, paths, p)
	}
}

func TestRegister(t *testing.T) {
	r := mux.NewRouter()
	require.NoError(t, Register(r, "/docs"))

	cases := []struct {
		path        string
		status      int
		contentType string
	}{
		{"/docs", http.StatusMovedPermanently, ""},
		{"/docs/", http.StatusOK, "text/html; charset=utf-8"},
		{"/docs/openapi.yaml", http.StatusOK, "application/yaml"},
		{"/docs/openapi.json", http.StatusOK, "application/json"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equal(t, tc.status, rec.Code, tc.path)
		if tc.contentType != "" {
			assert.Equal(t, tc.contentType, rec.Header().Get("Content-Type"), tc.path)
		}
		if tc.path == "/docs/openapi.yaml" {
			assert.Equal(t, YAML(), rec.Body.Bytes())
		}
	}
}
