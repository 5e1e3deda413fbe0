// Package docs serves the OpenAPI description of the API together with a
// Swagger UI page that renders it.
package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var descriptor []byte

const uiPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Filmly API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({ url: "openapi.json", dom_id: "#swagger-ui" });
  </script>
</body>
</html>
`

// YAML returns the raw descriptor.
func YAML() []byte {
	return descriptor
}

// JSON converts the descriptor to JSON.
func JSON() ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(descriptor, &doc); err != nil {
		return nil, fmt.Errorf("parsing openapi descriptor: %w", err)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding openapi descriptor: %w", err)
	}
	return b, nil
}

// Register mounts the documentation routes under prefix (e.g. "/docs").
func Register(r *mux.Router, prefix string) error {
	jsonDoc, err := JSON()
	if err != nil {
		return err
	}

	r.HandleFunc(prefix, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, prefix+"/", http.StatusMovedPermanently)
	}).Methods("GET")
	r.HandleFunc(prefix+"/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(uiPage))
	}).Methods("GET")
	r.HandleFunc(prefix+"/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(YAML())
	}).Methods("GET")
	r.HandleFunc(prefix+"/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(jsonDoc)
	}).Methods("GET")
	return nil
}
