// Package spec embeds the OpenAPI description of the Trip Registry API and
// serves it at /openapi.yaml.
package spec

import (
	_ "embed"
	"net/http"
)

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte

// Handler serves OpenAPI as application/yaml.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(OpenAPI)
	})
}
