// Package http wires the service's routes.
package http

import (
	nethttp "net/http"

	"github.com/deanlue0801/alliance-war-planner/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/api/plan", handler.Plan)
	mux.HandleFunc("/api/convert", handler.Convert)
	return mux
}
