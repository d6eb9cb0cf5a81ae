// Package api exposes the calculator over HTTP/JSON.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

type Options struct {
	Rate  rate.Limit
	Burst int
}

func DefaultOptions() Options {
	return Options{Rate: 10, Burst: 20}
}

// NewRouter wires every endpoint. The returned handler already includes
// CORS and request logging.
func NewRouter(h *Handler, opts Options) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	limiter := NewIPRateLimiter(opts.Rate, opts.Burst)
	api := r.PathPrefix("/api").Subrouter()
	api.Use(limiter.Middleware)

	api.HandleFunc("/geometry", h.Geometry).Methods(http.MethodPost)
	api.HandleFunc("/mass", h.Mass).Methods(http.MethodPost)
	api.HandleFunc("/thermal", h.Thermal).Methods(http.MethodPost)
	api.HandleFunc("/design", h.Design).Methods(http.MethodPost)
	api.HandleFunc("/report/pdf", h.ReportPDF).Methods(http.MethodPost)
	api.HandleFunc("/report/xlsx", h.ReportXLSX).Methods(http.MethodPost)
	api.HandleFunc("/presets", h.Presets).Methods(http.MethodGet)

	return CORS(Logging(r))
}
