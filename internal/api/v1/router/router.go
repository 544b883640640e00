package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"seoaudit/internal/api/v1/handler"
	"seoaudit/internal/api/v1/middleware"
	"seoaudit/internal/log"
)

// New assembles the API mux and wraps it in the middleware chain. The outer
// layers (recovery, headers, logging) apply to every route including 404s.
func New(h *handler.Handler) http.Handler {
	appName := "seoaudit"
	apiVersion := "v1"
	basePath := "/" + appName + "/api/" + apiVersion

	mux := http.NewServeMux()

	register := func(path string, hf http.HandlerFunc) {
		mux.HandleFunc(basePath+path, hf)
	}

	register("/health", h.HealthCheck)
	register("/analyze", h.Analyze)

	return middleware.RecoverPanic(
		log.Logger,
		func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
		middleware.SecureHeaders(
			middleware.Logging(
				middleware.Metrics(
					middleware.Compression(
						middleware.CORS(
							middleware.RateLimit(mux),
						),
					),
				),
			),
		),
	)
}

// NewMetricsRouter serves the Prometheus scrape endpoint on its own mux.
func NewMetricsRouter() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}
