package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"seoaudit/internal/service"
	"seoaudit/internal/util"
	"seoaudit/pkg/response"
)

// Handler carries the audit pipeline behind the HTTP surface.
type Handler struct {
	analyzer *service.Analyzer
}

func New(analyzer *service.Analyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"status": "ok"}, "")
}

type analyzeRequest struct {
	URL string `json:"url"`
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.URL == "" {
		response.Error(w, http.StatusBadRequest, "missing 'url' field")
		return
	}
	if !util.IsValidURL(req.URL) {
		response.Error(w, http.StatusBadRequest, "invalid 'url' format")
		return
	}

	report, err := h.analyzer.Analyze(r.Context(), req.URL)
	if err != nil {
		response.Error(w, analyzeStatusCode(err), fmt.Sprintf("failed to analyze page: %v", err))
		return
	}
	if report == nil {
		response.Error(w, http.StatusInternalServerError, "failed to analyze page")
		return
	}

	response.Success(w, report, "")
}

// analyzeStatusCode maps pipeline failures onto upstream-style status codes;
// everything unrecognized is a plain 500.
func analyzeStatusCode(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case strings.Contains(err.Error(), "connection refused"),
		strings.Contains(err.Error(), "no such host"),
		strings.Contains(err.Error(), "timeout"):
		return http.StatusBadGateway
	case strings.Contains(err.Error(), "service unavailable"):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
