package chi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/clearstone-io/tradematch/internal/domain"
	documentuc "github.com/clearstone-io/tradematch/internal/usecase/document"
	healthuc "github.com/clearstone-io/tradematch/internal/usecase/health"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the document reconciliation API over HTTP.
type Server struct {
	documents     *documentuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(documents *documentuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		documents: documents,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrFolderNotFound, http.StatusNotFound),
		sentinelHandler(domain.ErrSourceNotFound, http.StatusNotFound),
		sentinelHandler(domain.ErrSourceUnreadable, http.StatusBadRequest),
		sentinelHandler(domain.ErrScoringProviderError, http.StatusBadGateway),
	}
	return s
}

// Routes mounts all API routes on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/api/documents/trade-agreements", s.ListTradeAgreements)
	r.Get("/api/documents/term-sheets", s.ListTermSheets)
	r.Get("/api/documents/compare", s.CompareDocuments)
	r.Get("/health", s.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())
}

// ListTradeAgreements handles GET /api/documents/trade-agreements.
func (s *Server) ListTradeAgreements(w http.ResponseWriter, r *http.Request) {
	files, err := s.documents.ListAgreements(r.Context(), r.URL.Query().Get("folderPath"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}

// ListTermSheets handles GET /api/documents/term-sheets.
func (s *Server) ListTermSheets(w http.ResponseWriter, r *http.Request) {
	files, err := s.documents.ListTermSheets(r.Context(), r.URL.Query().Get("folderPath"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}

// CompareDocuments handles GET /api/documents/compare.
func (s *Server) CompareDocuments(w http.ResponseWriter, r *http.Request) {
	agreementPath := r.URL.Query().Get("tradeAgreementPath")
	termSheetPath := r.URL.Query().Get("termSheetPath")

	if agreementPath == "" {
		writeError(w, http.StatusBadRequest, "tradeAgreementPath query parameter is required")
		return
	}
	if termSheetPath == "" {
		writeError(w, http.StatusBadRequest, "termSheetPath query parameter is required")
		return
	}

	report, err := s.documents.Compare(r.Context(), agreementPath, termSheetPath)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reportToWire(report))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrFolderNotFound,
		domain.ErrSourceNotFound,
		domain.ErrSourceUnreadable,
		domain.ErrScoringProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}
