package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/clearstone-io/tradematch/internal/config"
	logpkg "github.com/clearstone-io/tradematch/internal/logger"
	"github.com/clearstone-io/tradematch/internal/metrics"
	catalogrepo "github.com/clearstone-io/tradematch/internal/repository/catalog"
	"github.com/clearstone-io/tradematch/internal/repository/pdfsource"
	"github.com/clearstone-io/tradematch/internal/repository/xlsxsource"
	chiTransport "github.com/clearstone-io/tradematch/internal/transport/chi"
	openaiScoring "github.com/clearstone-io/tradematch/internal/transport/openai"
	"github.com/clearstone-io/tradematch/internal/usecase/compare"
	documentuc "github.com/clearstone-io/tradematch/internal/usecase/document"
	healthuc "github.com/clearstone-io/tradematch/internal/usecase/health"
	"github.com/clearstone-io/tradematch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()
	cfg := config.MustLoad(env)

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting tradematch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("agreements_dir", cfg.Documents.AgreementsDir),
		zap.String("term_sheets_dir", cfg.Documents.TermSheetsDir),
		zap.String("scoring_provider", cfg.Scoring.Provider),
	)

	// Register comparison metrics explicitly (no init())
	metrics.RegisterComparisonMetrics()

	// Build scorer chain — composition root
	scorer, scorerChecker := buildScorer(cfg.Scoring, logger)
	engine := compare.New(scorer)

	// Create repositories
	catalog := catalogrepo.New()
	agreements := pdfsource.New()
	termSheets := xlsxsource.New()

	// Create use case services
	docSvc := documentuc.New(catalog, agreements, termSheets, engine).
		WithFolders(cfg.Documents.AgreementsDir, cfg.Documents.TermSheetsDir)

	healthSvc := healthuc.New(catalog, cfg.Documents.AgreementsDir, cfg.Documents.TermSheetsDir, scorerChecker)

	// Create chi server
	server := chiTransport.NewServer(docSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildScorer assembles the similarity scorer. The "token" provider is the
// built-in token-overlap scorer; "openai" wraps it as the fallback behind a
// chat-based scorer. The second return value feeds the health service and
// is nil for the built-in scorer.
func buildScorer(cfg config.ScoringConfig, logger *zap.Logger) (compare.Scorer, healthuc.ScorerChecker) {
	local := compare.TokenOverlap{}
	if cfg.Provider != "openai" {
		return local, nil
	}

	remote := openaiScoring.NewScorer(&openaiScoring.Config{
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
		Model:    cfg.Model,
		Provider: cfg.Provider,
		Fallback: local,
		Logger:   logger,
	})
	return remote, remote
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"error": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
