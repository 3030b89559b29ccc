// Package api provides the JSON HTTP API consumed by the frontend.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/otsubo234039/NewsAPP/internal/feed"
	"github.com/otsubo234039/NewsAPP/internal/store"
)

// Aggregator produces the article list for a category.
type Aggregator interface {
	Articles(ctx context.Context, category string) []feed.Article
}

// Translator converts text to a target language, returning "" on any
// failure.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) string
}

// Server holds the dependencies for the API.
type Server struct {
	aggregator Aggregator
	translator Translator
	store      *store.Store
	jwtSecret  []byte
	logger     *slog.Logger
}

// NewServer creates a new API Server instance. translator may be nil, in
// which case the langs parameter is ignored.
func NewServer(agg Aggregator, tr Translator, st *store.Store, jwtSecret string, logger *slog.Logger) *Server {
	return &Server{
		aggregator: agg,
		translator: tr,
		store:      st,
		jwtSecret:  []byte(jwtSecret),
		logger:     logger,
	}
}

// Routes returns the configured http.Handler for the API.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Feed endpoints (public)
	mux.HandleFunc("GET /api/articles", s.handleArticles)
	mux.HandleFunc("GET /api/ping", s.handlePing)
	mux.HandleFunc("GET /api/tags", s.handleTags)

	// Account endpoints (public, session issued on login)
	mux.HandleFunc("POST /api/users", s.handleCreateUser)
	mux.HandleFunc("POST /api/sessions", s.handleCreateSession)
	mux.HandleFunc("DELETE /api/sessions", s.handleDeleteSession)
	mux.HandleFunc("POST /api/user_categories", s.handleUserCategories)

	// Requires a valid session token
	mux.Handle("GET /api/users/me", s.requireAuth(http.HandlerFunc(s.handleGetMe)))

	// Monitoring
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /metrics", s.handleMetrics)

	return mux
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
