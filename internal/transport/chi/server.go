// Package chi exposes the search service over HTTP: the JSON search and
// lookup API, the health and metrics endpoints, and the static search page.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kensaku-dev/kensaku/internal/domain"
	"github.com/kensaku-dev/kensaku/internal/metrics"
	healthuc "github.com/kensaku-dev/kensaku/internal/usecase/health"
	problemuc "github.com/kensaku-dev/kensaku/internal/usecase/problem"
	searchuc "github.com/kensaku-dev/kensaku/internal/usecase/search"
)

// ErrorCode identifies an API error kind in the response body.
type ErrorCode string

// API error codes.
const (
	CodeBadRequest      ErrorCode = "bad_request"
	CodeUnauthorized    ErrorCode = "unauthorized"
	CodeNotFound        ErrorCode = "not_found"
	CodeProblemNotFound ErrorCode = "problem_not_found"
	CodeInternalError   ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// searchResultItem is one JSON search hit.
type searchResultItem struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags,omitempty"`
	Score float64  `json:"score"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the HTTP handlers for the search API.
type Server struct {
	search        *searchuc.Service
	problems      *problemuc.Service
	health        *healthuc.Service
	staticDir     string
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	problems *problemuc.Service,
	health *healthuc.Service,
	staticDir string,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:    search,
		problems:  problems,
		health:    health,
		staticDir: staticDir,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeProblemNotFound),
	}
	return s
}

// Routes registers all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.Index)
	r.Get("/index.html", s.Index)
	r.Get("/api/search", s.SearchProblems)
	r.Get("/api/problems/{id}", s.GetProblem)
	r.Get("/health", s.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "not found")
	})
}

// Index serves the static search page. The file is written directly rather
// than through http.ServeFile, which redirects paths ending in /index.html.
func (s *Server) Index(w http.ResponseWriter, _ *http.Request) {
	page, err := os.ReadFile(filepath.Join(s.staticDir, "index.html"))
	if err != nil {
		s.logger.Error("read search page", zap.Error(err))
		writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

// SearchProblems handles GET /api/search?q=...&k=...
// An empty query yields an empty array, mirroring the search service.
func (s *Server) SearchProblems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	k := 0
	if raw := r.URL.Query().Get("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, CodeBadRequest, "k must be a positive integer")
			return
		}
		k = parsed
	}

	start := time.Now()
	hits := s.search.Search(r.Context(), query, k)

	if strings.TrimSpace(query) == "" {
		metrics.SearchesTotal.WithLabelValues("empty_query").Inc()
	} else {
		metrics.SearchesTotal.WithLabelValues("ok").Inc()
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
		metrics.SearchResults.Observe(float64(len(hits)))
	}

	items := make([]searchResultItem, len(hits))
	for i := range hits {
		items[i] = searchResultItem{
			ID:    hits[i].ID(),
			Title: hits[i].Title(),
			Tags:  hits[i].Tags(),
			Score: hits[i].Score(),
		}
	}

	writeJSON(w, http.StatusOK, items)
}

// GetProblem handles GET /api/problems/{id} and returns the stored record verbatim.
func (s *Server) GetProblem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	raw, err := s.problems.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	rep := s.health.Check(r.Context())

	status := http.StatusOK
	if rep.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, rep)
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err, err.Error()) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}

func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
