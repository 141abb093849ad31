package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/ytgebes/biospace/pkg/dashboard"
	"github.com/ytgebes/biospace/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/dashboard.go -pkg mocks -skip-ensure -fmt goimports . Dashboard

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	maxFormSize   = 1024 * 1024      // 1MB
	maxUploadSize = 32 * 1024 * 1024 // 32MB
)

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	dashboard Dashboard
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
	templates  *template.Template
}

// Dashboard is the set of user actions served over HTTP
type Dashboard interface {
	Page(ctx context.Context, sid, query string) (dashboard.PageView, error)
	Search(ctx context.Context, sid, query string) (dashboard.SearchView, error)
	SummarizeRow(ctx context.Context, sid, query string, idx int) (dashboard.Row, error)
	Ask(ctx context.Context, sid, question string) ([]domain.ChatMessage, error)
	SelectLanguage(ctx context.Context, sid, lang string) (dashboard.LanguageView, error)
	Language(ctx context.Context, sid string) (dashboard.LanguageView, error)
	TranslateColumns(ctx context.Context, sid string) ([]string, error)
	SummarizeUpload(ctx context.Context, files []dashboard.Upload) []dashboard.UploadSummary
	Find(query string, limit int) []domain.Publication
	SummarizeURL(ctx context.Context, url string) domain.SummaryResult
	Languages() []domain.Language
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, dash Dashboard, version string, debug bool) (*Server, error) {
	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		config:    cfg,
		dashboard: dash,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
		templates: tmpl,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("biospace", "ytgebes", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(sessionMiddleware())
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.Use(rest.SizeLimit(maxFormSize))
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /search", s.apiSearchHandler)
		r.HandleFunc("POST /summarize", s.apiSummarizeHandler)
		r.HandleFunc("POST /ask", s.apiAskHandler)
		r.HandleFunc("GET /languages", s.apiLanguagesHandler)
	})

	// dashboard routes, htmx partials or full pages
	s.router.Group().Route(func(r *routegroup.Bundle) {
		r.Use(rest.SizeLimit(maxFormSize))
		r.HandleFunc("GET /{$}", s.indexHandler)
		r.HandleFunc("GET /search", s.searchHandler)
		r.HandleFunc("POST /summarize/{idx}", s.summarizeHandler)
		r.HandleFunc("POST /chat", s.chatHandler)
		r.HandleFunc("POST /language", s.languageHandler)
		r.HandleFunc("POST /columns", s.columnsHandler)
	})
	s.router.With(rest.SizeLimit(maxUploadSize)).HandleFunc("POST /upload", s.uploadHandler)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Printf("[ERROR] can't load static files: %v", err)
		return
	}
	s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

// statusFor maps a failure kind to the HTTP status reported to the client
func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNone:
		return http.StatusOK
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindParse, domain.KindSchema:
		return http.StatusUnprocessableEntity
	case domain.KindFetch, domain.KindModel, domain.KindTranslation:
		return http.StatusBadGateway
	case domain.KindInvalidTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
