// Package server exposes the form controller as a JSON API plus the
// embedded browser UI. Each session owns one project record; all external
// fetches and merges happen server-side.
package server

import (
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github_readme_generator/generator"
	"github_readme_generator/githost"
	"github_readme_generator/readme"
	"github_readme_generator/settings"
)

//go:embed web/dist
var embeddedStatic embed.FS

// operationTimeout bounds each external-API chain.
const operationTimeout = 60 * time.Second

// Server wires the host client, the settings store, and the session store
// behind the HTTP routes.
type Server struct {
	host   *githost.Client
	cfg    *settings.Store
	store  *sessionStore
	static http.Handler
	log    *slog.Logger

	// newLLM builds the completion client from current settings; swapped
	// out in tests.
	newLLM func(generator.LLMSettings) (generator.LLMClient, error)
}

// session is one browser session's state. The mutex serializes the async
// chains so only one of them mutates the record at a time.
type session struct {
	mu         sync.Mutex
	record     readme.ProjectRecord
	markdown   string // last assembled document, stale until regenerated
	warnings   []string
	keyInvalid bool
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func newStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*session)}
}

func (s *sessionStore) add() (string, *session) {
	id := uuid.NewString()
	sess := &session{record: readme.NewProjectRecord()}
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return id, sess
}

func (s *sessionStore) get(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// New creates a Server.
func New(host *githost.Client, cfg *settings.Store, logger *slog.Logger) (*Server, error) {
	if host == nil || cfg == nil {
		return nil, errors.New("host client and settings store required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	sub, err := fs.Sub(embeddedStatic, "web/dist")
	if err != nil {
		return nil, err
	}
	return &Server{
		host:   host,
		cfg:    cfg,
		store:  newStore(),
		static: http.FileServer(http.FS(sub)),
		log:    logger,
		newLLM: func(s generator.LLMSettings) (generator.LLMClient, error) {
			return generator.NewOpenAILLM(s)
		},
	}, nil
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/sections", s.handleSections)
		r.Get("/settings", s.handleSettingsGet)
		r.Put("/settings", s.handleSettingsPut)

		r.Post("/sessions", s.handleSessionCreate)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", s.handleSessionGet)
			r.Put("/record", s.handleRecordPut)
			r.Post("/fetch", s.handleFetch)
			r.Post("/describe", s.handleDescribe)
			r.Post("/assemble", s.handleAssemble)
			r.Get("/preview", s.handlePreview)
			r.Get("/download", s.handleDownload)
		})
	})

	r.Handle("/*", s.staticHandler())
	return r
}

// staticHandler serves the embedded UI, falling back to index.html for
// non-API paths.
func (s *Server) staticHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}
		if r.URL.Path == "/" {
			r.URL.Path = "/index.html"
		}
		s.static.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start))
	})
}
