package preview

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/exhibitboard/pkg/buildinfo"
	"github.com/matzehuels/exhibitboard/pkg/cache"
	"github.com/matzehuels/exhibitboard/pkg/errors"
	"github.com/matzehuels/exhibitboard/pkg/export"
	"github.com/matzehuels/exhibitboard/pkg/observability"
)

// Loader produces the current board, ready for rendering.
type Loader func(ctx context.Context) (export.Document, error)

// Option configures a [Server].
type Option func(*Server)

// WithCache caches rendered artifacts in c under keys from k (the default
// keyer when nil).
func WithCache(c cache.Cache, k cache.Keyer) Option {
	return func(s *Server) {
		s.cache = c
		if k != nil {
			s.keyer = k
		}
	}
}

// WithTTL sets how long cached artifacts live.
func WithTTL(ttl time.Duration) Option {
	return func(s *Server) { s.ttl = ttl }
}

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithScale sets the PNG scale factor.
func WithScale(scale float64) Option {
	return func(s *Server) { s.scale = scale }
}

// Server renders a board over HTTP.
type Server struct {
	load   Loader
	cache  cache.Cache
	keyer  cache.Keyer
	ttl    time.Duration
	scale  float64
	logger *log.Logger
	router chi.Router
}

// NewServer builds the router for load.
func NewServer(load Loader, opts ...Option) *Server {
	s := &Server{
		load:   load,
		cache:  cache.None,
		keyer:  cache.NewDefaultKeyer(),
		ttl:    cache.DefaultTTL,
		scale:  2.0,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.observe)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/layout.svg", http.StatusFound)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/version", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(buildinfo.Get())
	})
	r.Get("/layout.{format}", s.handleLayout)
	r.Get("/summary", s.handleSummary)
	r.Get("/entries", s.handleEntries)
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdown)
	}
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	f, err := export.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	doc, err := s.load(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	hash, err := cache.HashJSON(doc)
	if err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInternal, err, "hash document"))
		return
	}

	key := s.keyer.ArtifactKey(hash, cache.ArtifactKeyOpts{Format: string(f), Scale: s.scale})
	data, err := cache.Fetch(r.Context(), s.cache, key, cache.KeyTypeArtifact, s.ttl, func() ([]byte, error) {
		return export.Render(r.Context(), doc, f, export.WithScale(s.scale))
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", f.ContentType())
	w.Write(data)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	doc, err := s.load(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", export.FormatText.ContentType())
	io.WriteString(w, doc.Summary)
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	doc, err := s.load(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", export.FormatJSON.ContentType())
	json.NewEncoder(w).Encode(doc.Entries)
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(errors.GetCode(err))
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	} else {
		s.logger.Debug("request rejected", "path", r.URL.Path, "err", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Code: code, Message: errors.UserMessage(err)})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidFormat, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDocument, errors.ErrCodeInvalidKind,
		errors.ErrCodeInvalidLayout, errors.ErrCodeInvalidRegion, errors.ErrCodeOverlap:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

// observe reports every request to the HTTP hooks and the debug log.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		d := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, d)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", status, "took", d)
	})
}
