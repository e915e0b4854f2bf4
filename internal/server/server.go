package server

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/markz-studio/markz/internal/cache"
	"github.com/markz-studio/markz/internal/config"
	"github.com/markz-studio/markz/internal/content"
	"github.com/markz-studio/markz/internal/display"
	"github.com/markz-studio/markz/internal/logging"
	"github.com/markz-studio/markz/internal/metrics"
	"github.com/markz-studio/markz/internal/site"
	markztemplate "github.com/markz-studio/markz/internal/template"
)

// Server is the main markz HTTP server.
type Server struct {
	cfg     *config.Config
	version string
	site    *site.Site
	tmpl    *markztemplate.Renderer
	metrics *metrics.Metrics
	public  fs.FS
	mux     *http.ServeMux
}

// Option adjusts server construction, mostly for tests.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces the wall clock used for the printed date.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New creates a markz server with all dependencies. public holds the static
// assets served at the root (the logo image).
func New(cfg *config.Config, version string, catalog *content.Catalog, public fs.FS, opts ...Option) (*Server, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if cfg.Edition != "" {
		var err error
		catalog, err = catalog.WithDefault(cfg.Edition)
		if err != nil {
			return nil, err
		}
	}

	loc, err := display.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	formatter := display.NewFormatter(loc)
	if o.now != nil {
		formatter = formatter.WithClock(o.now)
	}

	tmpl := markztemplate.NewRenderer()
	st, err := site.New(catalog, site.Options{
		Version:   version,
		Formatter: formatter,
		Cache:     cache.New(cfg.CacheTTL, cfg.CacheMaxSize),
		Renderer:  tmpl,
	})
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     cfg,
		version: version,
		site:    st,
		tmpl:    tmpl,
		public:  public,
		mux:     http.NewServeMux(),
	}

	if cfg.Metrics {
		s.metrics, err = metrics.New()
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
	if s.metrics != nil {
		s.mux.Handle("GET /metrics", s.metrics.Handler())
	}
	s.mux.HandleFunc("GET /editions/{$}", s.handleEditions)
	s.mux.HandleFunc("GET /editions/{edition}", s.handleEdition)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /{asset}", s.handleAsset)
}

// Handler returns the server's HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = s.loggingMiddleware(h)
	h = logging.RequestIDMiddleware(h)
	return h
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(200)
	w.Write([]byte("OK"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, s.site.Catalog().DefaultName(), "/")
}

func (s *Server) handleEdition(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("edition")
	s.renderPage(w, r, name, "/editions/"+name)
}

func (s *Server) handleEditions(w http.ResponseWriter, r *http.Request) {
	s.setResponseHeaders(w, "", "", 0)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(s.tmpl.RenderEditions(s.version, s.site.Editions("/editions")))
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, edition, basePath string) {
	page, err := s.site.Render(edition, r.URL.Query(), basePath)
	if err != nil {
		if errors.Is(err, site.ErrUnknownEdition) {
			s.renderError(w, 404, "unknown-edition", fmt.Sprintf("No edition named %q.", edition))
			return
		}
		logging.FromContext(r.Context()).Error("render page failed", "error", err, "edition", edition)
		s.renderError(w, 500, "render-error", "The page could not be rendered.")
		return
	}

	if s.metrics != nil {
		s.metrics.RecordPageRender(page.Edition, page.Duration)
		s.metrics.RecordExpanded(page.Expanded)
		if page.Cache != cache.StatusBypass {
			s.metrics.RecordCacheLookup(string(page.Cache))
		}
	}

	s.setResponseHeaders(w, page.Edition, string(page.Cache), page.Duration.Milliseconds())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// The printed date is derived from the clock on every request.
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(200)
	w.Write(page.HTML)
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("asset")
	if !fs.ValidPath(name) || name[0] == '.' {
		http.NotFound(w, r)
		return
	}
	data, err := fs.ReadFile(s.public, name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(data)
}

func (s *Server) renderError(w http.ResponseWriter, statusCode int, errType, message string) {
	page := s.tmpl.RenderError(markztemplate.ErrorData{
		Version:    s.version,
		StatusCode: statusCode,
		ErrorType:  errType,
		Message:    message,
	})

	s.setResponseHeaders(w, "", "", 0)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)
	w.Write(page)
}

func (s *Server) setResponseHeaders(w http.ResponseWriter, edition, cacheStatus string, renderMs int64) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Referrer-Policy", "no-referrer")
	w.Header().Set("X-Frame-Options", "DENY")

	w.Header().Set("X-Markz-Version", s.version)
	if edition != "" {
		w.Header().Set("X-Markz-Edition", edition)
		w.Header().Set("X-Markz-Cache", cacheStatus)
		w.Header().Set("X-Markz-Render-Ms", fmt.Sprintf("%d", renderMs))
	}
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &logging.ByteCountingWriter{ResponseWriter: w}
		next.ServeHTTP(wrapped, r)

		if wrapped.StatusCode == 0 {
			wrapped.StatusCode = 200
		}

		route := routeName(r.Pattern)
		if s.metrics != nil {
			s.metrics.RecordHTTPRequest(r.Method, route, wrapped.StatusCode)
		}

		logging.LogRequest(slog.Default(), logging.RequestFields{
			Method:    r.Method,
			Path:      r.URL.Path,
			Route:     route,
			Edition:   wrapped.Header().Get("X-Markz-Edition"),
			RequestID: logging.RequestID(r.Context()),
			Status:    wrapped.StatusCode,
			Cache:     wrapped.Header().Get("X-Markz-Cache"),
			RenderMs:  parseHeaderInt64(wrapped.Header().Get("X-Markz-Render-Ms")),
			TotalMs:   time.Since(start).Milliseconds(),
			Bytes:     wrapped.Bytes,
		})
	})
}

// routeName maps a matched ServeMux pattern to a low-cardinality label.
func routeName(pattern string) string {
	switch pattern {
	case "GET /{$}":
		return "page"
	case "GET /editions/{edition}":
		return "edition"
	case "GET /editions/{$}":
		return "editions"
	case "GET /healthz":
		return "healthz"
	case "GET /metrics":
		return "metrics"
	case "GET /{asset}":
		return "asset"
	case "":
		return "unmatched"
	default:
		return pattern
	}
}

func parseHeaderInt64(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}
