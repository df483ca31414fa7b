// Package server implements the local preview server.
//
// The server exposes a directory of outline files as a browsable gallery:
// an HTML index at / and rendered mindmaps at /mindmaps/{name}.svg and
// /mindmaps/{name}.png. Artifacts are rendered on demand through the
// pipeline and cached by outline content hash, so editing an outline file
// invalidates its artifacts on the next request.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/yanderlabs/mindweave/pkg/cache"
	"github.com/yanderlabs/mindweave/pkg/pipeline"
	"github.com/yanderlabs/mindweave/pkg/render/radial"
)

// Options configures a preview server.
type Options struct {
	// Dir is the directory of outline JSON files to serve.
	Dir string

	// Theme is the theme rendered mindmaps use. Empty means the default theme.
	Theme string

	// Cache stores rendered artifacts. Nil disables caching.
	Cache cache.Cache

	// Logger receives request and render logs. Nil discards them.
	Logger *log.Logger
}

// Server renders outlines from a directory over HTTP.
type Server struct {
	dir    string
	theme  string
	cache  cache.Cache
	logger *log.Logger
	runner *pipeline.Runner
}

// New creates a preview server for the given options.
func New(opts Options) *Server {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Theme == "" {
		opts.Theme = radial.DefaultTheme
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	return &Server{
		dir:    opts.Dir,
		theme:  opts.Theme,
		cache:  opts.Cache,
		logger: opts.Logger,
		runner: pipeline.NewRunner(opts.Logger),
	}
}

// Handler returns the HTTP handler with all routes configured.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/", s.handleIndex)
	r.Get("/outlines/{name}", s.handleView)
	r.Get("/mindmaps/{name}.svg", s.handleMindmap(pipeline.FormatSVG))
	r.Get("/mindmaps/{name}.png", s.handleMindmap(pipeline.FormatPNG))

	return r
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const requestIDKey ctxKey = 0

// requestID assigns each request a UUID (honoring an inbound X-Request-ID)
// and echoes it on the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := req.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(req.Context(), requestIDKey, id)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// reqID returns the request's ID, or "" outside the middleware.
func reqID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (s *Server) handleHealth(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// logRequests logs one line per request with the chi request ID.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if s.logger == nil {
			next.ServeHTTP(w, req)
			return
		}

		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)

		s.logger.Info("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", reqID(req.Context()))
	})
}
