// Package server exposes a scene over a JSON HTTP API so that a remote UI
// can drive gestures while the engine stays authoritative.
//
// All engine calls are serialized by one mutex. Routes:
//
//	GET  /health/live
//	GET  /health/ready
//	GET  /api/v1/scene                         current placement as a scene
//	GET  /api/v1/items                         every item
//	GET  /api/v1/items/{name}                  one item
//	GET  /api/v1/items/{name}/edges            visible sibling edges
//	POST /api/v1/items/{name}/activate         bring to front
//	POST /api/v1/items/{name}/cancel           abandon the running gesture
//	POST /api/v1/items/{name}/{kind}/start     kind is drag or resize
//	POST /api/v1/items/{name}/{kind}/move      {"dx", "dy", "direction"}
//	POST /api/v1/items/{name}/{kind}/end       {"dx", "dy", "direction"}
//	PUT  /api/v1/containers/{name}             {"width", "height"}
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/dashlayout/pkg/buildinfo"
	dlerrors "github.com/matzehuels/dashlayout/pkg/errors"
	"github.com/matzehuels/dashlayout/pkg/layout"
	"github.com/matzehuels/dashlayout/pkg/observability"
	"github.com/matzehuels/dashlayout/pkg/scene"
)

// Defaults for [Options].
const (
	DefaultAddr            = ":8080"
	DefaultShutdownTimeout = 5 * time.Second
)

// Options configures a [Server].
type Options struct {
	// Scene is instantiated once at startup. Required.
	Scene *scene.Scene
	// Logger receives request and gesture logs. Nil discards them.
	Logger *log.Logger
	// ShutdownTimeout bounds graceful shutdown in ListenAndServe.
	ShutdownTimeout time.Duration
}

// Server serves one scene layout.
type Server struct {
	mu     sync.Mutex
	logger *log.Logger
	layout *scene.Layout
	router chi.Router

	shutdownTimeout time.Duration
}

// New builds the scene and the router.
func New(opts Options) (*Server, error) {
	if opts.Scene == nil {
		return nil, dlerrors.New(dlerrors.ErrCodeInvalidInput, "server needs a scene")
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = DefaultShutdownTimeout
	}

	l, err := opts.Scene.Build(layout.New(layout.Options{Logger: opts.Logger}))
	if err != nil {
		return nil, err
	}
	s := &Server{
		logger:          opts.Logger,
		layout:          l,
		shutdownTimeout: opts.ShutdownTimeout,
	}
	s.router = s.routes()
	return s, nil
}

// Handler returns the HTTP handler of the API.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// =============================================================================
// Routing
// =============================================================================

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/health/live", s.handleHealth("alive"))
	r.Get("/health/ready", s.handleHealth("ready"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/scene", s.handleScene)
		r.Get("/items", s.handleItems)
		r.Route("/items/{name}", func(r chi.Router) {
			r.Get("/", s.handleItem)
			r.Get("/edges", s.handleEdges)
			r.Post("/activate", s.handleActivate)
			r.Post("/cancel", s.handleCancel)
			r.Post("/{kind}/start", s.handleStart)
			r.Post("/{kind}/move", s.handleMove)
			r.Post("/{kind}/end", s.handleEnd)
		})
		r.Put("/containers/{name}", s.handleResizeContainer)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, dlerrors.New(dlerrors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
	})
	return r
}

// instrument sets the Server header, reports the request to the HTTP hooks
// and logs it at debug level.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set("Server", buildinfo.ServerHeader())
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		d := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, status, d)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", status, "duration", d)
	})
}

// =============================================================================
// Responses
// =============================================================================

type errorResponse struct {
	Error string        `json:"error"`
	Code  dlerrors.Code `json:"code"`
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("encode response", "method", r.Method, "path", r.URL.Path, "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := dlerrors.GetCode(err)
	if code == "" {
		code = dlerrors.ErrCodeInternal
	}
	s.writeJSON(w, r, statusFor(code), errorResponse{Error: dlerrors.UserMessage(err), Code: code})
}

func statusFor(code dlerrors.Code) int {
	switch code {
	case dlerrors.ErrCodeNotFound, dlerrors.ErrCodeItemNotFound, dlerrors.ErrCodeContainerNotFound:
		return http.StatusNotFound
	case dlerrors.ErrCodeInvalidGesture:
		return http.StatusConflict
	case dlerrors.ErrCodeInvalidInput, dlerrors.ErrCodeInvalidDirection, dlerrors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case dlerrors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func decode(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return dlerrors.Wrap(dlerrors.ErrCodeInvalidInput, err, "invalid JSON body")
	}
	return nil
}
