package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pagepost/pagepost/internal/page"
)

// NewRouter builds the chi router for the service.
func NewRouter(svc *page.Service, static StaticPages, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	h := &handlers{svc: svc, static: static, log: log}

	r.Post("/new", h.create)
	r.Get("/", h.home)
	r.Get("/{pageID}", h.get)
	// Unregistered methods answer the same configured not-found page as
	// unknown paths; the surface has no use for 405s.
	r.NotFound(h.notFound)
	r.MethodNotAllowed(h.notFound)

	return r
}

// requestLogger logs one line per request with method, path, status and
// duration.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
			)
		})
	}
}
