package app

import (
	"github.com/avc-dev/url-shortener-console/internal/handler"
	"github.com/avc-dev/url-shortener-console/internal/middleware"
	"github.com/avc-dev/url-shortener-console/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, auth *service.AuthService, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5, "application/json"))

	authMiddleware := middleware.NewAuthMiddleware(auth, logger)

	r.Get("/ping", h.Ping)

	r.Route("/api/console", func(r chi.Router) {
		r.Use(authMiddleware.Session)

		r.Get("/", h.GetView)
		r.Delete("/", h.DropView)
		r.Put("/forms/{form}", h.SetForm)

		r.Post("/create", h.Create)
		r.Post("/resolve", h.Resolve)
		r.Post("/stats", h.Stats)
		r.Post("/update", h.Update)

		r.Post("/delete", h.RequestDelete)
		r.Post("/delete/confirm", h.ConfirmDelete)
		r.Post("/delete/cancel", h.CancelDelete)

		r.Post("/copy", h.Copy)
		r.Post("/open", h.Open)
	})

	return r
}
