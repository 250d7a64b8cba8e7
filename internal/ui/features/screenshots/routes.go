// Package screenshots provides the screenshots carousel feature.
package screenshots

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/piper-lan/piper-site/internal/registry"
	"github.com/piper-lan/piper-site/internal/ui/notifier"
	"github.com/piper-lan/piper-site/pkg/carousel"
)

// SetupRoutes configures routes for the screenshots feature.
func SetupRoutes(
	router chi.Router,
	reg *registry.Registry,
	sessionStore sessions.Store,
	notify *notifier.Notifier,
	loader carousel.Loader,
	root string,
	logger *slog.Logger,
) error {
	handlers := NewHandlers(reg, sessionStore, notify, loader, root, logger)

	router.Route("/screenshots/{id}", func(r chi.Router) {
		r.Get("/updates", handlers.Updates)
		r.Post("/advance/{step}", handlers.Advance)
		r.Post("/select/{index}", handlers.Select)
	})

	return nil
}
