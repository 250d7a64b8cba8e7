// Package home provides the landing page feature.
package home

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/piper-lan/piper-site/internal/registry"
	"github.com/piper-lan/piper-site/internal/site"
	"github.com/piper-lan/piper-site/pkg/carousel"
)

// SetupRoutes configures routes for the home feature.
func SetupRoutes(
	router chi.Router,
	content site.Content,
	reg *registry.Registry,
	sessionStore sessions.Store,
	loader carousel.Loader,
	root string,
	transition time.Duration,
	logger *slog.Logger,
	isDev bool,
) error {
	handlers := NewHandlers(content, reg, sessionStore, loader, root, transition, logger, isDev)

	router.Get("/", handlers.HomePage)

	return nil
}
