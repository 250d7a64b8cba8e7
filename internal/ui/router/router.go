// Package router sets up HTTP routes for the site server.
package router

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/piper-lan/piper-site/internal/registry"
	"github.com/piper-lan/piper-site/internal/site"
	homeFeature "github.com/piper-lan/piper-site/internal/ui/features/home"
	screenshotsFeature "github.com/piper-lan/piper-site/internal/ui/features/screenshots"
	"github.com/piper-lan/piper-site/internal/ui/notifier"
	"github.com/piper-lan/piper-site/internal/ui/resources"
	"github.com/piper-lan/piper-site/pkg/carousel"
)

// Deps are the collaborators shared by every feature.
type Deps struct {
	Content      site.Content
	Registry     *registry.Registry
	SessionStore sessions.Store
	Notifier     *notifier.Notifier
	Loader       carousel.Loader
	// Media is the tree screenshots are served from under /media/.
	Media fs.FS
	// Root is the directory named in placeholder hints.
	Root       string
	Transition time.Duration
	Logger     *slog.Logger
	// Reloader backs the dev-mode hot reload endpoints. Nil outside dev mode.
	Reloader *Reloader
}

// SetupRoutes configures all routes for the site server.
func SetupRoutes(router chi.Router, deps Deps, isDev bool) error {
	// Hot reload endpoints for dev mode
	if isDev && deps.Reloader != nil {
		deps.Reloader.Mount(router)
	}

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	// Static assets
	router.Handle("/static/*", resources.Handler())
	router.Handle(screenshotsFeature.MediaPrefix+"*", http.StripPrefix(screenshotsFeature.MediaPrefix, http.FileServer(http.FS(deps.Media))))

	// Feature routes
	if err := homeFeature.SetupRoutes(
		router,
		deps.Content,
		deps.Registry,
		deps.SessionStore,
		deps.Loader,
		deps.Root,
		deps.Transition,
		deps.Logger,
		isDev,
	); err != nil {
		return err
	}

	if err := screenshotsFeature.SetupRoutes(
		router,
		deps.Registry,
		deps.SessionStore,
		deps.Notifier,
		deps.Loader,
		deps.Root,
		deps.Logger,
	); err != nil {
		return err
	}

	return nil
}
