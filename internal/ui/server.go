// Package ui provides the web server for the Piper landing page.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"github.com/piper-lan/piper-site/internal/assets"
	"github.com/piper-lan/piper-site/internal/registry"
	"github.com/piper-lan/piper-site/internal/site"
	"github.com/piper-lan/piper-site/internal/ui/notifier"
	"github.com/piper-lan/piper-site/internal/ui/resources"
	"github.com/piper-lan/piper-site/internal/ui/router"
	"golang.org/x/sync/errgroup"
)

// Server is the landing page server.
type Server struct {
	content      site.Content
	registry     *registry.Registry
	sessionStore *sessions.CookieStore
	notifier     *notifier.Notifier
	reloader     *router.Reloader
	media        fs.FS
	port         int
	watch        bool
	assetsDir    string
	transition   time.Duration
	sweepEvery   time.Duration
	idleTimeout  time.Duration
	logger       *slog.Logger
}

// Config holds configuration for the site server.
type Config struct {
	Port          int
	Watch         bool
	SessionSecret string
	Logger        *slog.Logger
	// AssetsDir overrides the built-in screenshots tree. Empty uses the
	// static assets shipped with the binary.
	AssetsDir          string
	TransitionDuration time.Duration
	SweepInterval      time.Duration
	// IdleTimeout is how long a carousel without an update stream stays
	// mounted.
	IdleTimeout time.Duration
	Content     *site.Content
}

// NewServer creates a new site server instance.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	content := site.Default()
	if cfg.Content != nil {
		content = *cfg.Content
	}

	return &Server{
		content:      content,
		registry:     registry.New(),
		sessionStore: sessionStore,
		notifier:     notifier.New(),
		reloader:     router.NewReloader(),
		media:        MediaFS(cfg.AssetsDir),
		port:         cfg.Port,
		watch:        cfg.Watch,
		assetsDir:    cfg.AssetsDir,
		transition:   cfg.TransitionDuration,
		sweepEvery:   cfg.SweepInterval,
		idleTimeout:  cfg.IdleTimeout,
		logger:       logger,
	}
}

// Handler builds the HTTP handler with middleware and every route.
func (s *Server) Handler() (http.Handler, error) {
	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	deps := router.Deps{
		Content:      s.content,
		Registry:     s.registry,
		SessionStore: s.sessionStore,
		Notifier:     s.notifier,
		Loader:       assets.NewFSLoader(s.media),
		Media:        s.media,
		Root:         s.AssetsRoot(),
		Transition:   s.transition,
		Logger:       s.logger,
		Reloader:     s.reloader,
	}
	if err := router.SetupRoutes(r, deps, s.IsDev()); err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}
	return r, nil
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting site server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	handler, err := s.Handler()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start file watcher if enabled
	if s.watch {
		eg.Go(func() error {
			return s.watchAssets(egctx)
		})
	}

	eg.Go(func() error {
		return s.sweepLoop(egctx)
	})

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down site server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// IsDev returns true if assets are served from the source tree.
func (s *Server) IsDev() bool {
	return resources.Dev
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// Registry returns the mounted carousels.
func (s *Server) Registry() *registry.Registry {
	return s.registry
}

// AssetsRoot is the directory placeholder hints tell the visitor to add
// screenshots to.
func (s *Server) AssetsRoot() string {
	return AssetsRoot(s.assetsDir)
}

// AssetsRoot returns the hint root for an assets directory override, or the
// built-in static directory when dir is empty.
func AssetsRoot(dir string) string {
	if dir != "" {
		return filepath.ToSlash(dir)
	}
	return resources.StaticDirectoryPath
}

// MediaFS returns the filesystem screenshots are loaded from.
func MediaFS(dir string) fs.FS {
	return assets.DirFS(dir, resources.FS())
}

// watchDir is the directory the watcher follows.
func (s *Server) watchDir() string {
	if s.assetsDir != "" {
		return s.assetsDir
	}
	return resources.Dir()
}

// sweepLoop unmounts carousels whose stream never attached or went away.
func (s *Server) sweepLoop(ctx context.Context) error {
	if s.sweepEvery <= 0 {
		return nil
	}

	ticker := time.NewTicker(s.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.registry.Sweep(s.idleTimeout); n > 0 {
				s.logger.Debug("swept idle carousels", "removed", n, "mounted", s.registry.Count())
			}
		}
	}
}

// watchAssets watches the asset tree. Screenshot changes re-render every
// mounted carousel; stylesheet changes reload dev pages.
func (s *Server) watchAssets(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	dir := s.watchDir()
	if err := watchDirRecursive(watcher, dir); err != nil {
		s.logger.Error("failed to watch assets directory", "dir", dir, "error", err)
		// Don't fail - continue without watching
	}

	// Debounce timer
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}

			restyle := filepath.Ext(event.Name) == ".css"

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("asset changed", "file", event.Name, "op", event.Op.String())
				if restyle {
					s.reloader.Trigger()
					return
				}
				s.notifyClients()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// notifyClients pings every connected carousel stream.
func (s *Server) notifyClients() {
	s.notifier.Broadcast()
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
