package router

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"
)

// Reloader asks open dev pages to reload. The first stream after startup
// reloads at once so a restarted server refreshes stale tabs.
type Reloader struct {
	reloadChan    chan struct{}
	hotReloadOnce sync.Once
}

// NewReloader creates a Reloader.
func NewReloader() *Reloader {
	return &Reloader{reloadChan: make(chan struct{}, 1)}
}

// Trigger requests a reload. Requests coalesce while one is pending.
func (rl *Reloader) Trigger() {
	select {
	case rl.reloadChan <- struct{}{}:
	default:
	}
}

// Mount registers /reload (SSE) and /hotreload (trigger) on router.
func (rl *Reloader) Mount(router chi.Router) {
	router.Get("/reload", func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		reload := func() { _ = sse.ExecuteScript("window.location.reload()") }
		rl.hotReloadOnce.Do(reload)
		select {
		case <-rl.reloadChan:
			reload()
		case <-r.Context().Done():
		}
	})

	router.Get("/hotreload", func(w http.ResponseWriter, _ *http.Request) {
		rl.Trigger()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}
