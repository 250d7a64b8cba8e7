package screenshots

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/piper-lan/piper-site/internal/registry"
	"github.com/piper-lan/piper-site/internal/ui/features/common"
	"github.com/piper-lan/piper-site/internal/ui/features/screenshots/components"
	"github.com/piper-lan/piper-site/internal/ui/features/screenshots/types"
	"github.com/piper-lan/piper-site/internal/ui/notifier"
	"github.com/piper-lan/piper-site/pkg/carousel"
	"github.com/starfederation/datastar-go/datastar"
)

// MediaPrefix is the URL prefix screenshots are served under.
const MediaPrefix = "/media/"

// Handlers provides HTTP handlers for the screenshots feature.
type Handlers struct {
	registry     *registry.Registry
	sessionStore sessions.Store
	notifier     *notifier.Notifier
	loader       carousel.Loader
	root         string
	logger       *slog.Logger
}

// NewHandlers creates a new Handlers instance. root is the directory named
// in placeholder hints.
func NewHandlers(reg *registry.Registry, sessionStore sessions.Store, notify *notifier.Notifier, loader carousel.Loader, root string, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		registry:     reg,
		sessionStore: sessionStore,
		notifier:     notify,
		loader:       loader,
		root:         root,
		logger:       logger,
	}
}

// View resolves the slides of every mounted layer and assembles the view.
// Assets are loaded on each call.
func View(ctx context.Context, inst *registry.Instance, loader carousel.Loader, root string) types.CarouselView {
	c := inst.Carousel
	st, frame := c.Snapshot()

	layers := make([]types.LayerView, 0, len(frame.Layers))
	for _, l := range frame.Layers {
		layers = append(layers, types.LayerView{
			Layer: l,
			Slide: c.SlideAt(ctx, loader, root, l.Index),
		})
	}

	var elapsed time.Duration
	if frame.Phase == carousel.Transitioning {
		elapsed = c.Duration() - frame.Remaining
	}

	return types.CarouselView{
		ID:          inst.ID,
		Items:       c.Items(),
		State:       st,
		Frame:       frame,
		Layers:      layers,
		Elapsed:     elapsed,
		Duration:    c.Duration(),
		Distance:    c.Distance(),
		MediaPrefix: MediaPrefix,
	}
}

// Updates is the long-lived SSE endpoint of one mounted carousel.
// It does not send initial state; the page already rendered it. Each ping
// re-renders the carousel, and a settle patch follows once a transition
// completes. When the stream goes away the instance is detached and left
// for the sweeper.
func (h *Handlers) Updates(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.authorize(w, r)
	if !ok {
		return
	}

	if !h.registry.Attach(inst.ID) {
		http.Error(w, "carousel already has an update stream", http.StatusConflict)
		return
	}
	defer h.registry.Detach(inst.ID)

	updates := h.notifier.Subscribe(inst.ID)
	defer h.notifier.Unsubscribe(updates)

	sse := datastar.NewSSE(w, r)
	h.logger.Debug("carousel stream attached", "id", inst.ID)

	var settle <-chan time.Time
	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("carousel stream detached", "id", inst.ID)
			return
		case <-updates:
		case <-settle:
		}

		view := View(ctx, inst, h.loader, h.root)
		if err := sse.PatchElementTempl(components.Carousel(view)); err != nil {
			_ = sse.ConsoleError(err)
			// Don't return - keep trying on next update
		}

		settle = nil
		if view.Frame.Phase == carousel.Transitioning {
			settle = time.After(view.Frame.Remaining)
		}
	}
}

// Advance handles the arrows: /screenshots/{id}/advance/{step}.
func (h *Handlers) Advance(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var st carousel.State
	switch step := chi.URLParam(r, "step"); step {
	case "next":
		st = inst.Carousel.Next()
	case "prev":
		st = inst.Carousel.Prev()
	default:
		http.Error(w, "step must be next or prev", http.StatusBadRequest)
		return
	}

	h.logger.Debug("carousel advanced", "id", inst.ID, "active", st.Active, "direction", st.Direction)
	h.changed(w, r, inst)
}

// Select handles tabs and dots: /screenshots/{id}/select/{index}.
// The index is normalized, so any integer is accepted.
func (h *Handlers) Select(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.authorize(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "index must be an integer", http.StatusBadRequest)
		return
	}

	st := inst.Carousel.Select(index)
	h.logger.Debug("carousel selected", "id", inst.ID, "active", st.Active, "direction", st.Direction)
	h.changed(w, r, inst)
}

// changed hands the new state to the renderer. With a live stream the
// stream draws it; otherwise the action response carries the patch.
func (h *Handlers) changed(w http.ResponseWriter, r *http.Request, inst *registry.Instance) {
	h.registry.Touch(inst.ID)

	if h.registry.Attached(inst.ID) {
		h.notifier.Publish(inst.ID)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	sse := datastar.NewSSE(w, r)
	view := View(r.Context(), inst, h.loader, h.root)
	if err := sse.PatchElementTempl(components.Carousel(view)); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// authorize resolves the {id} param and checks that the caller owns it.
func (h *Handlers) authorize(w http.ResponseWriter, r *http.Request) (*registry.Instance, bool) {
	inst, ok := h.registry.Get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "carousel not found", http.StatusNotFound)
		return nil, false
	}

	owner, ok := common.LookupOwner(r, h.sessionStore)
	if !ok || owner != inst.Owner {
		http.Error(w, "carousel belongs to another visitor", http.StatusForbidden)
		return nil, false
	}
	return inst, true
}
