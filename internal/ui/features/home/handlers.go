package home

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/piper-lan/piper-site/internal/registry"
	"github.com/piper-lan/piper-site/internal/site"
	"github.com/piper-lan/piper-site/internal/ui/features/common"
	"github.com/piper-lan/piper-site/internal/ui/features/home/pages"
	"github.com/piper-lan/piper-site/internal/ui/features/home/types"
	"github.com/piper-lan/piper-site/internal/ui/features/screenshots"
	"github.com/piper-lan/piper-site/pkg/carousel"
)

// Title is the document title of the landing page.
const Title = site.ProductName + " | " + site.Slogan

// Handlers provides HTTP handlers for the home feature.
type Handlers struct {
	content      site.Content
	registry     *registry.Registry
	sessionStore sessions.Store
	loader       carousel.Loader
	root         string
	transition   time.Duration
	logger       *slog.Logger
	isDev        bool
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(
	content site.Content,
	reg *registry.Registry,
	sessionStore sessions.Store,
	loader carousel.Loader,
	root string,
	transition time.Duration,
	logger *slog.Logger,
	isDev bool,
) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		content:      content,
		registry:     reg,
		sessionStore: sessionStore,
		loader:       loader,
		root:         root,
		transition:   transition,
		logger:       logger,
		isDev:        isDev,
	}
}

// HomePage renders the landing page with full content. Every load mounts
// a fresh carousel owned by the visitor; its state is never shared.
func (h *Handlers) HomePage(w http.ResponseWriter, r *http.Request) {
	owner, err := common.OwnerToken(w, r, h.sessionStore)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	c, err := carousel.New(h.content.Screenshots, carousel.WithDuration(h.transition))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	inst := h.registry.Mount(owner, c)
	h.logger.Debug("carousel mounted", "id", inst.ID, "items", c.Len())

	view := BuildPage(r.Context(), h.content, inst, h.loader, h.root, h.isDev)
	view.Live = true

	if err := pages.HomePage(view).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// BuildPage assembles the page view around a mounted carousel.
func BuildPage(ctx context.Context, content site.Content, inst *registry.Instance, loader carousel.Loader, root string, isDev bool) types.PageView {
	return types.PageView{
		Page: common.PageData{
			Title:       Title,
			Description: site.Tagline,
			IsDev:       isDev,
		},
		Content:  content,
		Carousel: screenshots.View(ctx, inst, loader, root),
		FAQ:      site.NewAccordion(),
	}
}
