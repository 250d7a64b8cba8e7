// Package pages renders the landing page.
package pages

import (
	"context"
	"fmt"

	"github.com/a-h/templ"
	"github.com/piper-lan/piper-site/internal/site"
	html "github.com/piper-lan/piper-site/internal/ui/features/common/components"
	"github.com/piper-lan/piper-site/internal/ui/features/home/types"
)

// Signals returns the page-level client signals: navbar scroll state, the
// mobile menu and the open FAQ entry.
func Signals(acc site.Accordion) string {
	return fmt.Sprintf("{scrolled: false, menuOpen: false, faqOpen: %d}", acc.Open)
}

// HomePage renders the full document.
func HomePage(v types.PageView) templ.Component {
	return html.Page(v.Page, HomeBody(v))
}

// HomeBody renders every section inside the signal scope.
func HomeBody(v types.PageView) templ.Component {
	return html.Component(func(ctx context.Context, h *html.HTML) {
		h.Open("div", "id", "app", "data-signals", Signals(v.FAQ))
		h.Render(ctx, Navbar(v.Content))
		h.Open("main")
		h.Render(ctx, Hero(v.Content))
		h.Render(ctx, HowItWorks(v.Content))
		h.Render(ctx, Features(v.Content))
		h.Render(ctx, Screenshots(v))
		h.Render(ctx, Download(v.Content))
		h.Render(ctx, FAQ(v.Content, v.FAQ))
		h.Close("main")
		h.Render(ctx, Footer(v.Content))
		h.Close("div")
	})
}
