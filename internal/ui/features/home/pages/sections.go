package pages

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/piper-lan/piper-site/internal/site"
	html "github.com/piper-lan/piper-site/internal/ui/features/common/components"
	"github.com/piper-lan/piper-site/internal/ui/features/home/types"
	carouselComponents "github.com/piper-lan/piper-site/internal/ui/features/screenshots/components"
)

// ScrollThreshold is how far, in pixels, the window scrolls before the
// navbar turns opaque.
const ScrollThreshold = 20

func sectionHead(h *html.HTML, eyebrow, title, subtitle string) {
	h.Open("div", "class", "section-head")
	h.Element("p", eyebrow, "class", "eyebrow")
	h.Element("h2", title)
	if subtitle != "" {
		h.Element("p", subtitle)
	}
	h.Close("div")
}

// Navbar renders the fixed navigation bar. Its scroll listener is bound to
// the element and goes away with it.
func Navbar(c site.Content) templ.Component {
	return html.Component(func(_ context.Context, h *html.HTML) {
		h.Open("nav",
			"class", "navbar",
			"data-class:navbar--scrolled", "$scrolled",
			"data-on:scroll__window__throttle.100ms", "$scrolled = window.scrollY > "+strconv.Itoa(ScrollThreshold),
		)
		h.Open("div", "class", "container navbar__inner")
		h.Element("a", site.ProductName, "href", "#", "class", "navbar__brand")

		h.Open("div", "class", "navbar__links")
		for _, l := range c.Nav {
			h.Element("a", l.Label, "href", l.Href)
		}
		h.Element("a", "Download", "href", "#download", "class", "button button--primary")
		h.Close("div")

		h.Element("button", "☰",
			"type", "button",
			"class", "navbar__burger",
			"aria-label", "Menu",
			"data-on:click", "$menuOpen = !$menuOpen",
		)
		h.Close("div")

		h.Open("div", "class", "navbar__menu", "data-show", "$menuOpen", "style", "display: none")
		for _, l := range c.Nav {
			h.Element("a", l.Label, "href", l.Href, "data-on:click", "$menuOpen = false")
		}
		h.Close("div")
		h.Close("nav")
	})
}

// Hero renders the headline and the primary download buttons.
func Hero(c site.Content) templ.Component {
	return html.Component(func(_ context.Context, h *html.HTML) {
		h.Open("section", "id", "hero", "class", "hero")
		h.Open("div", "class", "container")
		h.Element("h1", site.ProductName)
		h.Element("p", site.Slogan, "class", "slogan")
		h.Element("p", site.Tagline, "class", "tagline")

		h.Open("div", "class", "actions")
		for _, p := range c.AvailablePlatforms() {
			h.Element("a", "Download for "+p.Name, "href", p.URL, "class", "button button--primary")
		}
		h.Element("a", "GitHub", "href", site.RepoURL, "class", "button", "rel", "noopener")
		h.Close("div")

		h.Close("div")
		h.Close("section")
	})
}

// HowItWorks renders the numbered steps.
func HowItWorks(c site.Content) templ.Component {
	return html.Component(func(_ context.Context, h *html.HTML) {
		h.Open("section", "id", "how-it-works")
		h.Open("div", "class", "container")
		sectionHead(h, "Simple", "How it works", "Four steps from install to your first call")
		h.Open("ol", "class", "grid")
		for _, s := range c.Steps {
			h.Open("li", "class", "card step")
			h.Element("span", s.Number, "class", "step__number")
			h.Element("h3", s.Title)
			h.Element("p", s.Description)
			h.Close("li")
		}
		h.Close("ol")
		h.Close("div")
		h.Close("section")
	})
}

// Features renders the feature grid.
func Features(c site.Content) templ.Component {
	return html.Component(func(_ context.Context, h *html.HTML) {
		h.Open("section", "id", "features")
		h.Open("div", "class", "container")
		sectionHead(h, "Features", "Everything you need", "Built for local networks")
		h.Open("div", "class", "grid")
		for _, f := range c.Features {
			h.Open("div", "class", "card feature", "data-icon", f.Icon)
			h.Element("h3", f.Title)
			h.Element("p", f.Description)
			h.Close("div")
		}
		h.Close("div")
		h.Close("div")
		h.Close("section")
	})
}

// Screenshots renders the carousel section. A live page wraps the carousel
// in the element that opens its update stream; the wrapper itself is never
// patched, so the stream survives every carousel patch.
func Screenshots(v types.PageView) templ.Component {
	return html.Component(func(ctx context.Context, h *html.HTML) {
		h.Open("section", "id", "screenshots")
		h.Open("div", "class", "container")
		sectionHead(h, "Interface", "Screenshots", "Clean and intuitive design")

		init := ""
		if v.Live {
			init = "@get('" + carouselComponents.UpdatesURL(v.Carousel.ID) + "')"
		}
		h.Open("div", "class", "carousel-host", html.When(v.Live, "data-init"), init)
		h.Render(ctx, carouselComponents.Carousel(v.Carousel))
		h.Close("div")

		h.Close("div")
		h.Close("section")
	})
}

// Download renders one card per platform. Platforms without a build are
// shown disabled.
func Download(c site.Content) templ.Component {
	return html.Component(func(_ context.Context, h *html.HTML) {
		h.Open("section", "id", "download")
		h.Open("div", "class", "container")
		sectionHead(h, "Download", "Get Piper", "Free and open source")
		h.Open("div", "class", "grid")
		for _, p := range c.Platforms {
			if p.Available {
				h.Open("a", "class", "card platform", "href", p.URL, "download", "")
				h.Element("h3", p.Name)
				h.Element("p", p.Version+" · "+p.Size)
				h.Element("span", "Download", "class", "button button--primary")
				h.Close("a")
				continue
			}
			h.Open("div", "class", "card platform card--disabled", "aria-disabled", "true")
			h.Element("h3", p.Name)
			h.Element("p", p.Version)
			h.Element("span", "Coming soon", "class", "button", "disabled", "")
			h.Close("div")
		}
		h.Close("div")
		h.Close("div")
		h.Close("section")
	})
}

// FAQ renders the accordion. acc sets which entry starts open; afterwards
// the faqOpen signal drives it with the same single-open toggle.
func FAQ(c site.Content, acc site.Accordion) templ.Component {
	return html.Component(func(_ context.Context, h *html.HTML) {
		h.Open("section", "id", "faq")
		h.Open("div", "class", "container faq")
		sectionHead(h, "FAQ", "Questions and answers", "")
		for i, e := range c.FAQ {
			n := strconv.Itoa(i)
			h.Open("div", "class", "faq__item")
			h.Element("button", e.Question,
				"type", "button",
				"class", "faq__question",
				"aria-expanded", strconv.FormatBool(acc.IsOpen(i)),
				"data-attr:aria-expanded", "$faqOpen === "+n,
				"data-on:click", "$faqOpen = $faqOpen === "+n+" ? -1 : "+n,
			)
			hidden := ""
			if !acc.IsOpen(i) {
				hidden = "display: none"
			}
			h.Element("div", e.Answer,
				"class", "faq__answer",
				"data-show", "$faqOpen === "+n,
				html.When(hidden != "", "style"), hidden,
			)
			h.Close("div")
		}
		h.Close("div")
		h.Close("section")
	})
}

// Footer renders the footer links.
func Footer(c site.Content) templ.Component {
	return html.Component(func(_ context.Context, h *html.HTML) {
		h.Open("footer")
		h.Open("div", "class", "container")
		h.Element("span", site.ProductName+": "+site.Slogan)
		h.Open("nav")
		for _, l := range c.Footer {
			h.Element("a", l.Label, "href", l.Href)
		}
		h.Close("nav")
		h.Close("div")
		h.Close("footer")
	})
}
