// Package components renders the screenshots carousel.
package components

import (
	"context"
	"fmt"
	"strconv"

	"github.com/a-h/templ"
	"github.com/piper-lan/piper-site/internal/ui/features/common"
	html "github.com/piper-lan/piper-site/internal/ui/features/common/components"
	"github.com/piper-lan/piper-site/internal/ui/features/screenshots/types"
	"github.com/piper-lan/piper-site/pkg/carousel"
)

// ElementID is the DOM id of the carousel root; SSE patches target it.
func ElementID(id string) string {
	return "carousel-" + id
}

// SelectURL is the action behind a tab or dot.
func SelectURL(id string, index int) string {
	return fmt.Sprintf("/screenshots/%s/select/%d", id, index)
}

// AdvanceURL is the action behind an arrow; step is "next" or "prev".
func AdvanceURL(id, step string) string {
	return fmt.Sprintf("/screenshots/%s/advance/%s", id, step)
}

// UpdatesURL is the long-lived stream of carousel patches.
func UpdatesURL(id string) string {
	return fmt.Sprintf("/screenshots/%s/updates", id)
}

func post(url string) string {
	return "@post('" + url + "')"
}

// Carousel renders tabs, the slide viewport with arrows, and the dots.
// All three surfaces read the same state.
func Carousel(v types.CarouselView) templ.Component {
	return html.Component(func(ctx context.Context, h *html.HTML) {
		h.Open("div", "id", ElementID(v.ID), "class", "carousel", "data-active", strconv.Itoa(v.State.Active))

		h.Open("div", "class", "carousel__tabs", "role", "tablist")
		for i, item := range v.Items {
			active := i == v.State.Active
			h.Element("button", item.Label,
				"type", "button",
				"role", "tab",
				"class", common.ClassIf("carousel__tab", "carousel__tab--active", active),
				"aria-selected", strconv.FormatBool(active),
				"data-on:click", post(SelectURL(v.ID, i)),
			)
		}
		h.Close("div")

		h.Open("div", "class", "carousel__frame")
		h.Open("div",
			"class", "carousel__viewport",
			"style", fmt.Sprintf("--duration:%s;--distance:%s;--dir:%d",
				common.Ms(v.Duration), common.Px(v.Distance), v.Frame.Direction.Int()),
			"data-phase", v.Frame.Phase.String(),
		)
		for _, l := range v.Layers {
			h.Render(ctx, slide(v, l))
		}
		h.Close("div")
		h.Element("button", "‹",
			"type", "button",
			"class", "carousel__arrow carousel__arrow--prev",
			"aria-label", "Previous screenshot",
			"data-on:click", post(AdvanceURL(v.ID, "prev")),
		)
		h.Element("button", "›",
			"type", "button",
			"class", "carousel__arrow carousel__arrow--next",
			"aria-label", "Next screenshot",
			"data-on:click", post(AdvanceURL(v.ID, "next")),
		)
		h.Close("div")

		h.Open("div", "class", "carousel__dots")
		for i, item := range v.Items {
			active := i == v.State.Active
			h.Open("button",
				"type", "button",
				"class", common.ClassIf("carousel__dot", "carousel__dot--active", active),
				"aria-label", "Show "+item.Label,
				"aria-current", strconv.FormatBool(active),
				"data-on:click", post(SelectURL(v.ID, i)),
			)
			h.Close("button")
		}
		h.Close("div")

		h.Close("div")
	})
}

func slide(v types.CarouselView, l types.LayerView) templ.Component {
	return html.Component(func(ctx context.Context, h *html.HTML) {
		stage := l.Stage.String()
		class := "slide slide--" + stage
		style := ""
		if l.Stage != carousel.Centered {
			style = "animation-delay:-" + common.Ms(v.Elapsed)
		}

		// Keyed on the transition sequence: a morph mounts fresh layers and
		// the CSS animations restart.
		h.Open("div",
			"id", fmt.Sprintf("slide-%s-%d-%s", v.ID, v.Frame.Seq, stage),
			"class", class,
			html.When(style != "", "style"), style,
			"data-index", strconv.Itoa(l.Index),
		)
		if l.Slide.Failed() {
			h.Render(ctx, Placeholder(*l.Slide.Placeholder))
		} else {
			a := l.Slide.Asset
			h.Open("img",
				"src", v.MediaPrefix+l.Slide.Item.Source,
				"alt", l.Slide.Item.Label,
				"width", strconv.Itoa(a.Width),
				"height", strconv.Itoa(a.Height),
			)
		}
		h.Close("div")
	})
}

// Placeholder draws the image icon and the hint naming the missing file.
func Placeholder(p carousel.Placeholder) templ.Component {
	return html.Component(func(_ context.Context, h *html.HTML) {
		h.Open("div", "class", "placeholder", "data-icon", p.Icon)
		h.Raw(`<svg xmlns="http://www.w3.org/2000/svg" width="48" height="48" fill="none" stroke="currentColor" stroke-width="1.5" viewBox="0 0 24 24"><rect x="3" y="3" width="18" height="18" rx="2"/><circle cx="8.5" cy="8.5" r="1.5"/><path d="m21 15-5-5L5 21"/></svg>`)
		h.Element("p", p.Hint)
		h.Close("div")
	})
}
