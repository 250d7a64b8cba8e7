package components

import (
	"context"

	"github.com/a-h/templ"
	"github.com/piper-lan/piper-site/internal/ui/features/common"
	"github.com/piper-lan/piper-site/internal/ui/resources"
)

// Page renders the document shell around body.
func Page(data common.PageData, body templ.Component) templ.Component {
	return Component(func(ctx context.Context, h *HTML) {
		h.Raw("<!doctype html>")
		h.Open("html", "lang", "en")
		h.Open("head")
		h.Raw(`<meta charset="utf-8">`)
		h.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.Element("title", data.Title)
		if data.Description != "" {
			h.Raw(`<meta name="description" content="` + templ.EscapeString(data.Description) + `">`)
		}
		h.Raw(`<link rel="stylesheet" href="` + resources.StaticPath("site.css") + `">`)
		h.Raw(`<script type="module" src="` + resources.DatastarScript + `"></script>`)
		h.Close("head")

		h.Open("body")
		if data.IsDev {
			h.Open("div", "id", "hotreload", "data-init", "@get('/reload', {retryMaxCount: 1000, retryInterval: 20, retryMaxWaitMs: 200})")
			h.Close("div")
		}
		h.Render(ctx, body)
		h.Close("body")
		h.Close("html")
	})
}
