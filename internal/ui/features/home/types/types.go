// Package types holds the view models of the home feature.
package types

import (
	"github.com/piper-lan/piper-site/internal/site"
	"github.com/piper-lan/piper-site/internal/ui/features/common"
	screenshotTypes "github.com/piper-lan/piper-site/internal/ui/features/screenshots/types"
)

// PageView is everything the landing page renders.
type PageView struct {
	Page     common.PageData
	Content  site.Content
	Carousel screenshotTypes.CarouselView
	FAQ      site.Accordion

	// Live wires the carousel to its update stream. Exported pages are static.
	Live bool
}
