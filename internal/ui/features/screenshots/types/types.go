// Package types holds the view models of the screenshots feature.
package types

import (
	"time"

	"github.com/piper-lan/piper-site/pkg/carousel"
)

// LayerView is one mounted slide of a rendered frame.
type LayerView struct {
	carousel.Layer
	Slide carousel.Slide
}

// CarouselView is everything the carousel component draws.
type CarouselView struct {
	ID    string
	Items []carousel.Item
	State carousel.State
	Frame carousel.Frame

	// Layers pairs each frame layer with its resolved slide, in frame order.
	Layers []LayerView

	// Elapsed is how far the current transition has run.
	Elapsed  time.Duration
	Duration time.Duration
	Distance float64

	// MediaPrefix is prepended to item sources to build image URLs.
	MediaPrefix string
}
