package carousel

import (
	"errors"
	"fmt"
)

// ErrNoItems is returned when a carousel is built from an empty item list.
var ErrNoItems = errors.New("carousel: no items")

// Item is one entry of the carousel.
type Item struct {
	// Source locates the visual asset. It is opaque to this package and is
	// handed to a Loader unchanged.
	Source string `json:"source" yaml:"source"`
	// Label is the tab caption and the accessible name of the slide.
	Label string `json:"label" yaml:"label"`
}

// Direction is the sign of the most recent move.
type Direction int

// Directions. The zero value is not a valid direction.
const (
	Backward Direction = -1
	Forward  Direction = 1
)

// DirectionOf reduces an arbitrary step to a direction. Zero counts as
// backward so every move yields a deterministic sign.
func DirectionOf(step int) Direction {
	if step > 0 {
		return Forward
	}
	return Backward
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Int returns the direction as -1 or +1.
func (d Direction) Int() int {
	return int(d)
}

// indexOfLabel returns the position of the first item with the given label.
func indexOfLabel(items []Item, label string) (int, bool) {
	for i, it := range items {
		if it.Label == label {
			return i, true
		}
	}
	return -1, false
}
