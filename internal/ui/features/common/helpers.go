package common

import (
	"strconv"
	"time"
)

// Px formats a length in pixels for inline styles: 60 → "60px".
func Px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// Ms formats a duration in whole milliseconds for CSS: 350ms → "350ms".
func Ms(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}

// ClassIf returns base, plus modifier when cond holds.
func ClassIf(base, modifier string, cond bool) string {
	if cond {
		return base + " " + modifier
	}
	return base
}
