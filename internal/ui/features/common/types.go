// Package common provides shared types and utilities for site features.
package common

// PageData holds data needed for the page shell rendering.
type PageData struct {
	Title       string
	Description string
	IsDev       bool // adds the hot reload stream
}
