package carousel

import (
	"context"
	"fmt"
	"path"
)

// PlaceholderIcon names the icon drawn in place of a missing asset.
const PlaceholderIcon = "image"

// Asset describes a successfully loaded visual.
type Asset struct {
	Source string `json:"source"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"`
}

// Loader loads the asset behind an item's Source.
type Loader interface {
	Load(ctx context.Context, source string) (Asset, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, source string) (Asset, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, source string) (Asset, error) {
	return f(ctx, source)
}

// LoadError reports that one item's asset could not be loaded.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("carousel: load %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Placeholder is the fallback drawn when an asset fails to load. It depends
// only on the item, so the same failure always draws the same placeholder.
type Placeholder struct {
	Icon string `json:"icon"`
	Hint string `json:"hint"`
}

// NewPlaceholder builds the placeholder for source, with a hint naming the
// location the asset is expected at, relative to root.
func NewPlaceholder(root, source string) Placeholder {
	return Placeholder{
		Icon: PlaceholderIcon,
		Hint: "Add: " + path.Join(root, source),
	}
}

// Slide is the resolved content for one item: the asset, or a placeholder
// together with the load error.
type Slide struct {
	Index       int          `json:"index"`
	Item        Item         `json:"item"`
	Asset       *Asset       `json:"asset,omitempty"`
	Placeholder *Placeholder `json:"placeholder,omitempty"`
	Err         error        `json:"-"`
}

// Failed reports whether the slide shows a placeholder.
func (s Slide) Failed() bool {
	return s.Placeholder != nil
}

// Resolve loads the asset for item. Failures, including a panicking loader,
// come back as a placeholder slide. Results are not cached; every call asks
// the loader again.
func Resolve(ctx context.Context, loader Loader, root string, index int, item Item) (slide Slide) {
	slide = Slide{Index: index, Item: item}

	fail := func(err error) Slide {
		ph := NewPlaceholder(root, item.Source)
		slide.Asset = nil
		slide.Placeholder = &ph
		slide.Err = &LoadError{Source: item.Source, Err: err}
		return slide
	}

	if loader == nil {
		return fail(fmt.Errorf("no loader"))
	}

	defer func() {
		if r := recover(); r != nil {
			slide = fail(fmt.Errorf("loader panic: %v", r))
		}
	}()

	asset, err := loader.Load(ctx, item.Source)
	if err != nil {
		return fail(err)
	}
	slide.Asset = &asset
	return slide
}
