package carousel

import (
	"context"
	"sync"
	"time"
)

// Option configures a Carousel.
type Option func(*options)

type options struct {
	duration time.Duration
	distance float64
	now      func() time.Time
}

// WithDuration sets the transition length.
func WithDuration(d time.Duration) Option {
	return func(o *options) { o.duration = d }
}

// WithDistance sets the slide distance reported in frame offsets.
func WithDistance(distance float64) Option {
	return func(o *options) { o.distance = distance }
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Carousel is one mounted carousel: store, controller and machine updated
// together under a single lock.
type Carousel struct {
	mu      sync.Mutex
	items   []Item
	store   *Store
	ctrl    *Controller
	machine *Machine
	now     func() time.Time
}

// New mounts a carousel over items. The list is copied; it must not be empty.
func New(items []Item, opts ...Option) (*Carousel, error) {
	o := options{
		duration: DefaultDuration,
		distance: DefaultDistance,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	store, err := NewStore(len(items))
	if err != nil {
		return nil, err
	}

	own := make([]Item, len(items))
	copy(own, items)

	return &Carousel{
		items:   own,
		store:   store,
		ctrl:    NewController(store, own),
		machine: NewMachine(o.duration, o.distance),
		now:     o.now,
	}, nil
}

// Len returns the number of items.
func (c *Carousel) Len() int {
	return len(c.items)
}

// Items returns a copy of the item list.
func (c *Carousel) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Item returns the item at index, normalized into range.
func (c *Carousel) Item(index int) Item {
	return c.items[Normalize(index, len(c.items))]
}

// Duration returns the transition length.
func (c *Carousel) Duration() time.Duration {
	return c.machine.Duration()
}

// Distance returns the slide distance reported in frame offsets.
func (c *Carousel) Distance() float64 {
	return c.machine.Distance()
}

// State returns the current state.
func (c *Carousel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.State()
}

// Frame returns the rendering frame for the current instant.
func (c *Carousel) Frame() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine.Frame(c.now())
}

// Snapshot returns state and frame observed under one lock.
func (c *Carousel) Snapshot() (State, Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.State(), c.machine.Frame(c.now())
}

// Advance moves one step forward or backward.
func (c *Carousel) Advance(step Direction) State {
	return c.apply(func() (State, bool) { return c.ctrl.Advance(step), true })
}

// Next moves forward.
func (c *Carousel) Next() State {
	return c.Advance(Forward)
}

// Prev moves backward.
func (c *Carousel) Prev() State {
	return c.Advance(Backward)
}

// Select jumps to index.
func (c *Carousel) Select(index int) State {
	return c.apply(func() (State, bool) { return c.ctrl.Select(index), true })
}

// SelectLabel jumps to the item with label. Unknown labels change nothing.
func (c *Carousel) SelectLabel(label string) (State, bool) {
	var found bool
	st := c.apply(func() (State, bool) {
		var s State
		s, found = c.ctrl.SelectLabel(label)
		return s, found
	})
	return st, found
}

// Slide resolves the active item's asset.
func (c *Carousel) Slide(ctx context.Context, loader Loader, root string) Slide {
	st := c.State()
	return Resolve(ctx, loader, root, st.Active, c.items[st.Active])
}

// SlideAt resolves the asset of the item at index.
func (c *Carousel) SlideAt(ctx context.Context, loader Loader, root string, index int) Slide {
	i := Normalize(index, len(c.items))
	return Resolve(ctx, loader, root, i, c.items[i])
}

func (c *Carousel) apply(op func() (State, bool)) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, moved := op()
	if moved {
		c.machine.Begin(st.Active, st.Direction, c.now())
	}
	return st
}
