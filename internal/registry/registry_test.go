package registry

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piper-lan/piper-site/pkg/carousel"
)

func newCarousel(t *testing.T) *carousel.Carousel {
	t.Helper()
	c, err := carousel.New([]carousel.Item{
		{Source: "screenshots/chat.png", Label: "Chat"},
		{Source: "screenshots/call.png", Label: "Call"},
	})
	require.NoError(t, err)
	return c
}

func TestRegistry_MountAndGet(t *testing.T) {
	r := New()
	c := newCarousel(t)

	inst := r.Mount("visitor-a", c)

	assert.Equal(t, 1, r.Count(), "expected count 1")
	assert.NotEmpty(t, inst.ID)
	assert.Equal(t, "visitor-a", inst.Owner)

	got, ok := r.Get(inst.ID)
	require.True(t, ok, "expected to find instance by id")
	assert.Same(t, inst, got, "expected same instance")
	assert.Same(t, c, got.Carousel)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_InstancesAreNotShared(t *testing.T) {
	r := New()

	a := r.Mount("visitor-a", newCarousel(t))
	b := r.Mount("visitor-a", newCarousel(t))
	c := r.Mount("visitor-b", newCarousel(t))

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotSame(t, a.Carousel, b.Carousel)

	a.Carousel.Next()
	assert.Equal(t, 1, a.Carousel.State().Active)
	assert.Equal(t, 0, b.Carousel.State().Active, "sibling mounts keep their own state")

	assert.ElementsMatch(t, []string{a.ID, b.ID}, r.Owned("visitor-a"))
	assert.Equal(t, []string{c.ID}, r.Owned("visitor-b"))
	assert.Empty(t, r.Owned("nobody"))
}

func TestRegistry_AttachDetach(t *testing.T) {
	r := New()
	inst := r.Mount("v", newCarousel(t))

	assert.False(t, r.Attached(inst.ID))
	assert.True(t, r.Attach(inst.ID))
	assert.True(t, r.Attached(inst.ID))
	assert.False(t, r.Attach(inst.ID), "second stream is rejected")
	assert.False(t, r.Attach("missing"))
	assert.False(t, r.Attached("missing"))

	r.Detach(inst.ID)
	assert.False(t, r.Attached(inst.ID))
	assert.True(t, r.Attach(inst.ID), "reattach after detach")
}

func TestRegistry_Unmount(t *testing.T) {
	r := New()
	inst := r.Mount("v", newCarousel(t))

	assert.True(t, r.Unmount(inst.ID))
	assert.False(t, r.Unmount(inst.ID))
	assert.Equal(t, 0, r.Count())
	assert.Empty(t, r.Owned("v"))
}

func TestRegistry_Sweep(t *testing.T) {
	r := New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	idle := r.Mount("v", newCarousel(t))
	streaming := r.Mount("v", newCarousel(t))
	require.True(t, r.Attach(streaming.ID))

	now = now.Add(30 * time.Second)
	fresh := r.Mount("w", newCarousel(t))

	now = now.Add(31 * time.Second)
	removed := r.Sweep(time.Minute)

	assert.Equal(t, 1, removed)
	_, ok := r.Get(idle.ID)
	assert.False(t, ok, "idle detached instance is swept")
	_, ok = r.Get(streaming.ID)
	assert.True(t, ok, "attached instance survives")
	_, ok = r.Get(fresh.ID)
	assert.True(t, ok, "recently mounted instance survives")

	r.Detach(streaming.ID)
	now = now.Add(2 * time.Minute)
	assert.Equal(t, 2, r.Sweep(time.Minute))
	assert.Equal(t, 0, r.Count())
}

func TestRegistry_Concurrent(t *testing.T) {
	r := New()
	var wg sync.WaitGroup

	carousels := make([]*carousel.Carousel, 20)
	for i := range carousels {
		carousels[i] = newCarousel(t)
	}

	for _, c := range carousels {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inst := r.Mount("v", c)
			r.Attach(inst.ID)
			inst.Carousel.Next()
			r.Detach(inst.ID)
			r.Unmount(inst.ID)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, r.Count())
}
