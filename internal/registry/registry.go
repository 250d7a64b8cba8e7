// Package registry tracks the carousels mounted by page loads.
// Each page load mounts its own carousel, owned by the visitor that loaded
// the page; the instance lives until its update stream goes away and the
// idle grace period has passed.
package registry

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piper-lan/piper-site/pkg/carousel"
)

// Instance is one mounted carousel.
type Instance struct {
	// ID identifies the instance in URLs: "3f2a..." → /screenshots/3f2a.../updates
	ID string
	// Owner is the visitor token that mounted it. Only that visitor may drive it.
	Owner string
	// Carousel is the state machine. It is safe for concurrent use.
	Carousel *carousel.Carousel
}

type entry struct {
	inst     *Instance
	attached bool
	touched  time.Time
}

// Registry maps instance IDs to mounted carousels.
type Registry struct {
	mu sync.RWMutex

	// byID maps instance IDs to entries: "3f2a..." → *entry
	byID map[string]*entry

	// byOwner maps visitor tokens to the set of instance IDs they mounted
	byOwner map[string]map[string]struct{}

	now func() time.Time
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byID:    make(map[string]*entry),
		byOwner: make(map[string]map[string]struct{}),
		now:     time.Now,
	}
}

// Mount registers c under a fresh ID for owner.
func (r *Registry) Mount(owner string, c *carousel.Carousel) *Instance {
	inst := &Instance{
		ID:       uuid.NewString(),
		Owner:    owner,
		Carousel: c,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[inst.ID] = &entry{inst: inst, touched: r.now()}
	ids, ok := r.byOwner[owner]
	if !ok {
		ids = make(map[string]struct{})
		r.byOwner[owner] = ids
	}
	ids[inst.ID] = struct{}{}

	return inst
}

// Get returns the instance with the given ID.
func (r *Registry) Get(id string) (*Instance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return e.inst, true
}

// Attach marks the instance as having a live update stream.
// It returns false when the instance is unknown or already attached.
func (r *Registry) Attach(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byID[id]
	if !ok || e.attached {
		return false
	}
	e.attached = true
	e.touched = r.now()
	return true
}

// Detach marks the stream as gone. The instance stays mounted until Sweep
// removes it, so a reconnecting stream can pick it up again.
func (r *Registry) Detach(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.byID[id]; ok {
		e.attached = false
		e.touched = r.now()
	}
}

// Attached reports whether the instance currently has a live stream.
func (r *Registry) Attached(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	return ok && e.attached
}

// Touch refreshes the idle clock of an instance.
func (r *Registry) Touch(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.byID[id]; ok {
		e.touched = r.now()
	}
}

// Unmount removes the instance. It reports whether it was mounted.
func (r *Registry) Unmount(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unmountLocked(id)
}

// Sweep unmounts every instance without a live stream that has been idle
// for at least maxAge. It returns the number of instances removed.
func (r *Registry) Sweep(maxAge time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxAge)
	var stale []string
	for id, e := range r.byID {
		if !e.attached && !e.touched.After(cutoff) {
			stale = append(stale, id)
		}
	}
	for _, id := range stale {
		r.unmountLocked(id)
	}
	return len(stale)
}

// Owned returns the sorted IDs of the instances mounted by owner.
func (r *Registry) Owned(owner string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.byOwner[owner]))
	for id := range r.byOwner[owner] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of mounted instances.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func (r *Registry) unmountLocked(id string) bool {
	e, ok := r.byID[id]
	if !ok {
		return false
	}
	delete(r.byID, id)
	if ids, ok := r.byOwner[e.inst.Owner]; ok {
		delete(ids, id)
		if len(ids) == 0 {
			delete(r.byOwner, e.inst.Owner)
		}
	}
	return true
}
