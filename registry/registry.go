// Package registry holds the three obstacle collections the planner reads
// from: the borders polygon, the fixed obstacle list, and the
// dynamic obstacle list guarded against concurrent mutation by a LIDAR-style
// producer.
package registry

import (
	"sync"

	"avoidance-planner/obstacle"
)

// Registry owns the borders polygon, the fixed obstacle set, and the
// dynamic obstacle set. The dynamic set may be mutated concurrently with
// planner reads; every public mutation takes the guard and releases it
// before returning.
type Registry struct {
	bordersMu sync.RWMutex
	borders   *obstacle.Polygon

	// fixed is owned by the facade; mutation is expected from the owner
	// goroutine only, so it needs no guard of its own.
	fixed []obstacle.Obstacle

	dynMu   sync.RWMutex
	dynamic []obstacle.Obstacle
}

func New(borders *obstacle.Polygon) *Registry {
	return &Registry{borders: borders}
}

func (r *Registry) Borders() *obstacle.Polygon {
	r.bordersMu.RLock()
	defer r.bordersMu.RUnlock()
	return r.borders
}

func (r *Registry) SetBorders(p *obstacle.Polygon) {
	r.bordersMu.Lock()
	defer r.bordersMu.Unlock()
	r.borders = p
}

func (r *Registry) AddFixed(o obstacle.Obstacle) {
	r.fixed = append(r.fixed, o)
}

func (r *Registry) RemoveFixed(o obstacle.Obstacle) bool {
	for i, existing := range r.fixed {
		if existing == o {
			r.fixed = append(r.fixed[:i], r.fixed[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Registry) ClearFixed() {
	r.fixed = nil
}

func (r *Registry) AddDynamic(o obstacle.Obstacle) {
	r.dynMu.Lock()
	defer r.dynMu.Unlock()
	r.dynamic = append(r.dynamic, o)
}

func (r *Registry) RemoveDynamic(o obstacle.Obstacle) bool {
	r.dynMu.Lock()
	defer r.dynMu.Unlock()
	for i, existing := range r.dynamic {
		if existing == o {
			r.dynamic = append(r.dynamic[:i], r.dynamic[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Registry) ClearDynamic() {
	r.dynMu.Lock()
	defer r.dynMu.Unlock()
	r.dynamic = nil
}

// dynamicSnapshot briefly takes the guard to copy dynamic obstacle
// references into a local slice, then releases it. It never holds the
// guard across any predicate evaluation.
func (r *Registry) dynamicSnapshot() []obstacle.Obstacle {
	r.dynMu.RLock()
	defer r.dynMu.RUnlock()
	out := make([]obstacle.Obstacle, len(r.dynamic))
	copy(out, r.dynamic)
	return out
}

// Snapshot returns a point-in-time view chaining the fixed obstacles with
// a locked copy of the dynamic obstacles, for a single plan call.
func (r *Registry) Snapshot() []obstacle.Obstacle {
	dyn := r.dynamicSnapshot()
	out := make([]obstacle.Obstacle, 0, len(r.fixed)+len(dyn))
	out = append(out, r.fixed...)
	out = append(out, dyn...)
	return out
}

// DynamicSnapshot returns only the dynamic obstacles, used by the
// recompute predicate, which only dynamic obstacles can trigger.
func (r *Registry) DynamicSnapshot() []obstacle.Obstacle {
	return r.dynamicSnapshot()
}
