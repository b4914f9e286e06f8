// Package planner is the public facade: it orchestrates candidate-vertex
// selection, visibility-graph construction, and shortest-path search into
// a single plan(start, finish) query, and owns the obstacle registry.
package planner

import (
	"sync"

	"avoidance-planner/errs"
	"avoidance-planner/geometry"
	"avoidance-planner/graph"
	"avoidance-planner/obstacle"
	"avoidance-planner/registry"
)

// state is the facade's state machine: Idle -> Planning -> {Ready, Failed}.
type state int

const (
	stateIdle state = iota
	statePlanning
	stateReady
	stateFailed
)

// Option configures a Planner at construction time.
type Option func(*Planner)

func WithLogger(l Logger) Option {
	return func(p *Planner) {
		if l == nil {
			l = noopLogger{}
		}
		p.logger = l
	}
}

func WithConfig(c Config) Option {
	return func(p *Planner) { p.config = c }
}

// Planner is the public facade described by the planner API: it owns a
// Registry and, after a successful Plan call, an ordered waypoint path.
type Planner struct {
	registry *registry.Registry
	logger   Logger
	config   Config

	planMu sync.Mutex // serializes Plan calls; Plan is non-reentrant

	state    state
	computed bool
	path     []geometry.Coords
}

// New creates a Planner over the given borders polygon.
func New(borders *obstacle.Polygon, opts ...Option) *Planner {
	p := &Planner{
		registry: registry.New(borders),
		logger:   noopLogger{},
		config:   DefaultConfig(),
		state:    stateIdle,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Planner) AddFixed(o obstacle.Obstacle)         { p.registry.AddFixed(o) }
func (p *Planner) RemoveFixed(o obstacle.Obstacle) bool { return p.registry.RemoveFixed(o) }
func (p *Planner) ClearFixed()                          { p.registry.ClearFixed() }

func (p *Planner) AddDynamic(o obstacle.Obstacle)         { p.registry.AddDynamic(o) }
func (p *Planner) RemoveDynamic(o obstacle.Obstacle) bool { return p.registry.RemoveDynamic(o) }
func (p *Planner) ClearDynamic()                          { p.registry.ClearDynamic() }

func (p *Planner) Borders() *obstacle.Polygon     { return p.registry.Borders() }
func (p *Planner) SetBorders(b *obstacle.Polygon) { p.registry.SetBorders(b) }

// Plan computes a piecewise-linear collision-free path from start to
// finish, validating both against borders and obstacles, snapping start
// if it lies inside an obstacle. On success the path is published and
// queryable through PathLength/PathPose; on failure the path is cleared
// and the error is returned.
func (p *Planner) Plan(start, finish geometry.Coords) error {
	p.planMu.Lock()
	defer p.planMu.Unlock()

	p.state = statePlanning
	p.computed = false
	p.path = nil

	borders := p.registry.Borders()
	if !borders.Contains(finish) {
		p.state = stateFailed
		return errs.New(errs.FinishOutsideBorders, "finish lies outside the borders polygon")
	}

	obstacles := p.registry.Snapshot()

	for _, o := range obstacles {
		if !o.Enabled() {
			continue
		}
		if o.Contains(finish) {
			p.state = stateFailed
			return errs.New(errs.FinishInsideObstacle, "finish lies inside an enabled obstacle")
		}
	}

	for _, o := range obstacles {
		if !o.Enabled() {
			continue
		}
		if o.Contains(start) {
			snapped := o.NearestBoundaryPoint(start)
			p.logger.Debugf("start (%.1f, %.1f) is inside an obstacle, snapping to (%.1f, %.1f)",
				start.X(), start.Y(), snapped.X(), snapped.Y())
			start = snapped
			break
		}
	}

	if geometry.Equal(start, finish, p.config.Epsilon) {
		p.path = []geometry.Coords{finish}
		p.computed = true
		p.state = stateReady
		return nil
	}

	index := registry.NewSpatialIndex(obstacles)
	candidates := graph.SelectCandidates(start, finish, borders, obstacles, index)
	if len(candidates) > p.config.CandidateWarnThreshold {
		p.logger.Warnf("large candidate set (%d vertices); consider increasing margins", len(candidates))
	}

	vgraph := graph.Build(candidates, obstacles, index)

	indices, err := graph.ShortestPath(vgraph, 0, 1)
	if err != nil {
		p.state = stateFailed
		p.logger.Infof("plan failed: %v", err)
		return err
	}

	path := make([]geometry.Coords, len(indices))
	for i, idx := range indices {
		path[i] = candidates[idx]
	}

	p.path = path
	p.computed = true
	p.state = stateReady
	p.logger.Infof("plan succeeded with %d waypoints", len(path))
	return nil
}

// PathLength returns the number of waypoints in the most recently
// computed path.
func (p *Planner) PathLength() int {
	return len(p.path)
}

// PathPose returns the i-th waypoint of the most recently computed path.
func (p *Planner) PathPose(i int) (geometry.Coords, error) {
	if i < 0 || i >= len(p.path) {
		return geometry.Coords{}, errs.New(errs.IndexOutOfRange, "path index out of range")
	}
	return p.path[i], nil
}

// Computed reports whether the last Plan call succeeded.
func (p *Planner) Computed() bool {
	return p.computed
}

// ShouldRecompute reports whether any enabled dynamic obstacle whose
// center lies inside borders now crosses segment AB. Fixed obstacles
// cannot newly obstruct a path already planned around them, so only
// dynamic obstacles are checked.
func (p *Planner) ShouldRecompute(a, b geometry.Coords) bool {
	borders := p.registry.Borders()
	for _, o := range p.registry.DynamicSnapshot() {
		if !o.Enabled() {
			continue
		}
		if !borders.Contains(o.Center().Coords) {
			continue
		}
		if o.CrossesSegment(a, b) {
			return true
		}
	}
	return false
}
