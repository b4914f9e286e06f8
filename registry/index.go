package registry

import (
	"github.com/dhconnelly/rtreego"

	"avoidance-planner/geometry"
	"avoidance-planner/obstacle"
)

// padEpsilon pads degenerate (zero-width or zero-height) query/insert boxes
// so rtreego's positive-length-per-dimension requirement is always met.
const padEpsilon = 1e-6

// obstacleEntry wraps an obstacle for R-tree storage.
type obstacleEntry struct {
	obstacle obstacle.Obstacle
	bbox     rtreego.Rect
}

func (e *obstacleEntry) Bounds() rtreego.Rect { return e.bbox }

// SpatialIndex accelerates "which obstacles are near this point or
// segment" queries over a snapshot of enabled obstacles' inflated
// bounding boxes. It is an accelerator only: every caller falls back to
// scanning the full obstacle slice whenever the index has nothing useful
// to offer, so disabling or bypassing it never changes a plan's result.
type SpatialIndex struct {
	tree    *rtreego.Rtree
	indexed int
}

// NewSpatialIndex builds an R-tree over the enabled obstacles' inflated
// bounding boxes, each widened to the circle of the obstacle's radius
// around its center so the rect also covers the obstacle's own shape.
func NewSpatialIndex(obstacles []obstacle.Obstacle) *SpatialIndex {
	tree := rtreego.NewTree(2, 4, 16)
	indexed := 0
	for _, o := range obstacles {
		if !o.Enabled() {
			continue
		}
		rect, ok := boundsOf(o.BoundingBox(), o.Center().Coords, o.Radius())
		if !ok {
			continue
		}
		tree.Insert(&obstacleEntry{obstacle: o, bbox: rect})
		indexed++
	}
	return &SpatialIndex{tree: tree, indexed: indexed}
}

// boundsOf computes the axis-aligned bounding rect of a ring together with
// the square enclosing the circle of the given radius around center.
func boundsOf(ring obstacle.BoundingBox, center geometry.Coords, radius float64) (rtreego.Rect, bool) {
	if len(ring) == 0 {
		return rtreego.Rect{}, false
	}
	minX, minY := center.X()-radius, center.Y()-radius
	maxX, maxY := center.X()+radius, center.Y()+radius
	for _, v := range ring {
		if v.X() < minX {
			minX = v.X()
		}
		if v.X() > maxX {
			maxX = v.X()
		}
		if v.Y() < minY {
			minY = v.Y()
		}
		if v.Y() > maxY {
			maxY = v.Y()
		}
	}
	return paddedRect(minX, minY, maxX, maxY)
}

func paddedRect(minX, minY, maxX, maxY float64) (rtreego.Rect, bool) {
	w, h := maxX-minX, maxY-minY
	if w < padEpsilon {
		w = padEpsilon
	}
	if h < padEpsilon {
		h = padEpsilon
	}
	rect, err := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{w, h})
	if err != nil {
		return rtreego.Rect{}, false
	}
	return rect, true
}

// Query returns the enabled obstacles whose inflated bounding box
// intersects the rect [minX,minY]-[maxX,maxY]. A degenerate (zero-width or
// zero-height) query box is padded by padEpsilon rather than rejected. ok
// is false when the index is nil or holds no obstacles, or the query rect
// could not be built; callers must then fall back to scanning the full
// obstacle list themselves.
func (si *SpatialIndex) Query(minX, minY, maxX, maxY float64) (result []obstacle.Obstacle, ok bool) {
	if si == nil || si.indexed == 0 {
		return nil, false
	}
	rect, built := paddedRect(minX, minY, maxX, maxY)
	if !built {
		return nil, false
	}
	hits := si.tree.SearchIntersect(rect)
	out := make([]obstacle.Obstacle, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*obstacleEntry).obstacle)
	}
	return out, true
}
