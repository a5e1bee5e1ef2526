package physics

import "math"

// CandidateSource is a broad phase: it indexes a body set and yields the
// indices of potential collision partners for one body. The narrow-phase
// pair helpers only depend on this interface, so callers can substitute a
// brute-force source or their own spatial index.
type CandidateSource interface {
	// Populate rebuilds the index from the given bodies.
	Populate(bodies []*Body)
	// Candidates calls fn with candidate indices for b, possibly with
	// repeats. Returning true from fn stops the iteration.
	Candidates(b *Body, fn func(index int) bool)
}

// SpatialGrid is a uniform grid broad phase. Bodies are inserted by index
// into every cell their bounding box covers, so any intersecting pair shares
// at least one cell and the 3x3 neighborhood scan is unnecessary.
//
// Cell size is a tuning knob: cells comparable to the typical body size keep
// both the per-cell lists and the per-body cell spans short.
type SpatialGrid struct {
	originX     float64
	originY     float64
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell
}

// Ensure SpatialGrid satisfies CandidateSource.
var _ CandidateSource = (*SpatialGrid)(nil)

// gridCell stores the indices of bodies whose bounds cover a grid cell.
// The slice is reused between steps (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a spatial grid covering the given bounds. Bodies
// outside the covered area are clamped into the edge cells, so the grid stays
// correct (just less selective) for escapees.
func NewSpatialGrid(bounds Rect, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(bounds.Width / cellSize))
	rows := int(math.Ceil(bounds.Height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	cells := make([]gridCell, cols*rows)
	return &SpatialGrid{
		originX:     bounds.X,
		originY:     bounds.Y,
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       cells,
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Populate clears the grid and inserts every enabled body, keyed by its
// index in the slice.
func (g *SpatialGrid) Populate(bodies []*Body) {
	g.Clear()
	for i, b := range bodies {
		if b.Enable {
			g.Insert(b, i)
		}
	}
}

// Insert adds a body (identified by index) to every cell its bounds cover.
func (g *SpatialGrid) Insert(b *Body, index int) {
	c0, r0 := g.posToCell(b.X, b.Y)
	c1, r1 := g.posToCell(b.Right(), b.Bottom())

	for r := r0; r <= r1; r++ {
		rowOffset := r * g.cols
		for c := c0; c <= c1; c++ {
			g.cells[rowOffset+c].items = append(g.cells[rowOffset+c].items, index)
		}
	}
}

// Candidates calls fn for each item index in the cells covered by the body's
// bounds. A body spanning several cells is reported once per shared cell;
// callers dedupe. If fn returns true, iteration stops early.
func (g *SpatialGrid) Candidates(b *Body, fn func(index int) bool) {
	c0, r0 := g.posToCell(b.X, b.Y)
	c1, r1 := g.posToCell(b.Right(), b.Bottom())

	for r := r0; r <= r1; r++ {
		rowOffset := r * g.cols
		for c := c0; c <= c1; c++ {
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts world coordinates to grid cell coordinates, relative to
// the covered bounds' origin. Clamps to valid range to handle out-of-bounds
// positions.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = int((x - g.originX) * g.invCellSize)
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int((y - g.originY) * g.invCellSize)
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}

// CollideBodies runs Collide over every nearby pair in bodies, using src as
// the broad phase. Each pair is tested at most once per call.
func (w *World) CollideBodies(src CandidateSource, bodies []*Body, collide ContactFunc, process ProcessFunc) bool {
	return w.eachPair(src, bodies, func(a, b *Body) bool {
		return w.Collide(a, b, collide, process)
	})
}

// OverlapBodies is the detection-only counterpart of CollideBodies.
func (w *World) OverlapBodies(src CandidateSource, bodies []*Body, overlap ContactFunc, process ProcessFunc) bool {
	return w.eachPair(src, bodies, func(a, b *Body) bool {
		return w.Overlap(a, b, overlap, process)
	})
}

// eachPair populates the source and visits every candidate pair once,
// deduping the repeats produced by bodies that span several cells.
func (w *World) eachPair(src CandidateSource, bodies []*Body, test func(a, b *Body) bool) bool {
	src.Populate(bodies)

	mark := make([]int, len(bodies))
	hit := false

	for i, a := range bodies {
		if !a.Enable || a.CheckCollision.None {
			continue
		}
		src.Candidates(a, func(j int) bool {
			if j <= i || mark[j] == i+1 {
				return false
			}
			mark[j] = i + 1
			if test(a, bodies[j]) {
				hit = true
			}
			return false
		})
	}

	return hit
}
