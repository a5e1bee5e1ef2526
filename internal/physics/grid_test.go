package physics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func gatherCandidates(g *SpatialGrid, b *Body) []int {
	var got []int
	g.Candidates(b, func(i int) bool {
		got = append(got, i)
		return false
	})
	return got
}

func TestSpatialGridCandidates(t *testing.T) {
	g := NewSpatialGrid(Rect{Width: 100, Height: 100}, 10)

	near := NewBody(5, 5, 4, 4)
	far := NewBody(80, 80, 4, 4)
	probe := NewBody(2, 2, 4, 4)

	g.Populate([]*Body{near, far, probe})

	got := gatherCandidates(g, probe)
	require.Contains(t, got, 0, "body in the same cell is a candidate")
	require.NotContains(t, got, 1, "distant body is culled")
}

func TestSpatialGridSpanningBody(t *testing.T) {
	g := NewSpatialGrid(Rect{Width: 100, Height: 100}, 10)

	// Covers cells (0,0) through (2,2).
	big := NewBody(5, 5, 20, 20)
	corner := NewBody(22, 22, 4, 4)

	g.Populate([]*Body{big, corner})

	require.Contains(t, gatherCandidates(g, corner), 0, "spanning body reachable from its far cell")
}

func TestSpatialGridSkipsDisabled(t *testing.T) {
	g := NewSpatialGrid(Rect{Width: 100, Height: 100}, 10)

	off := NewBody(5, 5, 4, 4)
	off.Enable = false
	probe := NewBody(2, 2, 4, 4)

	g.Populate([]*Body{off, probe})

	require.NotContains(t, gatherCandidates(g, probe), 0)
}

func TestSpatialGridOutOfBoundsClamped(t *testing.T) {
	g := NewSpatialGrid(Rect{Width: 100, Height: 100}, 10)

	escapee := NewBody(-30, -30, 4, 4)
	edge := NewBody(1, 1, 4, 4)

	g.Populate([]*Body{escapee, edge})

	require.Contains(t, gatherCandidates(g, edge), 0, "out-of-bounds body lands in the edge cell")
}

func TestSpatialGridOffsetOrigin(t *testing.T) {
	// Bounds starting away from (0,0): cells must be keyed relative to the
	// origin, not clamped into the first cell.
	g := NewSpatialGrid(Rect{X: 1000, Y: 1000, Width: 100, Height: 100}, 10)

	corner := NewBody(1002, 1002, 4, 4)
	opposite := NewBody(1080, 1080, 4, 4)
	probe := NewBody(1005, 1005, 4, 4)

	g.Populate([]*Body{corner, opposite, probe})

	got := gatherCandidates(g, probe)
	require.Contains(t, got, 0, "neighbor near the shifted origin is a candidate")
	require.NotContains(t, got, 1, "distant body must not share the origin cell")
}

func TestCollideBodies(t *testing.T) {
	w := NewWorld(1000, 1000)
	g := NewSpatialGrid(Rect{Width: 1000, Height: 1000}, 50)

	t.Run("resolves nearby pairs once", func(t *testing.T) {
		// The pair shares two cells; it must still be tested only once.
		a := movedBody(0, 0, 45, 0, 60, 10)
		b := NewBody(60, 0, 60, 10)

		var pair int
		got := w.CollideBodies(g, []*Body{a, b}, func(_, _ *Body) { pair++ }, nil)

		require.True(t, got)
		require.Equal(t, 1, pair, "shared cells must not double-test a pair")
		require.InDelta(t, b.X, a.Right(), 1e-9, "pair separated")
	})

	t.Run("no contact when nothing intersects", func(t *testing.T) {
		a := NewBody(0, 0, 10, 10)
		b := NewBody(500, 500, 10, 10)

		require.False(t, w.CollideBodies(g, []*Body{a, b}, nil, nil))
	})
}

func TestOverlapBodies(t *testing.T) {
	w := NewWorld(1000, 1000)
	g := NewSpatialGrid(Rect{Width: 1000, Height: 1000}, 50)

	a := movedBody(0, 0, 4, 0, 10, 10)
	b := NewBody(12, 0, 10, 10)

	var pair int
	got := w.OverlapBodies(g, []*Body{a, b}, func(_, _ *Body) { pair++ }, nil)

	require.True(t, got)
	require.Equal(t, 1, pair)
	require.InDelta(t, 4.0, a.X, 1e-9, "detection only")
}
