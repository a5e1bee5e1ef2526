package physics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeparateCircleHeadOn(t *testing.T) {
	w := NewWorld(1000, 1000)

	a := NewCircleBody(0, 0, 5)
	a.VX = 10
	a.BounceX = 1
	a.BounceY = 1
	b := NewCircleBody(9, 0, 5)
	b.VX = -10
	b.BounceX = 1
	b.BounceY = 1

	require.True(t, w.SeparateCircle(a, b, false))

	require.InDelta(t, -10.0, a.VX, 1e-9, "equal masses swap normal velocities")
	require.InDelta(t, 10.0, b.VX, 1e-9)
	require.InDelta(t, 0.0, a.VY, 1e-9)

	// Penetration of 1 split evenly along the collision normal.
	require.InDelta(t, -0.5, a.CenterX(), 1e-9)
	require.InDelta(t, 9.5, b.CenterX(), 1e-9)
	require.InDelta(t, 10.0, Distance(a.CenterX(), a.CenterY(), b.CenterX(), b.CenterY()), 1e-9, "rims touching after separation")
}

func TestSeparateCircleImmovable(t *testing.T) {
	w := NewWorld(1000, 1000)

	a := NewCircleBody(0, 0, 5)
	a.VX = 10
	a.BounceX = 1
	a.BounceY = 1
	post := NewCircleBody(9, 0, 5)
	post.Immovable = true
	post.Moves = false

	require.True(t, w.SeparateCircle(a, post, false))

	require.InDelta(t, -1.0, a.CenterX(), 1e-9, "movable body absorbs the whole penetration")
	require.InDelta(t, 9.0, post.CenterX(), 1e-9)
	require.Zero(t, post.VX)
	// Equal masses against a stationary target: all normal momentum is
	// given up even though the target never receives it.
	require.InDelta(t, 0.0, a.VX, 1e-9)
}

func TestSeparateCircleOverlapOnly(t *testing.T) {
	w := NewWorld(1000, 1000)

	a := NewCircleBody(0, 0, 5)
	a.VX = 10
	b := NewCircleBody(9, 0, 5)

	var aFired, bFired int
	a.OnOverlap = func(self, other *Body) {
		aFired++
		require.Same(t, a, self)
		require.Same(t, b, other)
	}
	b.OnOverlap = func(self, other *Body) {
		bFired++
		require.Same(t, b, self)
	}

	require.True(t, w.SeparateCircle(a, b, true))

	require.InDelta(t, -5.0, a.X, 1e-9, "detection only, no movement")
	require.InDelta(t, 10.0, a.VX, 1e-9)
	require.Equal(t, 1, aFired)
	require.Equal(t, 1, bFired)
}

func TestSeparateCircleBothImmovable(t *testing.T) {
	w := NewWorld(1000, 1000)

	a := NewCircleBody(0, 0, 5)
	a.Immovable = true
	b := NewCircleBody(9, 0, 5)
	b.Immovable = true

	require.True(t, w.SeparateCircle(a, b, false), "contact reported")
	require.InDelta(t, -5.0, a.X, 1e-9)
	require.InDelta(t, 4.0, b.X, 1e-9)
}

func TestSeparateCircleApproachCorrection(t *testing.T) {
	w := NewWorld(1000, 1000)

	// With mismatched bounce the elastic exchange can leave both bodies
	// still approaching; the offending component is negated, never copied
	// from the other body.
	t.Run("chasing pair moving right", func(t *testing.T) {
		a := NewCircleBody(0, 0, 5)
		a.VX = 10
		a.BounceX = 1
		a.BounceY = 1
		b := NewCircleBody(9, 0, 5)
		b.VX = 2
		b.BounceX = 0.1
		b.BounceY = 0.1

		require.True(t, w.SeparateCircle(a, b, false))

		// Exchange gives a.VX=2 and b.VX=1, still closing.
		require.InDelta(t, 2.0, a.VX, 1e-9)
		require.InDelta(t, -1.0, b.VX, 1e-9, "b's component is reversed")
	})

	t.Run("chasing pair moving left", func(t *testing.T) {
		a := NewCircleBody(9, 0, 5)
		a.VX = -10
		a.BounceX = 1
		a.BounceY = 1
		b := NewCircleBody(0, 0, 5)
		b.VX = -2
		b.BounceX = 0.1
		b.BounceY = 0.1

		require.True(t, w.SeparateCircle(a, b, false))

		require.InDelta(t, -2.0, a.VX, 1e-9)
		require.InDelta(t, 1.0, b.VX, 1e-9)
	})
}

func TestCircleRectCorner(t *testing.T) {
	w := NewWorld(1000, 1000)

	rect := NewBody(0, 0, 20, 10)
	rect.Immovable = true
	rect.Moves = false

	// Circle center diagonally off the top-left corner, one unit deep.
	circle := NewCircleBody(-3, -4, 6)

	require.True(t, w.Collide(circle, rect, nil, nil))

	// Pushed back along the corner normal (3-4-5 triangle).
	require.InDelta(t, -3.6, circle.CenterX(), 1e-9)
	require.InDelta(t, -4.8, circle.CenterY(), 1e-9)
	require.InDelta(t, 6.0, Distance(circle.CenterX(), circle.CenterY(), 0, 0), 1e-9, "resting on the corner")
}

func TestCircleRectSideUsesRectanglePath(t *testing.T) {
	w := NewWorld(1000, 1000)

	floor := NewBody(0, 0, 20, 10)
	floor.Immovable = true
	floor.Moves = false

	// Circle dropping straight onto the top face: center x inside the
	// rect's x extent, so the contact resolves like a rectangle pair.
	circle := NewCircleBody(5, -3, 4)
	circle.PrevY = circle.Y - 2
	circle.VY = 2

	require.True(t, w.Collide(circle, floor, nil, nil))

	require.InDelta(t, 0.0, circle.Bottom(), 1e-9, "bounding box sits on the floor")
	require.Zero(t, circle.VY)
	require.True(t, circle.Touching.Down)
	require.True(t, floor.Touching.Up)
}
