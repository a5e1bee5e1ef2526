package physics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeVelocity(t *testing.T) {
	t.Run("acceleration wins over drag", func(t *testing.T) {
		got := computeVelocity(10, 5, 100, 0, 0, 1, true)
		require.InDelta(t, 15.0, got, 1e-9, "drag must be ignored while accelerating")
	})

	t.Run("drag decays toward zero", func(t *testing.T) {
		require.InDelta(t, 20.0, computeVelocity(30, 0, 10, 0, 0, 1, true), 1e-9)
		require.InDelta(t, -20.0, computeVelocity(-30, 0, 10, 0, 0, 1, true), 1e-9)
	})

	t.Run("drag never crosses zero", func(t *testing.T) {
		got := computeVelocity(3, 0, 10, 0, 0, 1, true)
		require.Zero(t, got, "drag larger than the velocity must clamp to exactly zero")
	})

	t.Run("drag disabled", func(t *testing.T) {
		got := computeVelocity(30, 0, 10, 0, 0, 1, false)
		require.InDelta(t, 30.0, got, 1e-9)
	})

	t.Run("gravity accumulates", func(t *testing.T) {
		got := computeVelocity(0, 0, 0, 0, 10, 0.5, true)
		require.InDelta(t, 5.0, got, 1e-9)
	})

	t.Run("clamped to max", func(t *testing.T) {
		require.InDelta(t, 50.0, computeVelocity(0, 100, 0, 50, 0, 1, true), 1e-9)
		require.InDelta(t, -50.0, computeVelocity(0, -100, 0, 50, 0, 1, true), 1e-9)
	})

	t.Run("non-positive max is uncapped", func(t *testing.T) {
		got := computeVelocity(0, 100, 0, 0, 0, 1, true)
		require.InDelta(t, 100.0, got, 1e-9)
	})
}

func TestIntegrateGravity(t *testing.T) {
	w := NewWorld(100, 100)
	w.GravityY = 100

	t.Run("world and body gravity combine", func(t *testing.T) {
		b := NewBody(0, 0, 10, 10)
		b.GravityY = -40
		w.integrate(b, 1)
		require.InDelta(t, 60.0, b.VY, 1e-9)
	})

	t.Run("gravity skipped when not allowed", func(t *testing.T) {
		b := NewBody(0, 0, 10, 10)
		b.AllowGravity = false
		w.integrate(b, 1)
		require.Zero(t, b.VY)
	})

	t.Run("angular velocity ignores gravity", func(t *testing.T) {
		b := NewBody(0, 0, 10, 10)
		b.AngularAccel = 4
		w.integrate(b, 0.5)
		require.InDelta(t, 2.0, b.AngularVel, 1e-9)
	})
}
