package object

import (
	"testing"
	"time"

	"github.com/lowrey/bumper/internal/physics"
	"github.com/stretchr/testify/require"
)

// recorder collects spawned objects for assertions.
type recorder struct {
	spawned []Object
}

func (r *recorder) Spawn(obj Object) {
	r.spawned = append(r.spawned, obj)
}

func step(d time.Duration) UpdateContext {
	return UpdateContext{Delta: d}
}

func TestCollectBodies(t *testing.T) {
	player := NewPlayer(0, 0)
	wall := NewWall(0, 50, 100, 5)
	text := Text{X: 1, Y: 1, Value: "hud"}

	bodies := CollectBodies([]Object{player, wall, text}, nil)
	require.Len(t, bodies, 2)
	require.Same(t, player.Body(), bodies[0])
	require.Same(t, wall.Body(), bodies[1])

	// Reuses the scratch slice
	again := CollectBodies([]Object{player}, bodies)
	require.Len(t, again, 1)
	require.Same(t, &bodies[0], &again[0])
}

func TestPlayer(t *testing.T) {
	t.Run("keys set acceleration", func(t *testing.T) {
		p := NewPlayer(10, 10)
		ctx := step(16 * time.Millisecond)
		ctx.Input.Right = true

		_, err := p.Update(ctx)
		require.NoError(t, err)
		require.Positive(t, p.Body().AX)
	})

	t.Run("jump requires floor contact", func(t *testing.T) {
		p := NewPlayer(10, 10)
		ctx := step(16 * time.Millisecond)
		ctx.Input.Up = true

		_, err := p.Update(ctx)
		require.NoError(t, err)
		require.Zero(t, p.Body().VY, "airborne jump should be ignored")

		p.Body().Touching.Down = true
		_, err = p.Update(ctx)
		require.NoError(t, err)
		require.Negative(t, p.Body().VY)
	})

	t.Run("throw spawns a ball with cooldown", func(t *testing.T) {
		p := NewPlayer(10, 10)
		rec := &recorder{}
		ctx := step(16 * time.Millisecond)
		ctx.Spawner = rec
		ctx.Input.Space = true

		_, err := p.Update(ctx)
		require.NoError(t, err)
		require.Len(t, rec.spawned, 1)
		require.Equal(t, 1, p.Thrown)

		ball, ok := rec.spawned[0].(*Ball)
		require.True(t, ok)
		require.Positive(t, ball.Body().VX, "thrown toward the facing side")

		// Held space within the cooldown does not throw again
		_, err = p.Update(ctx)
		require.NoError(t, err)
		require.Len(t, rec.spawned, 1)
	})
}

func TestBallRestDespawn(t *testing.T) {
	b := NewBall(50, 50, nil)
	b.Body().Touching.Down = true
	b.Body().VX = 0
	b.Body().VY = 0

	ctx := step(time.Duration(ballRestSeconds*float64(time.Second)) / 2)
	remove, err := b.Update(ctx)
	require.NoError(t, err)
	require.False(t, remove)

	remove, err = b.Update(ctx)
	require.NoError(t, err)
	require.True(t, remove, "grounded motionless ball despawns")

	// Movement resets the rest timer
	b2 := NewBall(50, 50, nil)
	b2.Body().Touching.Down = true
	b2.Body().VX = 20
	remove, err = b2.Update(ctx)
	require.NoError(t, err)
	require.False(t, remove)
}

func TestBallImpactParticles(t *testing.T) {
	rec := &recorder{}
	ball := NewBall(50, 50, rec)
	other := physics.NewBody(0, 0, 10, 10)

	// Slow contact: no spray
	ball.Body().VX = 5
	ball.Body().OnCollide(ball.Body(), other)
	require.Empty(t, rec.spawned)

	// Hard contact: spray scales with speed
	ball.Body().VX = 60
	ball.Body().OnCollide(ball.Body(), other)
	require.NotEmpty(t, rec.spawned)
	for _, obj := range rec.spawned {
		_, ok := obj.(*Particle)
		require.True(t, ok)
	}
}

func TestPlatformPatrol(t *testing.T) {
	p := NewPlatform(10, 40, 14, 2, 30, 0, 12)
	b := p.Body()
	require.True(t, b.Immovable)
	require.True(t, b.Moves)

	ctx := step(16 * time.Millisecond)

	_, err := p.Update(ctx)
	require.NoError(t, err)
	require.Equal(t, 12.0, b.VX, "starts moving toward the far end")

	b.X = 41 // past maxX
	_, err = p.Update(ctx)
	require.NoError(t, err)
	require.Equal(t, -12.0, b.VX, "flips at the far end")

	b.X = 9
	_, err = p.Update(ctx)
	require.NoError(t, err)
	require.Equal(t, 12.0, b.VX, "flips back at the start")
}

func TestWallIsStatic(t *testing.T) {
	w := NewWall(0, 70, 120, 4)
	b := w.Body()
	require.True(t, b.Immovable)
	require.False(t, b.Moves)
	require.False(t, b.AllowGravity)

	remove, err := w.Update(step(time.Second))
	require.NoError(t, err)
	require.False(t, remove)
}

func TestParticleLifecycle(t *testing.T) {
	p := NewParticle(10, 10, 5, -5, 0.2)

	remove, err := p.Update(step(100 * time.Millisecond))
	require.NoError(t, err)
	require.False(t, remove)
	require.NotEqual(t, 10.0, p.X, "moves with its velocity")

	remove, err = p.Update(step(200 * time.Millisecond))
	require.NoError(t, err)
	require.True(t, remove, "expires after its lifetime")
}

func TestSpawnImpact(t *testing.T) {
	rec := &recorder{}
	SpawnImpact(rec, 30, 40, 5)
	require.Len(t, rec.spawned, 5)

	for _, obj := range rec.spawned {
		p, ok := obj.(*Particle)
		require.True(t, ok)
		require.Equal(t, 30.0, p.X)
		require.Equal(t, 40.0, p.Y)
		require.LessOrEqual(t, p.VY, 0.0, "sparks fly upward off the surface")
	}

	// Nil spawner is a no-op
	SpawnImpact(nil, 0, 0, 3)
}
