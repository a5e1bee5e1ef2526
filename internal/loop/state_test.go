package loop

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lowrey/bumper/internal/object"
	"github.com/stretchr/testify/require"
)

func TestSpawnQueue(t *testing.T) {
	state := NewState(DefaultConfig())
	state.AddObject(object.NewWall(0, 0, 10, 10))

	state.Spawn(object.NewCrate(5, 5))
	state.Spawn(object.NewCrate(15, 5))
	require.Len(t, state.Objects, 1, "spawned objects wait for the flush")

	state.FlushSpawned()
	require.Len(t, state.Objects, 3)

	state.FlushSpawned()
	require.Len(t, state.Objects, 3, "flush drains the queue")
}

func TestInputEdges(t *testing.T) {
	state := NewState(DefaultConfig())

	state.Input.Pause = true
	require.True(t, state.pauseEdge())

	state.lastInput = state.Input
	require.False(t, state.pauseEdge(), "held key is not an edge")

	state.lastInput.Number = -1
	state.Input.Number = 3
	require.Equal(t, 3, state.numberEdge())

	state.lastInput.Number = 3
	require.Equal(t, -1, state.numberEdge(), "held digit is not an edge")
}

func TestUpdateObjectsRemoval(t *testing.T) {
	state := NewState(DefaultConfig())
	state.Delta = time.Second

	// A particle with almost no lifetime left is removed on update
	state.AddObject(object.NewParticle(5, 5, 0, 0, 0.01))
	state.AddObject(object.NewWall(0, 50, 100, 5))

	require.NoError(t, updateObjects(state))
	require.Len(t, state.Objects, 1)
	_, isWall := state.Objects[0].(*object.Wall)
	require.True(t, isWall)
}

func TestStepPhysicsCountsContacts(t *testing.T) {
	state := NewState(DefaultConfig())
	state.Delta = 16 * time.Millisecond

	// A crate resting just above a wall falls into contact
	state.AddObject(object.NewWall(0, 50, 100, 5))
	state.AddObject(object.NewCrate(10, 44.5))

	for i := 0; i < 10; i++ {
		stepPhysics(state)
	}
	require.Positive(t, state.TotalContacts)
}

func TestBuildArena(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Crates = 3
	cfg.Balls = 2

	state := NewState(cfg)
	buildArena(state)

	require.NotNil(t, state.Player)

	var crates, balls, walls, platforms int
	for _, obj := range state.Objects {
		switch obj.(type) {
		case *object.Crate:
			crates++
		case *object.Ball:
			balls++
		case *object.Wall:
			walls++
		case *object.Platform:
			platforms++
		}
	}
	require.Equal(t, 3, crates)
	require.Equal(t, 2, balls)
	require.Equal(t, 4, walls)
	require.Equal(t, 2, platforms)
}

func TestResetSandbox(t *testing.T) {
	state := NewState(DefaultConfig())
	buildArena(state)
	state.TotalContacts = 42
	state.Player.Thrown = 7
	before := len(state.Objects)

	state.Spawn(object.NewCrate(5, 5))
	resetSandbox(state)

	require.Equal(t, before, len(state.Objects), "arena rebuilt from scratch")
	require.Zero(t, state.TotalContacts)
	require.Zero(t, state.Player.Thrown)
}

func TestClampTermSize(t *testing.T) {
	t.Run("small terminal unchanged", func(t *testing.T) {
		w, h, col, row := clampTermSize(80, 24)
		require.Equal(t, 80, w)
		require.Equal(t, 24, h)
		require.Zero(t, col)
		require.Zero(t, row)
	})

	t.Run("oversized terminal clamped and centered", func(t *testing.T) {
		w, h, col, row := clampTermSize(maxTermWidth+20, maxTermHeight+10)
		require.Equal(t, maxTermWidth, w)
		require.Equal(t, maxTermHeight, h)
		require.Equal(t, 10, col)
		require.Equal(t, 5, row)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file keeps defaults", func(t *testing.T) {
		t.Setenv("BUMPER_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("file overrides named fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sandbox.yaml")
		require.NoError(t, os.WriteFile(path, []byte("gravity_y: 120\ncrates: 9\n"), 0o644))
		t.Setenv("BUMPER_CONFIG", path)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, 120.0, cfg.GravityY)
		require.Equal(t, 9, cfg.Crates)
		require.Equal(t, DefaultConfig().Balls, cfg.Balls)
	})

	t.Run("bad cell size falls back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sandbox.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cell_size: 0\n"), 0o644))
		t.Setenv("BUMPER_CONFIG", path)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, DefaultConfig().CellSize, cfg.CellSize)
	})
}
