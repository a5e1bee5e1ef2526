package loop

import (
	"math/rand"

	"github.com/lowrey/bumper/internal/object"
)

// buildArena populates the sandbox: floor and ledges, two patrolling
// platforms, a crate stack, a few loose balls and the player.
func buildArena(state *State) {
	cfg := state.Config

	// Scenery. The world bounds already fence the arena; the walls add
	// ledges and a pillar to climb and funnel crates against.
	state.AddObject(object.NewWall(0, 76, targetWidth, 4))
	state.AddObject(object.NewWall(0, 56, 30, 3))
	state.AddObject(object.NewWall(85, 44, 35, 3))
	state.AddObject(object.NewWall(56, 64, 8, 12))

	// Platforms: one horizontal patrol over the gap, one vertical lift.
	state.AddObject(object.NewPlatform(35, 60, 14, 2, 30, 0, cfg.PlatformSpeed))
	state.AddObject(object.NewPlatform(95, 20, 12, 2, 0, 20, cfg.PlatformSpeed*0.8))

	// Crate stack against the pillar.
	for i := 0; i < cfg.Crates; i++ {
		x := 66.0 + float64(i%2)*6
		y := 71.0 - float64(i/2)*6
		state.AddObject(object.NewCrate(x, y))
	}

	// Loose balls dropped from the top.
	for i := 0; i < cfg.Balls; i++ {
		cx := 20.0 + rand.Float64()*(targetWidth-40)
		state.AddObject(object.NewBall(cx, 10, state))
	}

	player := object.NewPlayer(10, 45)
	state.Player = player
	state.AddObject(player)
}

// resetSandbox rebuilds the arena from scratch and zeroes the counters.
func resetSandbox(state *State) {
	for _, obj := range state.Objects {
		object.ReleaseObject(obj)
	}
	state.Objects = state.Objects[:0]
	state.toSpawn = state.toSpawn[:0]
	state.Contacts = 0
	state.TotalContacts = 0
	if state.Player != nil {
		state.Player.Thrown = 0
	}

	buildArena(state)
}

// dropCrates spawns n crates from the top of the arena at spread positions.
func dropCrates(state *State, n int) {
	for i := 0; i < n; i++ {
		x := 15.0 + rand.Float64()*(targetWidth-30)
		state.Spawn(object.NewCrate(x, 5))
	}
}
