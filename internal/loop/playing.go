package loop

import (
	"github.com/lowrey/bumper/internal/input"
	"github.com/lowrey/bumper/internal/object"
	"github.com/lowrey/bumper/internal/physics"
)

// updateRunningPhase handles one frame of the live simulation: phase keys,
// object updates, then the physics step and pair resolution.
func updateRunningPhase(state *State, stream *input.Stream) error {
	if state.pauseEdge() {
		state.Phase = PhasePaused
		input.Reset(stream)
		return nil
	}
	if state.resetEdge() {
		resetSandbox(state)
		return nil
	}
	if n := state.numberEdge(); n > 0 {
		dropCrates(state, n)
	}

	if err := updateObjects(state); err != nil {
		return err
	}
	stepPhysics(state)
	return nil
}

// updateObjects updates all objects and removes any that request removal,
// returning removed ones to their pools.
func updateObjects(state *State) error {
	ctx := state.UpdateContext()

	// Update objects and collect ones to keep
	kept := state.Objects[:0] // reuse backing array
	for _, obj := range state.Objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return err
		}
		if remove {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	state.Objects = kept

	// Add any newly spawned objects
	state.FlushSpawned()

	return nil
}

// stepPhysics integrates all bodies and resolves every nearby pair through
// the spatial grid, counting accepted contacts for the HUD.
func stepPhysics(state *State) {
	dt := state.Delta.Seconds()
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	state.bodies = object.CollectBodies(state.Objects, state.bodies)
	state.World.Step(dt, state.bodies)

	state.Contacts = 0
	state.World.CollideBodies(state.Grid, state.bodies, func(a, b *physics.Body) {
		state.Contacts++
	}, nil)
	state.TotalContacts += state.Contacts
}
