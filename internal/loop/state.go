package loop

import (
	"time"

	"github.com/lowrey/bumper/internal/object"
	"github.com/lowrey/bumper/internal/physics"
)

// Phase represents the current sandbox phase for a session.
type Phase int

const (
	PhaseStart   Phase = iota // Title screen
	PhaseRunning              // Simulation running
	PhasePaused               // Simulation frozen, overlay shown
)

// State holds everything for one sandbox session: the object list, the
// physics world and broad phase, input and phase bookkeeping, and the HUD
// counters.
type State struct {
	Objects []object.Object
	toSpawn []object.Object // Objects to add after the current update cycle

	World  *physics.World
	Grid   *physics.SpatialGrid
	Config SandboxConfig
	Player *object.Player

	Input     object.Input
	lastInput object.Input // Previous frame's input, for edge detection

	Phase     Phase
	prevPhase Phase // Phase drawn last frame, for full-repaint transitions
	Running   bool
	Delta     time.Duration

	Contacts      int // Contacts resolved last frame
	TotalContacts int // Contacts resolved since the last reset

	bodies []*physics.Body // Scratch body list, reused every frame
}

// NewState creates an initialized session state with a world and broad phase
// sized to the logical resolution.
func NewState(cfg SandboxConfig) *State {
	w := physics.NewWorld(targetWidth, targetHeight)
	w.GravityY = cfg.GravityY
	w.OverlapBias = cfg.OverlapBias

	return &State{
		World:   w,
		Grid:    physics.NewSpatialGrid(w.Bounds, cfg.CellSize),
		Config:  cfg,
		Phase:   PhaseStart,
		Running: true,
	}
}

// AddObject adds an object to the sandbox.
func (s *State) AddObject(obj object.Object) {
	s.Objects = append(s.Objects, obj)
}

// Spawn queues an object to be added after the current update cycle.
// Implements object.Spawner.
func (s *State) Spawn(obj object.Object) {
	s.toSpawn = append(s.toSpawn, obj)
}

// FlushSpawned adds all queued objects to the sandbox and clears the queue.
func (s *State) FlushSpawned() {
	s.Objects = append(s.Objects, s.toSpawn...)
	s.toSpawn = s.toSpawn[:0]
}

// UpdateContext creates an UpdateContext from the current state.
func (s *State) UpdateContext() object.UpdateContext {
	return object.UpdateContext{
		Delta:   s.Delta,
		Input:   s.Input,
		World:   s.World,
		Spawner: s,
	}
}

// pauseEdge reports a fresh press of the pause key this frame.
func (s *State) pauseEdge() bool {
	return s.Input.Pause && !s.lastInput.Pause
}

// resetEdge reports a fresh press of the reset key this frame.
func (s *State) resetEdge() bool {
	return s.Input.Reset && !s.lastInput.Reset
}

// numberEdge returns a freshly pressed digit, or -1.
func (s *State) numberEdge() int {
	if s.Input.Number >= 0 && s.lastInput.Number < 0 {
		return s.Input.Number
	}
	return -1
}
