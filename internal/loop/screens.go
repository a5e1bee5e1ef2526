package loop

import (
	"fmt"

	"github.com/lowrey/bumper/internal/draw"
	"github.com/lowrey/bumper/internal/input"
	"github.com/lowrey/bumper/internal/object"
)

// updateStartPhase handles the title screen.
func updateStartPhase(state *State, stream *input.Stream) {
	if state.Input.Space || state.Input.Enter {
		input.Reset(stream)
		state.Phase = PhaseRunning
	}
}

// updatePausedPhase handles the pause overlay. Particles keep animating so
// the freeze does not look like a hang; bodies are not stepped.
func updatePausedPhase(state *State, stream *input.Stream) {
	ctx := state.UpdateContext()
	kept := state.Objects[:0]
	for _, obj := range state.Objects {
		if _, isParticle := obj.(*object.Particle); isParticle {
			remove, _ := obj.Update(ctx)
			if remove {
				object.ReleaseObject(obj)
				continue
			}
		}
		kept = append(kept, obj)
	}
	state.Objects = kept
	state.FlushSpawned()

	if state.pauseEdge() || state.Input.Space {
		input.Reset(stream)
		state.Phase = PhaseRunning
		return
	}
	if state.resetEdge() {
		resetSandbox(state)
		state.Phase = PhaseRunning
	}
}

// drawUI draws the overlay for the current phase.
func drawUI(state *State, ui *draw.ChunkWriter, canvas *draw.Canvas) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch state.Phase {
	case PhaseStart:
		drawStartScreen(ui, canvas, centerX, centerY)
	case PhaseRunning:
		drawHUD(state, ui, canvas, termWidth)
	case PhasePaused:
		drawHUD(state, ui, canvas, termWidth)
		drawPauseScreen(ui, canvas, centerX, centerY)
	}
}

// drawStartScreen draws the title screen.
func drawStartScreen(ui *draw.ChunkWriter, canvas *draw.Canvas, centerX, centerY int) {
	lines := []object.Text{
		{Value: "B U M P E R", Y: centerY - 3},
		{Value: "Press SPACE to Start", Y: centerY},
		{Value: "A/D or Arrows to move, W to jump, SPACE to throw", Y: centerY + 3},
		{Value: "1-9 to drop crates, P to pause, R to reset, Q to quit", Y: centerY + 4},
	}
	drawCentered(ui, canvas, lines, centerX)
}

// drawPauseScreen draws the pause overlay on top of the frozen scene.
func drawPauseScreen(ui *draw.ChunkWriter, canvas *draw.Canvas, centerX, centerY int) {
	lines := []object.Text{
		{Value: "P A U S E D", Y: centerY - 1},
		{Value: "SPACE to resume, R to reset", Y: centerY + 1},
	}
	drawCentered(ui, canvas, lines, centerX)
}

// drawCentered centers each text line horizontally and draws it, marking the
// covered cells dirty so the canvas repaints them next frame.
func drawCentered(ui *draw.ChunkWriter, canvas *draw.Canvas, lines []object.Text, centerX int) {
	ctx := object.DrawContext{Canvas: canvas, Writer: ui}
	for _, t := range lines {
		t.X = centerX - len(t.Value)/2
		t.Draw(ctx)
		canvas.MarkTextDirty(t.X, t.Y, len(t.Value))
	}
}

// drawHUD draws the running simulation counters.
func drawHUD(state *State, ui *draw.ChunkWriter, canvas *draw.Canvas, termWidth int) {
	bodies := fmt.Sprintf("Bodies: %d", len(state.bodies))
	ui.WriteAt(2, 1, bodies)
	canvas.MarkTextDirty(2, 1, len(bodies))

	contacts := fmt.Sprintf("Contacts: %d (%d total)", state.Contacts, state.TotalContacts)
	ui.WriteAt(termWidth-len(contacts)-1, 1, contacts)
	canvas.MarkTextDirty(termWidth-len(contacts)-1, 1, len(contacts)+1)

	if state.Player != nil {
		thrown := fmt.Sprintf("Thrown: %d", state.Player.Thrown)
		ui.WriteAt(2, 2, thrown)
		canvas.MarkTextDirty(2, 2, len(thrown))
	}
}
