// Package loop drives the sandbox session: input, object updates, the
// physics step and pair resolution, and terminal rendering.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/lowrey/bumper/internal/draw"
	"github.com/lowrey/bumper/internal/input"
	"github.com/lowrey/bumper/internal/object"
)

// Run starts the sandbox loop with the standard Input → Update → Step →
// Collide → Draw cycle. It blocks until the user quits or the reader closes.
// A nil sizeFunc uses the local terminal size.
func Run(r *bufio.Reader, w io.Writer, sizeFunc draw.TermSizeFunc) error {
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	state := NewState(cfg)
	stream := input.StartStream(r)

	draw.EnterAltScreen(w)
	draw.HideCursor(w)
	defer func() {
		draw.ShowCursor(w)
		draw.ExitAltScreen(w)
	}()
	draw.ClearScreen(w)

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := draw.TerminalSizeRawWith(sizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, targetWidth, targetHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	ui := draw.NewChunkWriter(w, offsetCol, offsetRow)

	buildArena(state)

	lastTime := time.Now()

	for state.Running {
		frameStart := time.Now()
		state.Delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		processInput(state, stream)
		updateScreen(canvas, ui, w, sizeFunc)

		switch state.Phase {
		case PhaseStart:
			updateStartPhase(state, stream)
		case PhaseRunning:
			if err := updateRunningPhase(state, stream); err != nil {
				return err
			}
		case PhasePaused:
			updatePausedPhase(state, stream)
		}

		if err := drawFrame(state, w, canvas, ui); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// processInput reads all pending input and rolls the previous frame's state
// for edge detection.
func processInput(state *State, stream *input.Stream) {
	state.lastInput = state.Input
	state.Input = input.ReadInput(stream)

	if state.Input.Quit {
		state.Running = false
	}
}

// updateScreen handles terminal resize, clamping to the max render
// resolution. On actual size changes the terminal is cleared to remove
// residual pixels outside the new canvas area.
func updateScreen(canvas *draw.Canvas, ui *draw.ChunkWriter, w io.Writer, sizeFunc draw.TermSizeFunc) {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(sizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != canvas.TerminalWidth() || renderHeight != canvas.TerminalHeight() ||
		offsetCol != canvas.OffsetCol() || offsetRow != canvas.OffsetRow() {
		draw.ClearScreen(w)
		canvas.ForceRedraw()
	}

	canvas.Resize(renderWidth, renderHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	ui.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and
// computes the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > maxTermWidth {
		renderWidth = maxTermWidth
	}
	if renderHeight > maxTermHeight {
		renderHeight = maxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// drawFrame draws all objects to the canvas and flushes everything (canvas
// diff, border, HUD) through the chunk writer. On a phase transition the
// terminal is cleared in full so overlay text from the previous phase does
// not persist.
func drawFrame(state *State, w io.Writer, canvas *draw.Canvas, ui *draw.ChunkWriter) error {
	if state.Phase != state.prevPhase {
		draw.ClearScreen(w)
		canvas.ForceRedraw()
		state.prevPhase = state.Phase
	}

	canvas.Clear()

	ctx := object.DrawContext{
		Canvas: canvas,
		Writer: ui,
	}

	for _, obj := range state.Objects {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}

	canvas.Render(ui)
	canvas.RenderBorder(ui)

	drawUI(state, ui, canvas)

	return ui.Flush()
}
