package object

import (
	"github.com/lowrey/bumper/internal/physics"
)

// Wall is a static immovable rectangle: floors, ledges and the crate
// funnel. It is never integrated (Moves is off), only collided against.
type Wall struct {
	body *physics.Body
}

// NewWall creates a static wall with its top-left corner at (x, y).
func NewWall(x, y, w, h float64) *Wall {
	b := physics.NewBody(x, y, w, h)
	b.Immovable = true
	b.Moves = false
	b.AllowGravity = false
	return &Wall{body: b}
}

// Body returns the wall's physics body.
func (w *Wall) Body() *physics.Body {
	return w.body
}

// Update does nothing; walls never move or expire.
func (w *Wall) Update(ctx UpdateContext) (bool, error) {
	return false, nil
}

// Draw renders the wall as an outlined box so it reads as scenery rather
// than a pushable object.
func (w *Wall) Draw(ctx DrawContext) error {
	b := w.body
	ctx.Canvas.DrawRect(b.X, b.Y, b.Width, b.Height)
	return nil
}
