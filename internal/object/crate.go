package object

import (
	"math"

	"github.com/lowrey/bumper/internal/draw"
	"github.com/lowrey/bumper/internal/physics"
)

// Crate tuning.
const (
	crateSize      = 5.0
	crateMass      = 2.0
	crateDrag      = 30.0
	crateBounce    = 0.2
	crateSpinSpeed = 25.0 // Relative impact speed that starts a tumble
	crateSpinDrag  = 2.0
)

// Crate is a pushable box. It is heavier than the player, so shoving a
// stack takes a run-up. Hard hits set it tumbling, which is purely visual;
// the collision box stays axis aligned.
type Crate struct {
	body *physics.Body
}

// NewCrate creates a crate with its top-left corner at (x, y).
func NewCrate(x, y float64) *Crate {
	b := physics.NewBody(x, y, crateSize, crateSize)
	_ = b.SetMass(crateMass)
	b.DragX = crateDrag
	b.BounceX = crateBounce
	b.BounceY = crateBounce
	b.AngularDrag = crateSpinDrag
	b.CollideWorldBounds = true

	c := &Crate{body: b}
	b.OnCollide = c.onHit
	return c
}

// Body returns the crate's physics body.
func (c *Crate) Body() *physics.Body {
	return c.body
}

// onHit starts a tumble proportional to the impact speed.
func (c *Crate) onHit(self, other *physics.Body) {
	dvx := self.VX - other.VX
	dvy := self.VY - other.VY
	speed := math.Hypot(dvx, dvy)
	if speed < crateSpinSpeed {
		return
	}
	dir := 1.0
	if dvx < 0 {
		dir = -1
	}
	self.AngularVel = dir * speed / 10
}

// Update settles the tumble once the crate is grounded and slow.
func (c *Crate) Update(ctx UpdateContext) (bool, error) {
	b := c.body
	if (b.Touching.Down || b.WasTouching.Down) && math.Abs(b.VX) < 1 {
		b.AngularVel = 0
		b.Rotation = 0
	}
	return false, nil
}

// Draw renders the crate. At rest it is a plain outlined box; while tumbling
// it is drawn as a rotated polygon around its center.
func (c *Crate) Draw(ctx DrawContext) error {
	b := c.body
	if b.Rotation == 0 {
		ctx.Canvas.FillRect(b.X, b.Y, b.Width, b.Height)
		return nil
	}

	cx, cy := b.CenterX(), b.CenterY()
	hw, hh := b.HalfWidth(), b.HalfHeight()
	sin, cos := math.Sincos(b.Rotation)

	pts := ctx.Canvas.BorrowPoints(4)
	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	for i, corner := range corners {
		px, py := corner[0], corner[1]
		pts[i] = draw.Point{
			X: cx + px*cos - py*sin,
			Y: cy + px*sin + py*cos,
		}
	}
	ctx.Canvas.DrawPolygon(pts, true)
	return nil
}
