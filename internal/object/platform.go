package object

import (
	"github.com/lowrey/bumper/internal/physics"
)

// Platform is a kinematic slab patrolling between two points. It is
// immovable with Moves set, so separation never pushes it but bodies
// standing on it are carried by the friction transfer.
type Platform struct {
	body *physics.Body

	minX, maxX float64
	minY, maxY float64
	speed      float64
	dirX, dirY float64 // Patrol axis unit vector, flipped at the ends
}

// NewPlatform creates a platform of the given size patrolling from (x, y)
// along (dx, dy) and back. Friction 1 on the patrol axis carries riders.
func NewPlatform(x, y, w, h, dx, dy, speed float64) *Platform {
	b := physics.NewBody(x, y, w, h)
	b.Immovable = true
	b.AllowGravity = false
	b.FrictionX = 1
	b.FrictionY = 1

	p := &Platform{
		body:  b,
		minX:  x,
		maxX:  x + dx,
		minY:  y,
		maxY:  y + dy,
		speed: speed,
	}
	if p.maxX < p.minX {
		p.minX, p.maxX = p.maxX, p.minX
	}
	if p.maxY < p.minY {
		p.minY, p.maxY = p.maxY, p.minY
	}
	if dx != 0 {
		p.dirX = 1
	}
	if dy != 0 {
		p.dirY = 1
	}
	return p
}

// Body returns the platform's physics body.
func (p *Platform) Body() *physics.Body {
	return p.body
}

// Update flips the patrol direction at the endpoints and sets velocity.
// The body is integrated by the world step like any other moving body.
func (p *Platform) Update(ctx UpdateContext) (bool, error) {
	b := p.body

	if p.dirX != 0 {
		if b.X <= p.minX {
			p.dirX = 1
		} else if b.X >= p.maxX {
			p.dirX = -1
		}
		b.VX = p.dirX * p.speed
	}
	if p.dirY != 0 {
		if b.Y <= p.minY {
			p.dirY = 1
		} else if b.Y >= p.maxY {
			p.dirY = -1
		}
		b.VY = p.dirY * p.speed
	}
	return false, nil
}

// Draw renders the platform as a filled slab.
func (p *Platform) Draw(ctx DrawContext) error {
	b := p.body
	ctx.Canvas.FillRect(b.X, b.Y, b.Width, b.Height)
	return nil
}
