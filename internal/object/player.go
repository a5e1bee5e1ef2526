package object

import (
	"github.com/lowrey/bumper/internal/physics"
)

// Player tuning.
const (
	playerWidth      = 7.0
	playerHeight     = 6.0
	playerAccel      = 160.0 // Horizontal acceleration while a key is held
	playerDrag       = 120.0 // Horizontal deceleration when idle
	playerMaxSpeed   = 60.0
	playerJumpSpeed  = 58.0
	playerStompAccel = 200.0 // Extra downward acceleration while holding down

	throwCooldown = 0.3
	throwSpeed    = 55.0
	throwLift     = -25.0
)

// Player is the keyboard-controlled rectangle. Movement goes entirely
// through the physics body: keys set acceleration, the integrator applies
// drag and speed caps, and jumps are gated on a floor contact from the
// previous frame's collision pass.
type Player struct {
	body   *physics.Body
	facing float64 // -1 left, 1 right
	cool   float64 // Seconds until the next throw

	Thrown int // Balls thrown, shown in the HUD
}

// NewPlayer creates a player with its top-left corner at (x, y).
func NewPlayer(x, y float64) *Player {
	b := physics.NewBody(x, y, playerWidth, playerHeight)
	b.DragX = playerDrag
	b.MaxVX = playerMaxSpeed
	b.CollideWorldBounds = true
	return &Player{body: b, facing: 1}
}

// Body returns the player's physics body.
func (p *Player) Body() *physics.Body {
	return p.body
}

// Update turns held keys into body acceleration and throws.
func (p *Player) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()
	b := p.body

	b.AX = 0
	if ctx.Input.Left {
		b.AX = -playerAccel
		p.facing = -1
	}
	if ctx.Input.Right {
		b.AX = playerAccel
		p.facing = 1
	}

	// Jump from anything under our feet: floor, crate, platform.
	if ctx.Input.Up && (b.Touching.Down || b.WasTouching.Down) {
		b.VY = -playerJumpSpeed
	}

	b.AY = 0
	if ctx.Input.Down {
		b.AY = playerStompAccel
	}

	p.cool -= dt
	if ctx.Input.Space && p.cool <= 0 && ctx.Spawner != nil {
		p.cool = throwCooldown
		p.throw(ctx.Spawner)
	}

	return false, nil
}

// throw launches a ball from the player's facing side, inheriting the
// player's velocity.
func (p *Player) throw(spawner Spawner) {
	b := p.body
	cx := b.CenterX() + p.facing*(b.HalfWidth()+ballRadius+1)
	cy := b.Y + ballRadius

	ball := NewBall(cx, cy, spawner)
	ball.body.VX = b.VX + p.facing*throwSpeed
	ball.body.VY = b.VY + throwLift
	spawner.Spawn(ball)
	p.Thrown++
}

// Draw renders the player as a solid block with a notch on the facing side.
func (p *Player) Draw(ctx DrawContext) error {
	b := p.body
	ctx.Canvas.FillRect(b.X, b.Y, b.Width, b.Height)

	// Eye notch: a small outline box toward the facing edge.
	eyeX := b.CenterX() + p.facing*b.Width/4
	ctx.Canvas.DrawRect(eyeX-0.5, b.Y+1, 1, 1)
	return nil
}
