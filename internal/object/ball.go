package object

import (
	"math"

	"github.com/lowrey/bumper/internal/physics"
)

// Ball tuning.
const (
	ballRadius = 2.5
	ballBounce = 0.82
	ballDrag   = 4.0

	ballImpactSpeed   = 35.0 // Minimum relative speed to spray particles
	ballRestThreshold = 1.5  // Below this speed a grounded ball is asleep
	ballRestSeconds   = 2.0  // How long a ball may sleep before despawning
)

// Ball is a bouncing circle. Hard impacts spray particles from the contact
// point; balls that come to rest on the floor despawn after a short while so
// throwing does not slowly fill the arena.
type Ball struct {
	body    *physics.Body
	resting float64
}

// NewBall creates a ball centered at (cx, cy). The spawner is wired into the
// body's collision callback so impacts can spray particles.
func NewBall(cx, cy float64, spawner Spawner) *Ball {
	b := physics.NewCircleBody(cx, cy, ballRadius)
	b.BounceX = ballBounce
	b.BounceY = ballBounce
	b.DragX = ballDrag
	b.CollideWorldBounds = true

	ball := &Ball{body: b}
	if spawner != nil {
		b.OnCollide = func(self, other *physics.Body) {
			ball.onImpact(self, other, spawner)
		}
	}
	return ball
}

// Body returns the ball's physics body.
func (b *Ball) Body() *physics.Body {
	return b.body
}

// onImpact sprays particles when the ball hits something hard enough.
func (b *Ball) onImpact(self, other *physics.Body, spawner Spawner) {
	dvx := self.VX - other.VX
	dvy := self.VY - other.VY
	speed := math.Hypot(dvx, dvy)
	if speed < ballImpactSpeed {
		return
	}

	count := 3 + int(speed/25)
	if count > 8 {
		count = 8
	}
	SpawnImpact(spawner, self.CenterX(), self.CenterY(), count)
}

// Update despawns the ball once it has rested on the floor long enough.
func (b *Ball) Update(ctx UpdateContext) (bool, error) {
	body := b.body
	speed := math.Hypot(body.VX, body.VY)
	grounded := body.Touching.Down || body.WasTouching.Down

	if grounded && speed < ballRestThreshold {
		b.resting += ctx.Delta.Seconds()
	} else {
		b.resting = 0
	}
	return b.resting >= ballRestSeconds, nil
}

// Draw renders the ball as a filled circle.
func (b *Ball) Draw(ctx DrawContext) error {
	ctx.Canvas.FillCircle(b.body.CenterX(), b.body.CenterY(), b.body.Radius)
	return nil
}
