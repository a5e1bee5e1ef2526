package object

import (
	"math"
	"math/rand"
	"sync"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect. Particles are not physics bodies;
// they move with simple drag and never collide, so hundreds of them stay
// cheap during heavy impacts.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay (1.0 = no drag)
	Gravity     float64 // Downward acceleration
	Fade        bool    // Whether to fade out over lifetime
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, lifetime float64) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	p.Gravity = 40
	p.Fade = true
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the sandbox.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnImpact sprays particles in a burst from a contact point.
func SpawnImpact(spawner Spawner, x, y float64, count int) {
	if spawner == nil {
		return
	}

	for i := 0; i < count; i++ {
		// Random direction, biased upward so sparks fly off the surface
		angle := rand.Float64()*2*math.Pi - math.Pi
		// Random speed variation (50% to 150%)
		speed := 20.0 * (0.5 + rand.Float64())
		// Random lifetime variation (50% to 100%)
		life := 0.5 * (0.5 + rand.Float64()*0.5)

		vx := math.Cos(angle) * speed
		vy := -math.Abs(math.Sin(angle)) * speed

		spawner.Spawn(NewParticle(x, y, vx, vy, life))
	}
}

// Update moves the particle and checks lifetime.
func (p *Particle) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true, nil
	}

	// Apply drag and gravity
	dragFactor := math.Pow(p.Drag, dt*60) // Normalize drag to ~60fps
	p.VX *= dragFactor
	p.VY = p.VY*dragFactor + p.Gravity*dt

	p.X += p.VX * dt
	p.Y += p.VY * dt

	return false, nil
}

// Draw renders the particle as a single pixel on the canvas.
func (p *Particle) Draw(ctx DrawContext) error {
	// Skip faded particles (< 25% lifetime)
	if p.Fade && p.MaxLifetime > 0 {
		if p.Lifetime/p.MaxLifetime < 0.25 {
			return nil
		}
	}

	ctx.Canvas.SetFloat(p.X, p.Y)
	return nil
}
