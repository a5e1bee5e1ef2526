package physics

// Rect is an axis-aligned rectangle, used for the world bounds.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the rectangle's right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// DefaultOverlapBias is the extra penetration margin allowed before an
// overlap is considered pre-existing rather than caused by this step's
// motion. Larger values tolerate faster bodies at the cost of softer
// rejection of deep overlaps.
const DefaultOverlapBias = 4.0

// World holds the global configuration for a simulation and drives the
// per-step motion of bodies. All fields are plain settable state.
type World struct {
	GravityX float64
	GravityY float64

	Bounds Rect

	// CheckCollision masks which world bounds edges rebound bodies that
	// have CollideWorldBounds set.
	CheckCollision Edges

	// OverlapBias widens the accepted penetration for fresh collisions.
	OverlapBias float64

	// ForceX resolves the X axis first for every rectangle pair,
	// overriding the gravity-based axis ordering.
	ForceX bool

	// Elapsed is the delta time of the current step, recorded by Step.
	Elapsed float64
}

// NewWorld returns a world covering (0,0)..(width,height) with no gravity,
// the default overlap bias and all bounds edges enabled.
func NewWorld(width, height float64) *World {
	return &World{
		Bounds:         Rect{Width: width, Height: height},
		CheckCollision: AllEdges(),
		OverlapBias:    DefaultOverlapBias,
	}
}

// Step advances every enabled body by dt seconds: contact state is rolled
// over, moving bodies are integrated and advanced, and bodies that collide
// with the world bounds are rebounded. Collision between bodies is not part
// of Step; run pair tests (Collide/Overlap/CollideBodies) after it.
func (w *World) Step(dt float64, bodies []*Body) {
	w.Elapsed = dt

	for _, b := range bodies {
		if !b.Enable {
			continue
		}

		b.ResetContacts()

		if !b.Moves {
			continue
		}

		b.PrevX = b.X
		b.PrevY = b.Y

		w.integrate(b, dt)

		b.X += b.VX * dt
		b.Y += b.VY * dt
		b.Rotation += b.AngularVel * dt

		if b.CollideWorldBounds {
			w.checkWorldBounds(b)
		}
	}
}

// checkWorldBounds clamps b inside the world bounds and reflects its
// velocity, scaled by the body's bounce, on each enabled edge. Bounds
// contact is reported through the body's touching flags.
func (w *World) checkWorldBounds(b *Body) {
	if b.X < w.Bounds.X && w.CheckCollision.Left {
		b.X = w.Bounds.X
		if b.VX < 0 {
			b.VX = -b.VX * b.BounceX
		}
		b.Touching.None = false
		b.Touching.Left = true
	} else if b.Right() > w.Bounds.Right() && w.CheckCollision.Right {
		b.X = w.Bounds.Right() - b.Width
		if b.VX > 0 {
			b.VX = -b.VX * b.BounceX
		}
		b.Touching.None = false
		b.Touching.Right = true
	}

	if b.Y < w.Bounds.Y && w.CheckCollision.Up {
		b.Y = w.Bounds.Y
		if b.VY < 0 {
			b.VY = -b.VY * b.BounceY
		}
		b.Touching.None = false
		b.Touching.Up = true
	} else if b.Bottom() > w.Bounds.Bottom() && w.CheckCollision.Down {
		b.Y = w.Bounds.Bottom() - b.Height
		if b.VY > 0 {
			b.VY = -b.VY * b.BounceY
		}
		b.Touching.None = false
		b.Touching.Down = true
	}
}
