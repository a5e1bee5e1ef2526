package physics

import (
	"errors"
	"math"
)

// Shape identifies the collision geometry of a body.
type Shape int

const (
	ShapeRectangle Shape = iota
	ShapeCircle
)

// ErrNonPositiveMass is returned when a movable body is configured with a
// mass that is zero or negative. Mass is a divisor in the momentum-transfer
// formulas, so this is rejected at configuration time rather than per call.
var ErrNonPositiveMass = errors.New("physics: mass must be positive")

// DefaultMaxVelocity caps each velocity axis unless overridden per body.
const DefaultMaxVelocity = 10000.0

// ContactFunc is a notification callback fired after an accepted contact.
// The first argument is always the body the callback is attached to (or the
// first body of the pair, for callbacks passed to Collide/Overlap).
type ContactFunc func(a, b *Body)

// ProcessFunc is a veto callback run after the intersection test and before
// any separation. Returning false aborts the pair with no mutation.
type ProcessFunc func(a, b *Body) bool

// Edges holds one boolean per rectangle edge. It is used both for
// collision-enable masks (which edges may collide) and for touching state
// (which edges are in contact). None is the inverse summary flag: true when
// no edge is set.
type Edges struct {
	None  bool
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// AllEdges returns an edge set with every edge enabled.
func AllEdges() Edges {
	return Edges{Up: true, Down: true, Left: true, Right: true}
}

// NoEdges returns an edge set with every edge cleared and None set.
func NoEdges() Edges {
	return Edges{None: true}
}

// Body is the mutable physics state of one game entity. Position is the
// top-left corner of the bounding box; circles keep Width/Height at 2*Radius
// so the bounds stay consistent with the radius.
//
// The engine never creates or destroys bodies; it only reads and mutates
// them during a step. Touching, Embedded and the Overlap scratch fields are
// rebuilt every step and are only meaningful after all pair tests for the
// step have run.
type Body struct {
	// Enable gates participation: disabled bodies are never integrated,
	// tested or separated.
	Enable bool

	Shape Shape

	X, Y          float64 // Top-left position
	PrevX, PrevY  float64 // Position at the start of the current step
	Width, Height float64 // Bounding-box size
	Radius        float64 // Collision radius (circles only)

	VX, VY             float64 // Velocity
	AX, AY             float64 // Acceleration (wins over drag per axis)
	DragX, DragY       float64 // Velocity decay toward zero when not accelerating
	MaxVX, MaxVY       float64 // Per-axis speed cap; non-positive disables the cap
	GravityX, GravityY float64 // Per-body gravity, added to world gravity
	AllowGravity       bool
	AllowDrag          bool

	BounceX, BounceY     float64 // Rebound coefficients (0 inelastic, 1 elastic)
	FrictionX, FrictionY float64 // Motion transferred to bodies riding this one

	// Immovable bodies are excluded from positional and velocity correction.
	// An immovable body with Moves set is kinematic: it is integrated and
	// carries riders, but separation never pushes it.
	Immovable bool
	Moves     bool

	// CollideWorldBounds makes World.Step rebound this body off the world
	// bounds edges enabled in World.CheckCollision.
	CollideWorldBounds bool

	// CheckCollision masks which edges of this body may collide.
	// CheckCollision.None rejects the body from all pair tests.
	CheckCollision Edges

	// Touching accumulates contact edges over the current step;
	// WasTouching holds the previous step's result.
	Touching    Edges
	WasTouching Edges

	// Embedded marks a deadlocked overlap: the pair intersects but neither
	// body moved relative to the other this step.
	Embedded bool

	// OverlapX/OverlapY are per-pair scratch values holding the signed
	// penetration computed by the most recent overlap test on each axis.
	OverlapX, OverlapY float64

	// CustomSeparateX/Y opt this body out of built-in positional and
	// velocity correction on that axis; contacts are still reported.
	CustomSeparateX, CustomSeparateY bool

	Rotation     float64
	AngularVel   float64
	AngularAccel float64
	AngularDrag  float64
	MaxAngular   float64

	// OnCollide and OnOverlap fire once per accepted contact, with this
	// body first. Callbacks must not re-enter the engine for this pair.
	OnCollide ContactFunc
	OnOverlap ContactFunc

	mass float64
}

// NewBody returns an enabled, movable rectangle body with engine defaults:
// mass 1, no bounce, friction (1, 0), all collision edges on, gravity and
// drag allowed.
func NewBody(x, y, width, height float64) *Body {
	return &Body{
		Enable:         true,
		Shape:          ShapeRectangle,
		X:              x,
		Y:              y,
		PrevX:          x,
		PrevY:          y,
		Width:          width,
		Height:         height,
		MaxVX:          DefaultMaxVelocity,
		MaxVY:          DefaultMaxVelocity,
		AllowGravity:   true,
		AllowDrag:      true,
		FrictionX:      1,
		Moves:          true,
		CheckCollision: AllEdges(),
		Touching:       NoEdges(),
		WasTouching:    NoEdges(),
		mass:           1,
	}
}

// NewCircleBody returns an enabled, movable circle body centered at
// (cx, cy). The bounding box is kept at 2*radius per side.
func NewCircleBody(cx, cy, radius float64) *Body {
	b := NewBody(cx-radius, cy-radius, 2*radius, 2*radius)
	b.Shape = ShapeCircle
	b.Radius = radius
	return b
}

// Mass returns the body's mass.
func (b *Body) Mass() float64 {
	return b.mass
}

// SetMass sets the body's mass. Non-positive mass is a configuration error:
// mass divides in the separation formulas and must never reach them as zero.
func (b *Body) SetMass(m float64) error {
	if m <= 0 {
		return ErrNonPositiveMass
	}
	b.mass = m
	return nil
}

// Right returns the x coordinate of the body's right edge.
func (b *Body) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the y coordinate of the body's bottom edge.
func (b *Body) Bottom() float64 {
	return b.Y + b.Height
}

// CenterX returns the x coordinate of the body's center.
func (b *Body) CenterX() float64 {
	return b.X + b.Width/2
}

// CenterY returns the y coordinate of the body's center.
func (b *Body) CenterY() float64 {
	return b.Y + b.Height/2
}

// HalfWidth returns half the bounding-box width.
func (b *Body) HalfWidth() float64 {
	return b.Width / 2
}

// HalfHeight returns half the bounding-box height.
func (b *Body) HalfHeight() float64 {
	return b.Height / 2
}

// DeltaX returns the signed x displacement since the start of the step.
func (b *Body) DeltaX() float64 {
	return b.X - b.PrevX
}

// DeltaY returns the signed y displacement since the start of the step.
func (b *Body) DeltaY() float64 {
	return b.Y - b.PrevY
}

// DeltaAbsX returns the absolute x displacement since the start of the step.
func (b *Body) DeltaAbsX() float64 {
	return math.Abs(b.DeltaX())
}

// DeltaAbsY returns the absolute y displacement since the start of the step.
func (b *Body) DeltaAbsY() float64 {
	return math.Abs(b.DeltaY())
}

// ResetContacts rolls Touching into WasTouching and clears the per-step
// contact state. World.Step calls this for every enabled body; call it
// directly when driving pair tests without a World step.
func (b *Body) ResetContacts() {
	b.WasTouching = b.Touching
	b.Touching = NoEdges()
	b.Embedded = false
	b.OverlapX = 0
	b.OverlapY = 0
}
