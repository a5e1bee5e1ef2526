// Package object implements the entities of the physics sandbox. Every
// solid entity owns a physics body; the loop collects the bodies, steps the
// world and resolves the pairs, then hands control back to the objects for
// game logic and drawing.
package object

import (
	"io"
	"time"

	"github.com/lowrey/bumper/internal/draw"
	"github.com/lowrey/bumper/internal/input"
	"github.com/lowrey/bumper/internal/physics"
)

// Spawner allows objects to spawn new objects during update or from
// collision callbacks. Spawned objects join the world after the current
// frame's update cycle.
type Spawner interface {
	Spawn(obj Object)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Input   Input
	World   *physics.World
	Spawner Spawner
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // High-resolution canvas (2x vertical)
	Writer io.Writer    // Direct terminal output (for text overlays)
}

// Object is a drawable and updatable sandbox entity.
type Object interface {
	// Update runs the entity's game logic. Returns true if the object
	// should be removed. Physics motion is not applied here; the loop
	// steps all bodies together after updates.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object. Use ctx.Canvas for shapes, ctx.Writer for text.
	Draw(ctx DrawContext) error
}

// Bodied is implemented by objects backed by a physics body.
type Bodied interface {
	Body() *physics.Body
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// CollectBodies appends the bodies of all Bodied objects to dst and returns
// it. The loop reuses dst across frames to avoid allocations.
func CollectBodies(objects []Object, dst []*physics.Body) []*physics.Body {
	dst = dst[:0]
	for _, obj := range objects {
		if b, ok := obj.(Bodied); ok {
			dst = append(dst, b.Body())
		}
	}
	return dst
}
