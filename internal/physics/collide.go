package physics

import "math"

// Collide tests a pair of bodies and separates them if they intersect.
// The optional process callback can veto the pair after the intersection
// test; the optional collide callback fires once when the contact is
// accepted, after the bodies' own OnCollide callbacks.
//
// Reports whether a contact was accepted.
func (w *World) Collide(a, b *Body, collide ContactFunc, process ProcessFunc) bool {
	if w.separate(a, b, process, false) {
		if collide != nil {
			collide(a, b)
		}
		return true
	}
	return false
}

// Overlap is the detection-only counterpart of Collide: contacts are
// reported through the callbacks and the bodies' touching state, but
// positions and velocities are never changed.
func (w *World) Overlap(a, b *Body, overlap ContactFunc, process ProcessFunc) bool {
	if w.separate(a, b, process, true) {
		if overlap != nil {
			overlap(a, b)
		}
		return true
	}
	return false
}

// separate runs the full pair pipeline: gate checks, intersection test,
// process veto, shape dispatch, axis-ordered separation and callback
// emission.
func (w *World) separate(a, b *Body, process ProcessFunc, overlapOnly bool) bool {
	if !a.Enable || !b.Enable || a.CheckCollision.None || b.CheckCollision.None || !Intersects(a, b) {
		return false
	}

	if process != nil && !process(a, b) {
		return false
	}

	if a.Shape == ShapeCircle && b.Shape == ShapeCircle {
		return w.SeparateCircle(a, b, overlapOnly)
	}

	// A circle whose center sits diagonally off a rectangle needs the
	// circular response; side contacts behave like rectangle pairs.
	if a.Shape == ShapeCircle || b.Shape == ShapeCircle {
		circle, rect := a, b
		if b.Shape == ShapeCircle {
			circle, rect = b, a
		}
		cx, cy := circle.CenterX(), circle.CenterY()
		if (cy < rect.Y || cy > rect.Bottom()) && (cx < rect.X || cx > rect.Right()) {
			return w.SeparateCircle(a, b, overlapOnly)
		}
	}

	var result bool
	if w.forceXFirst(a) {
		result = w.SeparateX(a, b, overlapOnly)
		if Intersects(a, b) {
			result = w.SeparateY(a, b, overlapOnly) || result
		}
	} else {
		result = w.SeparateY(a, b, overlapOnly)
		if Intersects(a, b) {
			result = w.SeparateX(a, b, overlapOnly) || result
		}
	}

	if result {
		if overlapOnly {
			if a.OnOverlap != nil {
				a.OnOverlap(a, b)
			}
			if b.OnOverlap != nil {
				b.OnOverlap(b, a)
			}
		} else {
			if a.OnCollide != nil {
				a.OnCollide(a, b)
			}
			if b.OnCollide != nil {
				b.OnCollide(b, a)
			}
		}
	}
	return result
}

// forceXFirst decides the axis resolution order for a rectangle pair.
// The axis carrying the dominant combined gravity resolves first, so a body
// pressed onto a surface settles before the sliding axis is corrected.
func (w *World) forceXFirst(a *Body) bool {
	return w.ForceX || math.Abs(w.GravityY+a.GravityY) < math.Abs(w.GravityX+a.GravityX)
}
