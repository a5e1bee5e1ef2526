package physics

import "math"

// SeparateCircle resolves a contact where at least one body is a circle.
// Velocities are rotated into the collision normal frame, exchanged with the
// one-dimensional elastic formula, rotated back and scaled by each body's
// bounce; positions are then pushed apart along the normal by the penetration
// depth, split evenly when both bodies are movable.
//
// Callbacks fire inside this path: OnOverlap on the bail branch, OnCollide
// after a full separation.
func (w *World) SeparateCircle(a, b *Body, overlapOnly bool) bool {
	// Record the axis overlaps so Touching and the Overlap scratch fields
	// stay meaningful for circle pairs.
	w.overlapX(a, b, true)
	w.overlapY(a, b, true)

	angle := collisionAngle(a, b)

	var overlap float64
	if a.Shape == ShapeCircle && b.Shape == ShapeCircle {
		overlap = a.Radius + b.Radius - Distance(a.CenterX(), a.CenterY(), b.CenterX(), b.CenterY())
	} else {
		circle, rect := a, b
		if b.Shape == ShapeCircle {
			circle, rect = b, a
		}
		nx := clamp(circle.CenterX(), rect.X, rect.Right())
		ny := clamp(circle.CenterY(), rect.Y, rect.Bottom())
		overlap = circle.Radius - Distance(circle.CenterX(), circle.CenterY(), nx, ny)
	}

	if overlapOnly || overlap == 0 ||
		(a.Immovable && b.Immovable) ||
		a.CustomSeparateX || b.CustomSeparateX || a.CustomSeparateY || b.CustomSeparateY {
		if overlap != 0 {
			if a.OnOverlap != nil {
				a.OnOverlap(a, b)
			}
			if b.OnOverlap != nil {
				b.OnOverlap(b, a)
			}
		}
		return overlap != 0
	}

	sin, cos := math.Sincos(angle)

	// Normal and tangent components of each velocity.
	v1n := a.VX*cos + a.VY*sin
	v1t := a.VX*sin - a.VY*cos
	v2n := b.VX*cos + b.VY*sin
	v2t := b.VX*sin - b.VY*cos

	m1, m2 := a.mass, b.mass
	nv1 := ((m1-m2)*v1n + 2*m2*v2n) / (m1 + m2)
	nv2 := (2*m1*v1n + (m2-m1)*v2n) / (m1 + m2)

	if !a.Immovable {
		a.VX = (nv1*cos - v1t*sin) * a.BounceX
		a.VY = (v1t*cos + nv1*sin) * a.BounceY
	}
	if !b.Immovable {
		b.VX = (nv2*cos - v2t*sin) * b.BounceX
		b.VY = (v2t*cos + nv2*sin) * b.BounceY
	}

	// A collision angle nearly perpendicular to the combined velocity (a
	// tangential hit) can leave the exchanged directions still implying
	// mutual approach on an axis. Negate the offending component in that
	// case.
	if math.Abs(angle) < math.Pi/2 {
		switch {
		case a.VX > 0 && !a.Immovable && b.VX < a.VX:
			b.VX = -b.VX
		case b.VX < 0 && !b.Immovable && a.VX > b.VX:
			a.VX = -a.VX
		case a.VY > 0 && !a.Immovable && b.VY < a.VY:
			b.VY = -b.VY
		case b.VY < 0 && !b.Immovable && a.VY > b.VY:
			a.VY = -a.VY
		}
	} else {
		switch {
		case a.VX < 0 && !a.Immovable && b.VX > a.VX:
			b.VX = -b.VX
		case b.VX > 0 && !b.Immovable && a.VX < b.VX:
			a.VX = -a.VX
		case a.VY < 0 && !a.Immovable && b.VY > a.VY:
			b.VY = -b.VY
		case b.VY > 0 && !b.Immovable && a.VY < b.VY:
			a.VY = -a.VY
		}
	}

	share := overlap
	if !a.Immovable && !b.Immovable {
		share *= 0.5
	}
	if !a.Immovable {
		a.X -= share * cos
		a.Y -= share * sin
	}
	if !b.Immovable {
		b.X += share * cos
		b.Y += share * sin
	}

	if a.OnCollide != nil {
		a.OnCollide(a, b)
	}
	if b.OnCollide != nil {
		b.OnCollide(b, a)
	}
	return true
}

// collisionAngle returns the direction of the collision normal from a to b.
// For a circle against a rectangle the rectangle is represented by the point
// on it nearest the circle center, which keeps the normal sensible at
// corners.
func collisionAngle(a, b *Body) float64 {
	ax, ay := a.CenterX(), a.CenterY()
	bx, by := b.CenterX(), b.CenterY()

	if a.Shape == ShapeCircle && b.Shape == ShapeRectangle {
		bx = clamp(ax, b.X, b.Right())
		by = clamp(ay, b.Y, b.Bottom())
	} else if b.Shape == ShapeCircle && a.Shape == ShapeRectangle {
		ax = clamp(bx, a.X, a.Right())
		ay = clamp(by, a.Y, a.Bottom())
	}

	return math.Atan2(by-ay, bx-ax)
}
