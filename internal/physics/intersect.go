package physics

// Intersects reports whether two bodies overlap. It is a pure predicate:
// no body state changes, and a body never intersects itself.
//
// Rectangle pairs use open intervals — bodies whose edges exactly touch do
// not intersect. Circle pairs use closed intervals — circles whose rims
// exactly touch do intersect.
func Intersects(a, b *Body) bool {
	if a == b {
		return false
	}

	if a.Shape == ShapeCircle {
		if b.Shape == ShapeCircle {
			rr := a.Radius + b.Radius
			return DistanceSquared(a.CenterX(), a.CenterY(), b.CenterX(), b.CenterY()) <= rr*rr
		}
		return circleIntersectsRect(a, b)
	}
	if b.Shape == ShapeCircle {
		return circleIntersectsRect(b, a)
	}

	if a.Right() <= b.X {
		return false
	}
	if a.Bottom() <= b.Y {
		return false
	}
	if a.X >= b.Right() {
		return false
	}
	if a.Y >= b.Bottom() {
		return false
	}
	return true
}

// circleIntersectsRect tests a circle body against a rectangle body by
// clamping the circle center into the rectangle to find the nearest point.
func circleIntersectsRect(circle, rect *Body) bool {
	cx := circle.CenterX()
	cy := circle.CenterY()
	nx := clamp(cx, rect.X, rect.Right())
	ny := clamp(cy, rect.Y, rect.Bottom())
	return DistanceSquared(cx, cy, nx, ny) <= circle.Radius*circle.Radius
}
