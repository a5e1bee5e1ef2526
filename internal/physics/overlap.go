package physics

// overlapX computes the signed x-axis penetration between two intersecting
// bodies and updates their touching flags. Positive means a penetrated b
// from the left, negative from the right.
//
// The amount is forced to zero when the penetration exceeds what this
// step's combined motion (plus the world overlap bias) could have produced —
// a pre-existing overlap, not a fresh collision — or when either body's
// facing collision edge is disabled. Equal per-step deltas mean neither body
// moved relative to the other: both are marked embedded so resting stacks
// don't jitter forever.
//
// The result is written to both bodies' OverlapX scratch field.
func (w *World) overlapX(a, b *Body, overlapOnly bool) float64 {
	var overlap float64
	maxOverlap := a.DeltaAbsX() + b.DeltaAbsX() + w.OverlapBias

	da, db := a.DeltaX(), b.DeltaX()
	switch {
	case da == db:
		a.Embedded = true
		b.Embedded = true

	case da > db:
		// a advancing into b from the left.
		overlap = a.Right() - b.X
		if (overlap > maxOverlap && !overlapOnly) || !a.CheckCollision.Right || !b.CheckCollision.Left {
			overlap = 0
		} else {
			a.Touching.None = false
			a.Touching.Right = true
			b.Touching.None = false
			b.Touching.Left = true
		}

	default:
		// a advancing into b from the right; overlap is negative.
		overlap = a.X - b.Right()
		if (-overlap > maxOverlap && !overlapOnly) || !a.CheckCollision.Left || !b.CheckCollision.Right {
			overlap = 0
		} else {
			a.Touching.None = false
			a.Touching.Left = true
			b.Touching.None = false
			b.Touching.Right = true
		}
	}

	a.OverlapX = overlap
	b.OverlapX = overlap
	return overlap
}

// overlapY is the y-axis counterpart of overlapX. Positive means a
// penetrated b from above.
func (w *World) overlapY(a, b *Body, overlapOnly bool) float64 {
	var overlap float64
	maxOverlap := a.DeltaAbsY() + b.DeltaAbsY() + w.OverlapBias

	da, db := a.DeltaY(), b.DeltaY()
	switch {
	case da == db:
		a.Embedded = true
		b.Embedded = true

	case da > db:
		// a advancing into b from above.
		overlap = a.Bottom() - b.Y
		if (overlap > maxOverlap && !overlapOnly) || !a.CheckCollision.Down || !b.CheckCollision.Up {
			overlap = 0
		} else {
			a.Touching.None = false
			a.Touching.Down = true
			b.Touching.None = false
			b.Touching.Up = true
		}

	default:
		// a advancing into b from below; overlap is negative.
		overlap = a.Y - b.Bottom()
		if (-overlap > maxOverlap && !overlapOnly) || !a.CheckCollision.Up || !b.CheckCollision.Down {
			overlap = 0
		} else {
			a.Touching.None = false
			a.Touching.Up = true
			b.Touching.None = false
			b.Touching.Down = true
		}
	}

	a.OverlapY = overlap
	b.OverlapY = overlap
	return overlap
}
