package physics

import "math"

// sqrtTransfer returns the speed transferred onto a body of mass mOwn by a
// body of mass mOther moving at v, keeping v's sign. The square-root argument
// is clamped at zero so accumulated float error can never reach Sqrt as a
// negative value.
func sqrtTransfer(v, mOther, mOwn float64) float64 {
	arg := v * v * mOther / mOwn
	if arg < 0 {
		arg = 0
	}
	return math.Sqrt(arg) * signOf(v)
}

// SeparateX resolves the x-axis component of a rectangle contact. When both
// bodies are movable the positional correction is split evenly and momentum is
// exchanged through a mass-weighted square-root transfer; a single movable
// body absorbs the full correction and takes the other body's velocity,
// scaled by its own bounce.
//
// Reports whether the pair produced a contact on this axis.
func (w *World) SeparateX(a, b *Body, overlapOnly bool) bool {
	overlap := w.overlapX(a, b, overlapOnly)

	if overlapOnly || overlap == 0 || (a.Immovable && b.Immovable) || a.CustomSeparateX || b.CustomSeparateX {
		// An embedded pair is still a contact even though its overlap
		// amount is forced to zero.
		return overlap != 0 || (a.Embedded && b.Embedded)
	}

	v1, v2 := a.VX, b.VX

	if !a.Immovable && !b.Immovable {
		overlap *= 0.5
		a.X -= overlap
		b.X += overlap

		nv1 := sqrtTransfer(v2, b.mass, a.mass)
		nv2 := sqrtTransfer(v1, a.mass, b.mass)
		avg := (nv1 + nv2) * 0.5
		nv1 -= avg
		nv2 -= avg

		a.VX = avg + nv1*a.BounceX
		b.VX = avg + nv2*b.BounceX
	} else if !a.Immovable {
		a.X -= overlap
		a.VX = v2 - v1*a.BounceX

		// Ride vertically moving platforms.
		if b.Moves {
			a.Y += (b.Y - b.PrevY) * b.FrictionY
		}
	} else {
		b.X += overlap
		b.VX = v1 - v2*b.BounceX

		if a.Moves {
			b.Y += (a.Y - a.PrevY) * a.FrictionY
		}
	}

	return true
}

// SeparateY is the y-axis counterpart of SeparateX.
func (w *World) SeparateY(a, b *Body, overlapOnly bool) bool {
	overlap := w.overlapY(a, b, overlapOnly)

	if overlapOnly || overlap == 0 || (a.Immovable && b.Immovable) || a.CustomSeparateY || b.CustomSeparateY {
		return overlap != 0 || (a.Embedded && b.Embedded)
	}

	v1, v2 := a.VY, b.VY

	if !a.Immovable && !b.Immovable {
		overlap *= 0.5
		a.Y -= overlap
		b.Y += overlap

		nv1 := sqrtTransfer(v2, b.mass, a.mass)
		nv2 := sqrtTransfer(v1, a.mass, b.mass)
		avg := (nv1 + nv2) * 0.5
		nv1 -= avg
		nv2 -= avg

		a.VY = avg + nv1*a.BounceY
		b.VY = avg + nv2*b.BounceY
	} else if !a.Immovable {
		a.Y -= overlap
		a.VY = v2 - v1*a.BounceY

		// Ride horizontally moving platforms.
		if b.Moves {
			a.X += (b.X - b.PrevX) * b.FrictionX
		}
	} else {
		b.Y += overlap
		b.VY = v1 - v2*b.BounceY

		if a.Moves {
			b.X += (a.X - a.PrevX) * a.FrictionX
		}
	}

	return true
}
