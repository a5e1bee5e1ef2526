package physics

// integrate updates the body's linear and angular velocities for one step.
// Each linear axis gains gravity (world plus per-body) when allowed, then
// either acceleration or drag — acceleration wins when both are set — and is
// finally clamped to the axis speed cap. Angular velocity follows the same
// rule without the gravity term.
func (w *World) integrate(b *Body, dt float64) {
	var gx, gy float64
	if b.AllowGravity {
		gx = w.GravityX + b.GravityX
		gy = w.GravityY + b.GravityY
	}

	b.VX = computeVelocity(b.VX, b.AX, b.DragX, b.MaxVX, gx, dt, b.AllowDrag)
	b.VY = computeVelocity(b.VY, b.AY, b.DragY, b.MaxVY, gy, dt, b.AllowDrag)
	b.AngularVel = computeVelocity(b.AngularVel, b.AngularAccel, b.AngularDrag, b.MaxAngular, 0, dt, b.AllowDrag)
}

// computeVelocity advances one velocity component by dt. Drag decays the
// velocity toward zero without crossing it: when the decrement would flip
// the sign, the velocity clamps to exactly zero. A non-positive max leaves
// the component uncapped.
func computeVelocity(vel, accel, drag, max, gravity, dt float64, allowDrag bool) float64 {
	vel += gravity * dt

	if accel != 0 {
		vel += accel * dt
	} else if drag != 0 && allowDrag {
		step := drag * dt
		switch {
		case vel-step > 0:
			vel -= step
		case vel+step < 0:
			vel += step
		default:
			vel = 0
		}
	}

	if max > 0 {
		vel = clamp(vel, -max, max)
	}
	return vel
}
