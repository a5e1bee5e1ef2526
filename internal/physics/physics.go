// Package physics implements narrow-phase collision detection and
// separation for axis-aligned rectangle and circle bodies.
//
// The engine answers three questions for a candidate pair: do the bodies
// overlap, how should the overlap be resolved (position and velocity), and
// who should be notified. Candidate pairs come from outside — either a
// brute-force scan or a broad phase such as SpatialGrid. One pair test is a
// bounded O(1) computation with no blocking or allocation in the hot path.
//
// Contact state (touching flags, embedded flag, overlap scratch) lives on
// the bodies and accumulates over one simulation step. The engine assumes a
// single exclusive writer per step: run all pair tests for a step to
// completion before reading the final contact state, and do not run
// separation calls concurrently over overlapping body sets.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// clamp limits v to the inclusive range [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// signOf returns 1 for positive values and -1 otherwise.
func signOf(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}
