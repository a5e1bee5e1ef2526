package draw

import "math"

// FillRect fills an axis-aligned rectangle given in logical coordinates.
func (c *Canvas) FillRect(x, y, w, h float64) {
	x1 := int(math.Round(x * c.scaleX))
	y1 := int(math.Round(y * c.scaleY))
	x2 := int(math.Round((x + w) * c.scaleX))
	y2 := int(math.Round((y + h) * c.scaleY))

	for py := y1; py < y2; py++ {
		for px := x1; px < x2; px++ {
			c.setPixel(px, py)
		}
	}
}

// DrawRect draws the outline of an axis-aligned rectangle given in logical
// coordinates.
func (c *Canvas) DrawRect(x, y, w, h float64) {
	c.DrawLine(Point{X: x, Y: y}, Point{X: x + w, Y: y})
	c.DrawLine(Point{X: x + w, Y: y}, Point{X: x + w, Y: y + h})
	c.DrawLine(Point{X: x + w, Y: y + h}, Point{X: x, Y: y + h})
	c.DrawLine(Point{X: x, Y: y + h}, Point{X: x, Y: y})
}

// FillCircle fills a circle centered at (cx, cy) in logical coordinates.
// The fill works row by row in pixel space so anisotropic scaling still
// produces a round shape on screen.
func (c *Canvas) FillCircle(cx, cy, r float64) {
	pcx := cx * c.scaleX
	pcy := cy * c.scaleY
	prx := r * c.scaleX
	pry := r * c.scaleY
	if prx <= 0 || pry <= 0 {
		return
	}

	y1 := int(math.Floor(pcy - pry))
	y2 := int(math.Ceil(pcy + pry))
	for py := y1; py <= y2; py++ {
		dy := (float64(py) + 0.5 - pcy) / pry
		if dy*dy > 1 {
			continue
		}
		half := prx * math.Sqrt(1-dy*dy)
		xStart := int(math.Ceil(pcx - half))
		xEnd := int(math.Floor(pcx + half))
		for px := xStart; px <= xEnd; px++ {
			c.setPixel(px, py)
		}
	}
}

// DrawCircle draws the outline of a circle centered at (cx, cy) in logical
// coordinates, approximated by line segments.
func (c *Canvas) DrawCircle(cx, cy, r float64) {
	// Segment count grows with the on-screen size so large circles stay
	// smooth and small ones stay cheap.
	segments := int(2 * math.Pi * r * c.scaleX)
	if segments < 8 {
		segments = 8
	}

	prev := Point{X: cx + r, Y: cy}
	for i := 1; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		next := Point{
			X: cx + math.Cos(angle)*r,
			Y: cy + math.Sin(angle)*r,
		}
		c.DrawLine(prev, next)
		prev = next
	}
}
