package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Canvas is a double-buffered drawing surface with 2x vertical resolution
// using half-block characters. Drawing happens in logical coordinates and is
// scaled to terminal pixels; Render writes only the cells that changed since
// the previous frame, so a mostly static scene costs almost no bandwidth.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	front          []bool // Pixels drawn this frame: [y * termWidth + x]
	shown          []bool // Pixels currently visible on the terminal

	// textDirty marks terminal cells (not sub-pixels) that were overwritten
	// by text overlays and must be repainted even if their pixels are
	// unchanged. One flag per cell: [row * termWidth + col].
	textDirty []bool
	redrawAll bool

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64 // In sub-pixels
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when the terminal is larger than
	// the max resolution. 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewCanvas creates a canvas for the given terminal dimensions with 1:1
// scaling (logical space equals the pixel grid).
func NewCanvas(width, height int) *Canvas {
	return NewScaledCanvas(width, height, float64(width), float64(height*2))
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to
// terminal pixels. logicalWidth/Height define the coordinate space used by
// sandbox objects; termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	subPixelHeight := termHeight * 2
	return &Canvas{
		termWidth:      termWidth,
		termHeight:     termHeight,
		subPixelHeight: subPixelHeight,
		front:          make([]bool, subPixelHeight*termWidth),
		shown:          make([]bool, subPixelHeight*termWidth),
		textDirty:      make([]bool, termHeight*termWidth),
		redrawAll:      true,
		logicalWidth:   logicalWidth,
		logicalHeight:  logicalHeight,
		scaleX:         float64(termWidth) / logicalWidth,
		scaleY:         float64(subPixelHeight) / logicalHeight,
	}
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size. A real size change discards both buffers and forces a full
// repaint.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.front = make([]bool, subPixelHeight*termWidth)
		c.shown = make([]bool, subPixelHeight*termWidth)
		c.textDirty = make([]bool, termHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
		c.redrawAll = true
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at
// (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets the frame being drawn. The previous frame's screen contents
// are remembered for diffing.
func (c *Canvas) Clear() {
	clear(c.front)
}

// ForceRedraw invalidates the remembered screen contents so the next Render
// repaints every non-empty cell. Callers pair this with a terminal clear.
func (c *Canvas) ForceRedraw() {
	c.redrawAll = true
}

// MarkTextDirty marks n terminal cells starting at (col, row) as overwritten
// by a text overlay, so the next Render repaints them even if their pixels
// did not change. col and row are 1-based canvas coordinates.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	r := row - 1
	if r < 0 || r >= c.termHeight {
		return
	}
	for i := 0; i < n; i++ {
		x := col - 1 + i
		if x < 0 || x >= c.termWidth {
			continue
		}
		c.textDirty[r*c.termWidth+x] = true
	}
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.front[y*c.termWidth+x] = true
	}
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	c.setPixel(px, py)
}

// DrawLine draws a line using Bresenham's algorithm. Coordinates are in
// logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon outline, filling the interior first when
// filled is set.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// fillPolygon fills a polygon using a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{
			X: p.X * c.scaleX,
			Y: p.Y * c.scaleY,
		}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				x := p1.X + t*(p2.X-p1.X)
				intersections = append(intersections, x)
			}
		}

		// Store back in case it grew
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network
// flow. 1400 bytes stays under typical MTU size for smooth SSH transmission.
const maxChunkSize = 1400

// cellRune returns the half-block character for a cell given its two
// sub-pixels, or a space when both are unset.
func cellRune(top, bottom bool) rune {
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	default:
		return ' '
	}
}

// Render writes the frame to w, emitting only cells that differ from what is
// already on the terminal. After a ForceRedraw the screen is assumed cleared,
// so every non-empty cell is emitted and empty ones are skipped.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	// Cursor run tracking: writing a rune advances the terminal cursor one
	// column, so consecutive dirty cells in a row need no repositioning.
	lastRow, lastCol := -1, -1

	for row := 0; row < c.termHeight; row++ {
		topOffset := (row * 2) * c.termWidth
		bottomOffset := (row*2 + 1) * c.termWidth

		for col := 0; col < c.termWidth; col++ {
			cur := cellRune(c.front[topOffset+col], c.front[bottomOffset+col])

			var changed bool
			if c.redrawAll {
				changed = cur != ' '
			} else {
				prev := cellRune(c.shown[topOffset+col], c.shown[bottomOffset+col])
				changed = cur != prev || c.textDirty[row*c.termWidth+col]
			}
			if !changed {
				continue
			}

			if row != lastRow || col != lastCol+1 {
				c.writeCursorMove(col, row)
			}
			c.renderBuf.WriteRune(cur)
			lastRow, lastCol = row, col
		}
	}

	copy(c.shown, c.front)
	clear(c.textDirty)
	c.redrawAll = false

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// writeCursorMove appends an ANSI cursor position sequence for a 0-based
// canvas cell, applying the centering offset.
func (c *Canvas) writeCursorMove(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row+1+c.offsetRow), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col+1+c.offsetCol), 10))
	c.renderBuf.WriteByte('H')
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis. Horizontal borders need
// vertical offset, vertical borders need horizontal offset, corners need both.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return
	}

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	buf.Grow((c.termWidth+2)*2 + c.termHeight*2*12)

	if hasV {
		bar := strings.Repeat("─", c.termWidth)
		if hasH {
			writeAtRaw(&buf, left, top, "┌"+bar+"┐")
			writeAtRaw(&buf, left, bottom, "└"+bar+"┘")
		} else {
			writeAtRaw(&buf, c.offsetCol+1, top, bar)
			writeAtRaw(&buf, c.offsetCol+1, bottom, bar)
		}
	}

	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			// No horizontal borders, side bars span the full canvas height
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			writeAtRaw(&buf, left, row, "│")
			writeAtRaw(&buf, right, row, "│")
		}
	}

	io.WriteString(w, buf.String())
}

// writeAtRaw appends a cursor move to absolute 1-based terminal coordinates
// followed by s.
func writeAtRaw(buf *strings.Builder, col, row int, s string) {
	buf.WriteString("\033[")
	buf.WriteString(strconv.Itoa(row))
	buf.WriteByte(';')
	buf.WriteString(strconv.Itoa(col))
	buf.WriteByte('H')
	buf.WriteString(s)
}

// LogicalWidth returns the logical width (target resolution).
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height (target resolution, in sub-pixels).
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
// This avoids per-frame allocations for polygon rendering.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}
