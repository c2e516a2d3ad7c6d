// Package geom provides the rectangle, edge-spacing, and point primitives
// shared by every layout algorithm. Coordinates are float64: the engine's
// host contract exposes continuous geometry, not a quantized grid, and
// several algorithms (percentage resolution, flex grow/shrink, anchor
// offsets) depend on fractional precision.
package geom

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y-coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Inset returns a new Rect shrunk by edges on each side. Every content-box
// computation in the driver, the flow containers, and the absolute
// positioner goes through this instead of re-deriving the same
// width-minus-edges arithmetic by hand at each call site.
func (r Rect) Inset(edges Edges) Rect {
	return Rect{
		X:      r.X + edges.Left,
		Y:      r.Y + edges.Top,
		Width:  r.Width - edges.Horizontal(),
		Height: r.Height - edges.Vertical(),
	}
}
