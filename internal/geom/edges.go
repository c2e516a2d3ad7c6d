package geom

// Edges represents spacing (margin, padding, or border width) on each of
// the four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with a vertical (top/bottom) value and a
// horizontal (left/right) value.
func EdgeSymmetric(v, h float64) Edges {
	return Edges{Top: v, Bottom: v, Left: h, Right: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(top, right, bottom, left float64) Edges {
	return Edges{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Horizontal returns the sum of the left and right edges.
func (e Edges) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns the sum of the top and bottom edges.
func (e Edges) Vertical() float64 { return e.Top + e.Bottom }

// IsZero returns true if all four edges are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

// Add returns the per-side sum of e and other, used to combine padding
// and border into the single inset a content box is computed from.
func (e Edges) Add(other Edges) Edges {
	return Edges{
		Top:    e.Top + other.Top,
		Right:  e.Right + other.Right,
		Bottom: e.Bottom + other.Bottom,
		Left:   e.Left + other.Left,
	}
}
