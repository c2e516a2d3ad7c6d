package flow

import (
	"math"

	"github.com/flowkit/retained/internal/geom"
	"github.com/flowkit/retained/internal/props"
)

// FitVertical computes the new (width, height) for a fitContent vertical
// container hugging its children.
func FitVertical(padding, border geom.Edges, gap float64, children []Item) (width, height float64) {
	n := len(children)
	sumHeight := 0.0
	maxWidth := 0.0
	for _, c := range children {
		sumHeight += c.Node.Height() + c.Margin.Vertical()
		if w := c.Node.Width() + c.Margin.Horizontal(); w > maxWidth {
			maxWidth = w
		}
	}
	height = padding.Vertical() + border.Vertical() + sumHeight + gap*math.Max(0, float64(n-1))
	width = padding.Horizontal() + border.Horizontal() + maxWidth
	return width, height
}

// FitHorizontal is the axis-swapped mirror of FitVertical.
func FitHorizontal(padding, border geom.Edges, gap float64, children []Item) (width, height float64) {
	n := len(children)
	sumWidth := 0.0
	maxHeight := 0.0
	for _, c := range children {
		sumWidth += c.Node.Width() + c.Margin.Horizontal()
		if h := c.Node.Height() + c.Margin.Vertical(); h > maxHeight {
			maxHeight = h
		}
	}
	width = padding.Horizontal() + border.Horizontal() + sumWidth + gap*math.Max(0, float64(n-1))
	height = padding.Vertical() + border.Vertical() + maxHeight
	return width, height
}

// FitGrid computes the new (width, height) for a fitContent grid container.
func FitGrid(padding, border geom.Edges, gap float64, columns int, items []GridItem) (width, height float64) {
	if columns < 1 {
		columns = 1
	}
	n := len(items)
	if n == 0 {
		return padding.Horizontal() + border.Horizontal(), padding.Vertical() + border.Vertical()
	}
	maxCellWidth, maxCellHeight := 0.0, 0.0
	for _, it := range items {
		if w := it.Node.Width() + it.Margin.Horizontal(); w > maxCellWidth {
			maxCellWidth = w
		}
		if h := it.Node.Height() + it.Margin.Vertical(); h > maxCellHeight {
			maxCellHeight = h
		}
	}
	rows := int(math.Ceil(float64(n) / float64(columns)))
	width = padding.Horizontal() + border.Horizontal() + float64(columns)*maxCellWidth + float64(columns-1)*gap
	height = padding.Vertical() + border.Vertical() + float64(rows)*maxCellHeight + float64(rows-1)*gap
	return width, height
}

// hasPercentSizing reports whether a child's props request percentage
// width, height, or flexBasis.
func hasPercentSizing(p map[string]any) bool {
	if _, ok := props.AsPercent(p["width"]); ok {
		return true
	}
	if _, ok := props.AsPercent(p["height"]); ok {
		return true
	}
	if _, ok := props.AsPercent(p["flexBasis"]); ok {
		return true
	}
	if _, ok := p["percentWidth"]; ok {
		return true
	}
	if _, ok := p["percentHeight"]; ok {
		return true
	}
	return false
}

// AnyPercentSized reports whether any child requests percentage sizing —
// the tree driver uses this to decide whether a fit-content container
// needs to re-resolve percentages and re-run the flow layouter after it
// resizes itself to its children.
func AnyPercentSized(children []Item) bool {
	for _, c := range children {
		if hasPercentSizing(c.Props) {
			return true
		}
	}
	return false
}
