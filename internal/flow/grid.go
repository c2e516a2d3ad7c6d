package flow

import (
	"math"

	"github.com/flowkit/retained/internal/geom"
	"github.com/flowkit/retained/internal/props"
)

// GridItem is one cell as seen by the grid layouter: the in-flow Item
// (which carries the resolved alignSelf) plus its resolved justifySelf.
type GridItem struct {
	Item
	JustifySelf props.Align
}

// Grid implements the fixed-column-count grid layouter: uniform cell
// sizing from the widest/tallest child, justify-content redistribution
// of leftover row width, and per-cell self-alignment.
func Grid(origin geom.Point, contentWidth float64, columns int, gap float64, justify props.Justify, items []GridItem) {
	if columns < 1 {
		columns = 1
	}
	n := len(items)
	if n == 0 {
		return
	}

	maxCellWidth, maxCellHeight := 0.0, 0.0
	for _, it := range items {
		outerW := it.Node.Width() + it.Margin.Horizontal()
		outerH := it.Node.Height() + it.Margin.Vertical()
		if outerW > maxCellWidth {
			maxCellWidth = outerW
		}
		if outerH > maxCellHeight {
			maxCellHeight = outerH
		}
	}

	extraWidth := math.Max(0, contentWidth-float64(columns)*maxCellWidth-float64(columns-1)*gap)

	var startOffsetX, extraColumnGap float64
	switch justify {
	case props.JustifyCenter:
		startOffsetX = extraWidth / 2
	case props.JustifyEnd:
		startOffsetX = extraWidth
	case props.JustifySpaceBetween:
		if columns > 1 {
			extraColumnGap = extraWidth / float64(columns-1)
		}
	case props.JustifySpaceAround:
		startOffsetX = extraWidth / float64(columns) / 2
		extraColumnGap = extraWidth / float64(columns)
	}

	for i, it := range items {
		row := i / columns
		col := i % columns
		cellX := origin.X + startOffsetX + float64(col)*(maxCellWidth+gap+extraColumnGap)
		cellY := origin.Y + float64(row)*(maxCellHeight+gap)

		placeInCell(it, cellX, cellY, maxCellWidth, maxCellHeight)
	}
}

func placeInCell(it GridItem, cellX, cellY, cellW, cellH float64) {
	outerW := it.Node.Width() + it.Margin.Horizontal()
	var x float64
	switch it.JustifySelf {
	case props.AlignCenter:
		x = cellX + (cellW-outerW)/2 + it.Margin.Left
	case props.AlignEnd:
		x = cellX + cellW - it.Node.Width() - it.Margin.Right
	default:
		x = cellX + it.Margin.Left
	}

	outerH := it.Node.Height() + it.Margin.Vertical()
	var y float64
	switch it.AlignSelf {
	case props.AlignCenter:
		y = cellY + (cellH-outerH)/2 + it.Margin.Top
	case props.AlignEnd:
		y = cellY + cellH - it.Node.Height() - it.Margin.Bottom
	default:
		y = cellY + it.Margin.Top
	}

	it.Node.SetX(x)
	it.Node.SetY(y)
}
