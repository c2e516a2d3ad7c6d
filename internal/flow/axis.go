package flow

import (
	"math"

	"github.com/flowkit/retained/internal/geom"
	"github.com/flowkit/retained/internal/host"
	"github.com/flowkit/retained/internal/props"
)

// flexEntry tracks one flex item's state through the grow/shrink passes.
type flexEntry struct {
	index              int
	grow, shrink       float64
	baseSize           float64
	minMain, maxMain   float64
	hasMin, hasMax     bool
	target             float64
	active             bool
}

// Layout runs the shared vertical/horizontal flex algorithm over items and
// writes each item's final main-axis size, cross-axis size untouched, and
// (x, y) position. vertical selects which geometry axis is "main": true
// maps main to height/y and cross to width/x; false mirrors it for a
// horizontal container, sharing one implementation for both directions.
//
// origin is the container's content-box origin (after padding and border);
// contentMain/contentCross are the content-box size along each axis.
func Layout(vertical bool, origin geom.Point, contentMain, contentCross, gap float64, justify props.Justify, items []Item) {
	axis := axisFuncs(vertical)

	fixedTotal := 0.0
	var entries []flexEntry
	for i, it := range items {
		grow := props.FlexGrow(it.Props)
		shrink := props.FlexShrink(it.Props)
		if grow <= 0 && shrink <= 0 {
			fixedTotal += axis.mainSize(it.Node) + axis.marginMainStart(it.Margin) + axis.marginMainEnd(it.Margin)
			continue
		}
		baseSize := axis.mainSize(it.Node)
		if basis, ok := props.FlexBasis(it.Props); ok {
			if n, ok := props.AsNumber(basis); ok {
				baseSize = n
			}
		}
		min, max, hasMin, hasMax := props.MinMax(it.Props, axis.prefix, contentMain)
		entries = append(entries, flexEntry{
			index: i, grow: grow, shrink: shrink, baseSize: baseSize,
			minMain: min, maxMain: max, hasMin: hasMin, hasMax: hasMax,
			target: baseSize, active: grow > 0,
		})
	}

	n := len(items)
	totalGaps := gap * math.Max(0, float64(n-1))

	flexSum := 0.0
	for _, e := range entries {
		m := items[e.index].Margin
		flexSum += e.baseSize + axis.marginMainStart(m) + axis.marginMainEnd(m)
	}
	available := contentMain - fixedTotal - totalGaps - flexSum

	// A container with no main-axis content space yet (such as an unsized
	// fit-content container before it hugs its children) does not shrink
	// its items.
	if available > 0 {
		growEntries(entries, available)
	} else if available < 0 && contentMain > 0 {
		shrinkEntries(entries, available)
	}

	for _, e := range entries {
		axis.setMainSize(items[e.index].Node, e.target)
	}

	actualTotal := totalGaps
	for _, it := range items {
		actualTotal += axis.mainSize(it.Node) + axis.marginMainStart(it.Margin) + axis.marginMainEnd(it.Margin)
	}
	remaining := math.Max(0, contentMain-actualTotal)

	var startOffset, spaceBetween, spaceAround float64
	switch justify {
	case props.JustifyCenter:
		startOffset = remaining / 2
	case props.JustifyEnd:
		startOffset = remaining
	case props.JustifySpaceBetween:
		if n > 1 {
			spaceBetween = remaining / float64(n-1)
		}
	case props.JustifySpaceAround:
		if n > 0 {
			spaceAround = remaining / float64(n)
		}
	}

	cursor := startOffset
	if justify == props.JustifySpaceAround {
		cursor += spaceAround / 2
	}

	mainOrigin, crossOrigin := axis.originComponents(origin)
	for i, it := range items {
		cursor += axis.marginMainStart(it.Margin)
		axis.setMainPos(it.Node, mainOrigin+cursor)

		crossPos := crossPosition(it.AlignSelf, contentCross, axis.crossSize(it.Node), it.Margin, axis)
		axis.setCrossPos(it.Node, crossOrigin+crossPos)

		cursor += axis.mainSize(it.Node) + axis.marginMainEnd(it.Margin)
		if i < n-1 {
			cursor += gap + spaceBetween + spaceAround
		}
	}
}

func crossPosition(align props.Align, contentCross, itemCrossSize float64, margin geom.Edges, axis axisSet) float64 {
	switch align {
	case props.AlignCenter:
		return (contentCross - itemCrossSize) / 2
	case props.AlignEnd:
		return contentCross - itemCrossSize - axis.marginCrossEnd(margin)
	default:
		return axis.marginCrossStart(margin)
	}
}

// growEntries distributes available positive space to flex items with
// flexGrow > 0, deactivating any item whose clamp binds so the remaining
// space is redistributed among the still-active items.
func growEntries(entries []flexEntry, available float64) {
	remainingSpace := available
	for {
		remainingGrow := 0.0
		for _, e := range entries {
			if e.active {
				remainingGrow += e.grow
			}
		}
		if remainingSpace <= 0.1 || remainingGrow <= 0 {
			return
		}
		applied := 0.0
		for i := range entries {
			e := &entries[i]
			if !e.active {
				continue
			}
			delta := (e.grow / remainingGrow) * remainingSpace
			tentative := e.target + delta
			clamped := props.Clamp(tentative, e.minMain, e.maxMain, e.hasMin, e.hasMax)
			actual := clamped - e.target
			e.target = clamped
			if clamped != tentative {
				e.active = false
			}
			applied += actual
		}
		remainingSpace -= applied
		if applied < 0.01 {
			return
		}
	}
}

// shrinkEntries applies a single proportional-reduction pass when the
// container is over capacity.
func shrinkEntries(entries []flexEntry, available float64) {
	sumShrinkBase := 0.0
	for _, e := range entries {
		if e.shrink > 0 {
			sumShrinkBase += e.shrink * e.baseSize
		}
	}
	if sumShrinkBase <= 0 {
		return
	}
	deficit := math.Abs(available)
	for i := range entries {
		e := &entries[i]
		if e.shrink <= 0 {
			continue
		}
		reduction := deficit * (e.shrink * e.baseSize) / sumShrinkBase
		target := e.baseSize - reduction
		if target < 0 {
			target = 0
		}
		if e.hasMin && target < e.minMain {
			target = e.minMain
		}
		e.target = target
	}
}

// axisSet bundles the direction-dependent accessors so the core algorithm
// above is written once and mirrored by vertical/horizontal at call time.
type axisSet struct {
	prefix           string
	mainSize         func(host.Node) float64
	setMainSize      func(host.Node, float64)
	crossSize        func(host.Node) float64
	setMainPos       func(host.Node, float64)
	setCrossPos      func(host.Node, float64)
	marginMainStart  func(geom.Edges) float64
	marginMainEnd    func(geom.Edges) float64
	marginCrossStart func(geom.Edges) float64
	marginCrossEnd   func(geom.Edges) float64
	originComponents func(geom.Point) (main, cross float64)
}

func axisFuncs(vertical bool) axisSet {
	if vertical {
		return axisSet{
			prefix:           "Height",
			mainSize:         host.Node.Height,
			setMainSize:      host.Node.SetHeight,
			crossSize:        host.Node.Width,
			setMainPos:       host.Node.SetY,
			setCrossPos:      host.Node.SetX,
			marginMainStart:  func(e geom.Edges) float64 { return e.Top },
			marginMainEnd:    func(e geom.Edges) float64 { return e.Bottom },
			marginCrossStart: func(e geom.Edges) float64 { return e.Left },
			marginCrossEnd:   func(e geom.Edges) float64 { return e.Right },
			originComponents: func(p geom.Point) (float64, float64) { return p.Y, p.X },
		}
	}
	return axisSet{
		prefix:           "Width",
		mainSize:         host.Node.Width,
		setMainSize:      host.Node.SetWidth,
		crossSize:        host.Node.Height,
		setMainPos:       host.Node.SetX,
		setCrossPos:      host.Node.SetY,
		marginMainStart:  func(e geom.Edges) float64 { return e.Left },
		marginMainEnd:    func(e geom.Edges) float64 { return e.Right },
		marginCrossStart: func(e geom.Edges) float64 { return e.Top },
		marginCrossEnd:   func(e geom.Edges) float64 { return e.Bottom },
		originComponents: func(p geom.Point) (float64, float64) { return p.X, p.Y },
	}
}
