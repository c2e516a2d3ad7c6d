package props

import "github.com/flowkit/retained/internal/host"

// ResolveSize applies non-flow sizing: an explicit numeric width/height
// wins, then a percentage (either a "N%" string value or the standalone
// percentWidth/percentHeight property) resolved against the parent's
// content box, then a min/max clamp. A node with neither explicit nor
// percentage sizing keeps its current size untouched (text/image
// intrinsic sizing is out of scope).
func ResolveSize(n host.Node, p map[string]any, parentContentW, parentContentH float64) {
	resolveAxis(p, "width", "percentWidth", parentContentW, n.SetWidth)
	resolveAxis(p, "height", "percentHeight", parentContentH, n.SetHeight)
	clampAxis(n.Width, n.SetWidth, p, "Width", parentContentW)
	clampAxis(n.Height, n.SetHeight, p, "Height", parentContentH)
}

func resolveAxis(p map[string]any, key, percentKey string, available float64, set func(float64)) {
	if v, ok := p[key]; ok {
		if num, ok := AsNumber(v); ok {
			set(num)
			return
		}
		if pct, ok := AsPercent(v); ok {
			set(ResolvePercent(pct, available))
			return
		}
	}
	if v, ok := p[percentKey]; ok {
		if num, ok := AsNumber(v); ok {
			set(ResolvePercent(num, available))
		}
	}
}

func clampAxis(get func() float64, set func(float64), p map[string]any, prefix string, available float64) {
	min, max, hasMin, hasMax := MinMax(p, prefix, available)
	if !hasMin && !hasMax {
		return
	}
	set(Clamp(get(), min, max, hasMin, hasMax))
}

// ResolveFlexBasis resolves a percentage flexBasis against the parent's
// content box on the parent's main axis, writing it straight into the
// child's main-axis size so the flow layouter sees it as the child's
// current main-axis size.
func ResolveFlexBasis(c host.Node, cp map[string]any, parentVertical bool, parentContentW, parentContentH float64) {
	basis, ok := cp["flexBasis"]
	if !ok {
		return
	}
	pct, ok := AsPercent(basis)
	if !ok {
		return
	}
	if parentVertical {
		c.SetHeight(ResolvePercent(pct, parentContentH))
	} else {
		c.SetWidth(ResolvePercent(pct, parentContentW))
	}
}
