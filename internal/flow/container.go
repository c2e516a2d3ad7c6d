package flow

import (
	"github.com/flowkit/retained/internal/geom"
	"github.com/flowkit/retained/internal/host"
	"github.com/flowkit/retained/internal/props"
)

// Entry is one in-flow child as seen by a container's driving code: the
// child's host node, its cascaded (unresolved) property map, and its
// defaulted Properties view. Both the tree driver and the debug step
// generator build these and hand them to RunContainer/FitContainer so
// the container-level dispatch (which flow algorithm, whether to refit)
// lives in exactly one place.
type Entry struct {
	Node  host.Node
	Raw   map[string]any
	Props props.Properties
}

func (e Entry) toItem(containerAlign props.Align) Item {
	return Item{
		Node:      e.Node,
		Props:     e.Raw,
		Margin:    e.Props.Margin,
		AlignSelf: props.AlignSelf(e.Raw, containerAlign),
	}
}

func items(entries []Entry, containerAlign props.Align) []Item {
	out := make([]Item, len(entries))
	for i, e := range entries {
		out[i] = e.toItem(containerAlign)
	}
	return out
}

func gridItems(entries []Entry, containerAlign props.Align) []GridItem {
	out := make([]GridItem, len(entries))
	for i, e := range entries {
		out[i] = GridItem{Item: e.toItem(containerAlign), JustifySelf: props.JustifySelf(e.Raw)}
	}
	return out
}

// RunContainer dispatches n's in-flow children to the flow algorithm its
// resolved Properties select (vertical, horizontal, or grid), rooted at
// n's content-box origin.
func RunContainer(n host.Node, lp props.Properties, entries []Entry) {
	content := geom.Rect{X: n.X(), Y: n.Y(), Width: n.Width(), Height: n.Height()}.
		Inset(lp.Padding.Add(lp.Border))
	origin := geom.Point{X: content.X, Y: content.Y}
	contentW, contentH := content.Width, content.Height

	switch lp.Display {
	case props.DisplayHorizontal:
		Layout(false, origin, contentW, contentH, lp.Gap, lp.JustifyContent, items(entries, lp.AlignItems))
	case props.DisplayGrid:
		Grid(origin, contentW, lp.Columns, lp.Gap, lp.JustifyContent, gridItems(entries, lp.AlignItems))
	default:
		Layout(true, origin, contentH, contentW, lp.Gap, lp.JustifyContent, items(entries, lp.AlignItems))
	}
}

// FitContainer resizes n to hug entries per its display mode, writing the
// new width/height straight onto n.
func FitContainer(n host.Node, lp props.Properties, entries []Entry) {
	var w, h float64
	switch lp.Display {
	case props.DisplayHorizontal:
		w, h = FitHorizontal(lp.Padding, lp.Border, lp.Gap, items(entries, lp.AlignItems))
	case props.DisplayGrid:
		w, h = FitGrid(lp.Padding, lp.Border, lp.Gap, lp.Columns, gridItems(entries, lp.AlignItems))
	default:
		w, h = FitVertical(lp.Padding, lp.Border, lp.Gap, items(entries, lp.AlignItems))
	}
	n.SetWidth(w)
	n.SetHeight(h)
}

// AnyFlexItem reports whether any entry participates in flex grow/shrink.
func AnyFlexItem(entries []Entry) bool {
	for _, e := range entries {
		if props.IsFlexItem(e.Raw) {
			return true
		}
	}
	return false
}

// AnyEntryPercentSized reports whether any entry requests percentage
// width, height, or flexBasis.
func AnyEntryPercentSized(entries []Entry) bool {
	out := make([]Item, len(entries))
	for i, e := range entries {
		out[i] = Item{Node: e.Node, Props: e.Raw}
	}
	return AnyPercentSized(out)
}

// ReflowAfterFit re-applies percentage sizing (when any entry requests
// it) or simply reruns the flow algorithm (when any entry is a flex
// item) after a fit-content container has resized itself to its
// children. This is the gated re-layout a fit-content container needs:
// its own new size may feed back into percentage-sized or flexible
// children on the next pass.
func ReflowAfterFit(n host.Node, lp props.Properties, entries []Entry) {
	content := geom.Rect{X: n.X(), Y: n.Y(), Width: n.Width(), Height: n.Height()}.
		Inset(lp.Padding.Add(lp.Border))
	contentW, contentH := content.Width, content.Height
	switch {
	case AnyEntryPercentSized(entries):
		for _, e := range entries {
			props.ResolveSize(e.Node, e.Raw, contentW, contentH)
		}
		RunContainer(n, lp, entries)
	case AnyFlexItem(entries):
		RunContainer(n, lp, entries)
	}
}
