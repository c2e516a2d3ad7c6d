// Package driver implements the tree driver: the ordered, recursive pass
// that computes each node's style, sizes and positions its in-flow
// children via the flow layouters, optionally hugs its children
// (fit-content), and finally positions any out-of-flow children.
package driver

import (
	"github.com/flowkit/retained/internal/flow"
	"github.com/flowkit/retained/internal/geom"
	"github.com/flowkit/retained/internal/host"
	"github.com/flowkit/retained/internal/obslog"
	"github.com/flowkit/retained/internal/position"
	"github.com/flowkit/retained/internal/props"
	"github.com/flowkit/retained/internal/style"
)

// Driver runs layout passes rooted at a node, using a shared style
// registry and an optional tag directory for anchor resolution.
type Driver struct {
	Registry  *style.Registry
	Directory host.Directory
	Log       *obslog.Logger
}

// New creates a Driver backed by registry.
func New(registry *style.Registry) *Driver {
	return &Driver{Registry: registry}
}

// ProcessInstance runs one layout pass rooted at node.
func (d *Driver) ProcessInstance(node host.Node) {
	d.process(node, 0, 0, true)
}

func (d *Driver) process(n host.Node, parentContentW, parentContentH float64, isRoot bool) {
	if !n.IsVisible() {
		return
	}

	raw := d.Registry.ComputeInstanceStyle(n.Classes(), n.StyleText())
	p := raw.Props

	// Phase 1: size against the parent's content box, then clamp.
	props.ResolveSize(n, p, parentContentW, parentContentH)

	// Phase 2: layout properties; the root is always in-flow.
	lp := props.Resolve(p)
	if isRoot {
		lp.Position = props.PositionRelative
	}

	content := geom.Rect{X: n.X(), Y: n.Y(), Width: n.Width(), Height: n.Height()}.
		Inset(lp.Padding.Add(lp.Border))
	contentW, contentH := content.Width, content.Height

	// Phase 3: partition visible, laid-out children into in-flow and
	// out-of-flow buckets, resolving percentage flexBasis along the way.
	var inFlow, outOfFlow []flow.Entry
	for _, c := range n.Children() {
		if !c.IsVisible() {
			continue
		}
		if v, ok := c.DoLayout(); ok && !v {
			continue
		}
		craw := d.Registry.ComputeInstanceStyle(c.Classes(), c.StyleText())
		cp := craw.Props
		if lp.Display != props.DisplayGrid {
			props.ResolveFlexBasis(c, cp, lp.Display == props.DisplayVertical, contentW, contentH)
		}
		entry := flow.Entry{Node: c, Raw: cp, Props: props.Resolve(cp)}
		if entry.Props.Position == props.PositionRelative {
			inFlow = append(inFlow, entry)
		} else {
			outOfFlow = append(outOfFlow, entry)
		}
	}

	// Phase 4: recurse into in-flow children so their sizes are known.
	for _, ce := range inFlow {
		d.process(ce.Node, contentW, contentH, false)
	}

	// Phase 5: flow layout.
	if lp.Position == props.PositionRelative {
		flow.RunContainer(n, lp, inFlow)
	}

	// Phase 6: fit-content, gated re-resolution and re-layout.
	if lp.FitContent {
		flow.FitContainer(n, lp, inFlow)
		flow.ReflowAfterFit(n, lp, inFlow)
	}

	// Phase 7: out-of-flow children, sized then positioned last.
	for _, ce := range outOfFlow {
		d.process(ce.Node, contentW, contentH, false)
		switch ce.Props.Position {
		case props.PositionAbsolute:
			position.Absolute(n, lp.Border, ce.Node, ce.Props, ce.Props.Margin)
		case props.PositionAnchor:
			position.Anchor(ce.Node, ce.Props, n, d.Directory, d.Log)
		}
	}
}
