// Package position implements the two out-of-flow positioners: absolute
// and anchor. Both are no-ops when their required collaborator (parent,
// anchor target) is missing — geometry is left unchanged rather than
// raising an error.
package position

import (
	"github.com/flowkit/retained/internal/geom"
	"github.com/flowkit/retained/internal/host"
	"github.com/flowkit/retained/internal/props"
)

// Absolute positions node within parent's border box using
// top/right/bottom/left. parentBorder is parent's own border widths;
// margin is node's own margin. If parent is nil, Absolute does nothing.
//
// The reference rectangle used here is the parent's border box inset by
// its own border only; parent padding does not participate (a parent
// with padding:15 border:2 and a child pinned right:10 bottom:10 ends up
// flush against the border edge, not the padding edge).
func Absolute(parent host.Node, parentBorder geom.Edges, node host.Node, p props.Properties, margin geom.Edges) {
	if parent == nil {
		return
	}
	content := geom.Rect{X: parent.X(), Y: parent.Y(), Width: parent.Width(), Height: parent.Height()}.
		Inset(parentBorder)

	var x float64
	switch {
	case p.HasLeft:
		x = content.X + p.Left + margin.Left
	case p.HasRight:
		x = content.Right() - p.Right - node.Width() - margin.Right
	default:
		x = content.X + margin.Left
	}

	var y float64
	switch {
	case p.HasTop:
		y = content.Y + p.Top + margin.Top
	case p.HasBottom:
		y = content.Bottom() - p.Bottom - node.Height() - margin.Bottom
	default:
		y = content.Y + margin.Top
	}

	node.SetX(x)
	node.SetY(y)
}
