// Package flow implements the vertical and horizontal flex layouters:
// main-axis flex grow/shrink distribution followed by justify-content/
// align-items placement. The two directions share one implementation
// parameterized on which geometry axis is "main".
package flow

import (
	"github.com/flowkit/retained/internal/geom"
	"github.com/flowkit/retained/internal/host"
	"github.com/flowkit/retained/internal/props"
)

// Item is one in-flow child as seen by the flow layouter: its host node,
// its cascaded property map (read for flexGrow/flexShrink/flexBasis/min-max),
// its own margin box, and its already-resolved alignSelf (fallback to the
// container's alignItems applied by the caller).
type Item struct {
	Node      host.Node
	Props     map[string]any
	Margin    geom.Edges
	AlignSelf props.Align
}
