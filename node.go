// Package retained implements a retained-mode UI layout engine: a CSS-like
// style cascade plus a multi-pass size-and-position algorithm over a tree
// of host-owned rectangular nodes.
//
// The engine never creates, destroys, or renders nodes — it only reads the
// fields described by Node and writes X, Y, Width, and Height. Tree
// ownership, rendering, and hit testing stay with the host.
package retained

import (
	"github.com/flowkit/retained/internal/geom"
	"github.com/flowkit/retained/internal/host"
	"github.com/flowkit/retained/internal/props"
	"github.com/flowkit/retained/internal/stepgen"
)

// Node is the contract the engine requires from a host-owned scene graph
// element. See internal/host for the full method documentation; it is
// defined there so the engine's internal packages can depend on it without
// importing this package.
type Node = host.Node

// Directory lets the engine resolve an anchor target by tag across the
// full host scene graph rather than just the tree being laid out. See
// internal/host for details.
type Directory = host.Directory

// Step is one suspension point in a debug-mode layout replay. See
// internal/stepgen for the full method documentation.
type Step = stepgen.Step

// NodeSnapshot is a point-in-time capture of a node's identity and
// geometry, taken before and after a debug-mode Step.
type NodeSnapshot = stepgen.NodeSnapshot

// Display selects the flow algorithm for a container's in-flow children.
type Display = props.Display

const (
	DisplayVertical   = props.DisplayVertical
	DisplayHorizontal = props.DisplayHorizontal
	DisplayGrid       = props.DisplayGrid
)

// Position partitions a node into the in-flow or out-of-flow bucket.
type Position = props.Position

const (
	PositionRelative = props.PositionRelative
	PositionAbsolute = props.PositionAbsolute
	PositionAnchor   = props.PositionAnchor
)

// Align is used for both alignItems (container) and alignSelf/justifySelf
// (item) resolution.
type Align = props.Align

const (
	AlignStart  = props.AlignStart
	AlignCenter = props.AlignCenter
	AlignEnd    = props.AlignEnd
)

// Justify specifies how children are distributed along a container's
// main axis.
type Justify = props.Justify

const (
	JustifyStart        = props.JustifyStart
	JustifyCenter       = props.JustifyCenter
	JustifyEnd          = props.JustifyEnd
	JustifySpaceBetween = props.JustifySpaceBetween
	JustifySpaceAround  = props.JustifySpaceAround
)

// AnchorPoint is one of the nine named positions on a rectangle used by
// anchor positioning.
type AnchorPoint = props.AnchorPoint

const (
	AnchorTopLeft     = props.AnchorTopLeft
	AnchorTop         = props.AnchorTop
	AnchorTopRight    = props.AnchorTopRight
	AnchorLeft        = props.AnchorLeft
	AnchorCenter      = props.AnchorCenter
	AnchorRight       = props.AnchorRight
	AnchorBottomLeft  = props.AnchorBottomLeft
	AnchorBottom      = props.AnchorBottom
	AnchorBottomRight = props.AnchorBottomRight
)

// Properties is the defaulted, typed view of a node's recognized layout
// properties, as resolved from its cascaded style.
type Properties = props.Properties

// Edges is spacing on four sides (top, right, bottom, left).
type Edges = geom.Edges

// Point is an (x, y) coordinate.
type Point = geom.Point

// Rect is an axis-aligned rectangle.
type Rect = geom.Rect
