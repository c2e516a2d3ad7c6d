package props

import "github.com/flowkit/retained/internal/geom"

// Display selects the flow algorithm for a container's in-flow children.
type Display uint8

const (
	DisplayVertical Display = iota
	DisplayHorizontal
	DisplayGrid
)

// Position partitions a node into the in-flow or out-of-flow bucket.
type Position uint8

const (
	PositionRelative Position = iota
	PositionAbsolute
	PositionAnchor
)

// Align is used for both alignItems (container) and alignSelf/justifySelf
// (item) resolution.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
)

// AnchorPoint is one of the nine named positions on a rectangle used by
// anchor positioning.
type AnchorPoint uint8

const (
	AnchorTopLeft AnchorPoint = iota
	AnchorTop
	AnchorTopRight
	AnchorLeft
	AnchorCenter
	AnchorRight
	AnchorBottomLeft
	AnchorBottom
	AnchorBottomRight
)

// Offset returns the (x, y) offset of this anchor point within a
// rectangle of size (w, h).
func (a AnchorPoint) Offset(w, h float64) (float64, float64) {
	switch a {
	case AnchorTopLeft:
		return 0, 0
	case AnchorTop:
		return w / 2, 0
	case AnchorTopRight:
		return w, 0
	case AnchorLeft:
		return 0, h / 2
	case AnchorCenter:
		return w / 2, h / 2
	case AnchorRight:
		return w, h / 2
	case AnchorBottomLeft:
		return 0, h
	case AnchorBottom:
		return w / 2, h
	case AnchorBottomRight:
		return w, h
	default:
		return w / 2, h / 2
	}
}

func parseAnchorPoint(s string) AnchorPoint {
	switch s {
	case "top-left":
		return AnchorTopLeft
	case "top", "top-center":
		return AnchorTop
	case "top-right":
		return AnchorTopRight
	case "left", "center-left":
		return AnchorLeft
	case "center":
		return AnchorCenter
	case "right", "center-right":
		return AnchorRight
	case "bottom-left":
		return AnchorBottomLeft
	case "bottom", "bottom-center":
		return AnchorBottom
	case "bottom-right":
		return AnchorBottomRight
	default:
		return AnchorCenter
	}
}

func parseDisplay(s string) Display {
	switch s {
	case "horizontal":
		return DisplayHorizontal
	case "grid":
		return DisplayGrid
	default:
		return DisplayVertical
	}
}

func parsePosition(s string) Position {
	switch s {
	case "absolute":
		return PositionAbsolute
	case "anchor":
		return PositionAnchor
	default:
		return PositionRelative
	}
}

func parseAlign(s string, fallback Align) Align {
	switch s {
	case "start":
		return AlignStart
	case "center":
		return AlignCenter
	case "end":
		return AlignEnd
	default:
		return fallback
	}
}

func parseJustify(s string) Justify {
	switch s {
	case "center":
		return JustifyCenter
	case "end":
		return JustifyEnd
	case "space-between":
		return JustifySpaceBetween
	case "space-around":
		return JustifySpaceAround
	default:
		return JustifyStart
	}
}

// Properties is the defaulted, typed view of a node's recognized layout
// properties.
type Properties struct {
	Display        Display
	Position       Position
	Gap            float64
	AlignItems     Align
	JustifyContent Justify
	Columns        int
	FitContent     bool

	Top, Right, Bottom, Left       float64
	HasTop, HasRight, HasBottom, HasLeft bool

	AnchorTarget  any // nil, "parent", a tag string, or a host node handle
	HasAnchorTarget bool
	AnchorPoint   AnchorPoint
	SelfAnchor    AnchorPoint
	AnchorOffsetX float64
	AnchorOffsetY float64

	Margin, Padding, Border geom.Edges
}

// Resolve projects a cascaded property map into a defaulted Properties
// view, applying the default for every recognized layout property.
func Resolve(p map[string]any) Properties {
	var out Properties
	out.Display = parseDisplay(String(p, "display", "vertical"))
	out.Position = parsePosition(String(p, "position", "relative"))
	out.Gap = Number(p, "gap", 0)

	alignSource := String(p, "alignItems", "")
	if alignSource == "" {
		alignSource = String(p, "alignment", "start")
	}
	out.AlignItems = parseAlign(alignSource, AlignStart)
	out.JustifyContent = parseJustify(String(p, "justifyContent", "start"))

	out.Columns = int(Number(p, "columns", 2))
	if out.Columns < 1 {
		out.Columns = 1
	}
	out.FitContent = Bool(p, "fitContent", false)

	if v, ok := OptionalNumber(p, "top"); ok {
		out.Top, out.HasTop = v, true
	}
	if v, ok := OptionalNumber(p, "right"); ok {
		out.Right, out.HasRight = v, true
	}
	if v, ok := OptionalNumber(p, "bottom"); ok {
		out.Bottom, out.HasBottom = v, true
	}
	if v, ok := OptionalNumber(p, "left"); ok {
		out.Left, out.HasLeft = v, true
	}

	if v, ok := p["anchorTarget"]; ok {
		out.AnchorTarget, out.HasAnchorTarget = v, true
	}
	out.AnchorPoint = parseAnchorPoint(String(p, "anchorPoint", "center"))
	out.SelfAnchor = parseAnchorPoint(String(p, "selfAnchor", "center"))
	out.AnchorOffsetX = Number(p, "anchorOffsetX", 0)
	out.AnchorOffsetY = Number(p, "anchorOffsetY", 0)

	out.Margin, out.Padding, out.Border = BoxModel(p)

	return out
}

// AlignSelf resolves a child's own alignSelf, falling back to the
// container's alignItems when the child doesn't override it.
func AlignSelf(p map[string]any, containerAlign Align) Align {
	if s, ok := p["alignSelf"]; ok {
		if str, ok := s.(string); ok {
			return parseAlign(str, containerAlign)
		}
	}
	return containerAlign
}

// JustifySelf resolves a grid child's own justifySelf, defaulting to start.
func JustifySelf(p map[string]any) Align {
	return parseAlign(String(p, "justifySelf", "start"), AlignStart)
}
