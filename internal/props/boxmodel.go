package props

import "github.com/flowkit/retained/internal/geom"

// BoxModel derives per-side margin, padding, and border widths from a
// cascaded property map.
func BoxModel(p map[string]any) (margin, padding, border geom.Edges) {
	margin = geom.Edges{
		Top:    NumberSide(p, "marginTop", "margin", 0),
		Right:  NumberSide(p, "marginRight", "margin", 0),
		Bottom: NumberSide(p, "marginBottom", "margin", 0),
		Left:   NumberSide(p, "marginLeft", "margin", 0),
	}
	padding = geom.Edges{
		Top:    NumberSide(p, "paddingTop", "padding", 0),
		Right:  NumberSide(p, "paddingRight", "padding", 0),
		Bottom: NumberSide(p, "paddingBottom", "padding", 0),
		Left:   NumberSide(p, "paddingLeft", "padding", 0),
	}
	border = geom.Edges{
		Top:    borderSide(p, "borderTopWidth"),
		Right:  borderSide(p, "borderRightWidth"),
		Bottom: borderSide(p, "borderBottomWidth"),
		Left:   borderSide(p, "borderLeftWidth"),
	}
	return margin, padding, border
}

// borderSide implements the three-deep fallback: border<Side>Width,
// then borderWidth, then border.
func borderSide(p map[string]any, sideKey string) float64 {
	if v, ok := p[sideKey]; ok {
		if n, ok := AsNumber(v); ok {
			return n
		}
	}
	if v, ok := p["borderWidth"]; ok {
		if n, ok := AsNumber(v); ok {
			return n
		}
	}
	return Number(p, "border", 0)
}
