package props

// FlexGrow returns a child's flexGrow factor, defaulting to 0.
func FlexGrow(p map[string]any) float64 {
	return Number(p, "flexGrow", 0)
}

// FlexShrink returns a child's flexShrink factor. The default is 1 only
// when the property is entirely absent; an explicit 0 is honored.
func FlexShrink(p map[string]any) float64 {
	return Number(p, "flexShrink", 1)
}

// IsFlexItem reports whether a child participates in flex grow/shrink.
func IsFlexItem(p map[string]any) bool {
	return FlexGrow(p) > 0 || FlexShrink(p) > 0
}

// FlexBasis returns the raw flexBasis value (number, percentage string,
// "auto", or nil if unset).
func FlexBasis(p map[string]any) (any, bool) {
	v, ok := p["flexBasis"]
	return v, ok
}

// resolveBound reads a min/max-style bound that may be a plain number or
// a percentage of available space.
func resolveBound(p map[string]any, key string, available float64) (float64, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	if n, ok := AsNumber(v); ok {
		return n, true
	}
	if pct, ok := AsPercent(v); ok {
		return ResolvePercent(pct, available), true
	}
	return 0, false
}

// MinMax resolves minWidth/maxWidth or minHeight/maxHeight (pick prefix
// "Width" or "Height") against the given available space.
func MinMax(p map[string]any, prefix string, available float64) (min, max float64, hasMin, hasMax bool) {
	min, hasMin = resolveBound(p, "min"+prefix, available)
	max, hasMax = resolveBound(p, "max"+prefix, available)
	return
}

// Clamp applies min/max bounds to size. When min and max conflict
// (min > max), min wins because it is applied last.
func Clamp(size float64, min, max float64, hasMin, hasMax bool) float64 {
	if hasMax && size > max {
		size = max
	}
	if hasMin && size < min {
		size = min
	}
	return size
}
