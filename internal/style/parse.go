// Package style parses the CSS-like declaration blocks used for both named
// classes and inline styles, and implements the cascade that merges them
// into one computed style per node.
package style

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	numberRe    = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	zeroUnitRe  = regexp.MustCompile(`^0(px|%|em|rem|pt|vh|vw)$`)
	importantRe = regexp.MustCompile(`\s*!important\s*$`)
	declSplitRe = regexp.MustCompile(`[\n;]+`)
)

// Style is a parsed declaration block: a property bag plus the set of
// property names written with `!important`.
type Style struct {
	Props     map[string]any
	Important map[string]bool
}

// New returns an empty Style with initialized maps.
func New() Style {
	return Style{Props: map[string]any{}, Important: map[string]bool{}}
}

// Clone returns a deep copy of s.
func (s Style) Clone() Style {
	out := New()
	for k, v := range s.Props {
		out.Props[k] = v
	}
	for k, v := range s.Important {
		out.Important[k] = v
	}
	return out
}

// Parse turns a `property: value` declaration block into a Style.
// Declarations may be separated by newlines, semicolons, or both, matching
// both a multi-line block and a single CSS-like line of `a: b; c: d;`.
func Parse(text string) Style {
	out := New()
	for _, rawLine := range declSplitRe.Split(text, -1) {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		rawKey := strings.TrimSpace(line[:idx])
		rawVal := strings.TrimSpace(line[idx+1:])
		if rawKey == "" || rawVal == "" {
			continue
		}

		important := false
		if importantRe.MatchString(rawVal) {
			important = true
			rawVal = strings.TrimSpace(importantRe.ReplaceAllString(rawVal, ""))
			if rawVal == "" {
				continue
			}
		}

		key := kebabToCamel(rawKey)

		if key == "flex" {
			expandFlex(out, rawVal, important)
			continue
		}

		value := coerce(rawVal)
		out.Props[key] = value
		if important {
			out.Important[key] = true
		}
	}
	return out
}

// coerce converts numeric strings to float64 and zero-with-unit values
// ("0px") to 0; everything else is preserved as a string (percentages,
// identifiers, "auto", ...).
func coerce(raw string) any {
	if numberRe.MatchString(raw) {
		n, _ := strconv.ParseFloat(raw, 64)
		return n
	}
	if zeroUnitRe.MatchString(raw) {
		return float64(0)
	}
	return raw
}

// kebabToCamel normalizes a kebab-case or camelCase property name to
// camelCase. Already-camelCase input passes through unchanged.
func kebabToCamel(key string) string {
	if !strings.Contains(key, "-") {
		return key
	}
	parts := strings.Split(key, "-")
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// expandFlex implements the `flex` shorthand expansion into its three
// longhand properties.
func expandFlex(out Style, raw string, important bool) {
	tokens := strings.Fields(raw)

	set := func(key string, v any) {
		out.Props[key] = v
		if important {
			out.Important[key] = true
		}
	}

	switch len(tokens) {
	case 0:
		return
	case 1:
		switch tokens[0] {
		case "auto":
			set("flexGrow", float64(1))
			set("flexShrink", float64(1))
			set("flexBasis", "auto")
		case "none":
			set("flexGrow", float64(0))
			set("flexShrink", float64(0))
			set("flexBasis", "auto")
		case "initial":
			set("flexGrow", float64(0))
			set("flexShrink", float64(1))
			set("flexBasis", "auto")
		default:
			grow := coerce(tokens[0])
			set("flexGrow", grow)
			set("flexShrink", float64(1))
			set("flexBasis", float64(0))
		}
	case 2:
		grow := coerce(tokens[0])
		set("flexGrow", grow)
		if n, ok := coerce(tokens[1]).(float64); ok {
			set("flexShrink", n)
			set("flexBasis", float64(0))
		} else {
			set("flexShrink", float64(1))
			set("flexBasis", coerce(tokens[1]))
		}
	default:
		set("flexGrow", coerce(tokens[0]))
		set("flexShrink", coerce(tokens[1]))
		set("flexBasis", coerce(tokens[2]))
	}
}
