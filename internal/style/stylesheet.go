package style

import "strings"

// ParseStyleSheet splits a multi-class text document into named declaration
// blocks and registers each one, so a caller can seed many classes from one
// document instead of one RegisterClass call per class. A block is a
// `name:` header line followed by its declarations, up to the next header
// line or end of text; blank lines between blocks are ignored.
func (r *Registry) ParseStyleSheet(text string) {
	for name, body := range splitStyleSheet(text) {
		r.RegisterClass(name, body)
	}
}

func splitStyleSheet(text string) map[string]string {
	out := map[string]string{}
	var currentName string
	var body []string

	flush := func() {
		if currentName != "" {
			out[currentName] = strings.Join(body, "\n")
		}
		body = nil
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		if isStyleSheetHeader(line) {
			flush()
			currentName = strings.TrimSuffix(line, ":")
			continue
		}
		body = append(body, line)
	}
	flush()
	return out
}

// isStyleSheetHeader reports whether line is a class-name header (ends in
// ":" with no other colon in it) rather than a `property: value` decl.
func isStyleSheetHeader(line string) bool {
	if !strings.HasSuffix(line, ":") {
		return false
	}
	return strings.Count(line, ":") == 1
}
