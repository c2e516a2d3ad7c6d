package style

import "strings"

// ComputeInstanceStyle builds the ordered cascade for one node: one parsed
// style per recognized class (in list order, unknown names skipped), then
// the parsed inline style, merged last-write-wins with !important honored.
func (r *Registry) ComputeInstanceStyle(classesAttr, inlineText string) Style {
	var sources []Style
	for _, name := range strings.Fields(classesAttr) {
		if cls, ok := r.Class(name); ok {
			sources = append(sources, cls)
		}
	}
	sources = append(sources, Parse(inlineText))
	return Merge(sources...)
}
