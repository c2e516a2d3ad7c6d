package style

import "sync"

// Registry holds named style classes, parsed once at registration time.
// Registration is one-way: the engine never needs to remove a class.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]Style
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{classes: map[string]Style{}}
}

// RegisterClass parses text and stores it under name, overwriting any
// previous registration with the same name.
func (r *Registry) RegisterClass(name, text string) {
	parsed := Parse(text)
	r.mu.Lock()
	r.classes[name] = parsed
	r.mu.Unlock()
}

// Class returns the parsed style for name, and whether it is registered.
// Unknown class names are skipped by the cascade, not an error.
func (r *Registry) Class(name string) (Style, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.classes[name]
	return s, ok
}

// Merge folds sources in order into one computed Style, honoring
// `!important`: a later write overwrites an earlier one unless the
// earlier write was important and the later one is not. A winning
// important write adds the property to the result's important set.
func Merge(sources ...Style) Style {
	out := New()
	for _, src := range sources {
		for key, val := range src.Props {
			incomingImportant := src.Important[key]
			if out.Important[key] && !incomingImportant {
				continue
			}
			out.Props[key] = val
			if incomingImportant {
				out.Important[key] = true
			} else {
				delete(out.Important, key)
			}
		}
	}
	return out
}
