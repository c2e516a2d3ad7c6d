package fixtures

import "github.com/flowkit/retained/internal/host"

// Directory indexes every Box under a set of registered roots by tag, so
// anchor targets can resolve across disconnected trees instead of only
// the subtree being laid out.
type Directory struct {
	byTag map[string]*Box
}

// NewDirectory builds a Directory by indexing every box reachable from
// each given root.
func NewDirectory(roots ...*Box) *Directory {
	d := &Directory{byTag: map[string]*Box{}}
	for _, r := range roots {
		d.index(r)
	}
	return d
}

func (d *Directory) index(b *Box) {
	if b == nil {
		return
	}
	for t := range b.tags {
		if _, seen := d.byTag[t]; !seen {
			d.byTag[t] = b
		}
	}
	for _, c := range b.children {
		d.index(c)
	}
}

// FindByTag returns the first indexed box carrying tag, if any.
func (d *Directory) FindByTag(tag string) (host.Node, bool) {
	b, ok := d.byTag[tag]
	return b, ok
}
