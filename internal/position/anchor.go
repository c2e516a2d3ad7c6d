package position

import (
	"go.uber.org/zap"

	"github.com/flowkit/retained/internal/host"
	"github.com/flowkit/retained/internal/obslog"
	"github.com/flowkit/retained/internal/props"
)

// Anchor pins self's selfAnchor point to the target's anchorPoint, plus a
// user offset. self is the node being positioned; dir is an optional
// host-provided tag directory used in preference to the subtree-walk
// fallback. log may be nil; an unresolved target is traced at debug level
// and otherwise left untouched.
func Anchor(self host.Node, p props.Properties, parent host.Node, dir host.Directory, log *obslog.Logger) {
	target, ok := ResolveTarget(p, self, parent, dir)
	if !ok {
		log.Debug("anchor target not found", zap.Any("anchorTarget", p.AnchorTarget))
		return
	}

	tOffX, tOffY := p.AnchorPoint.Offset(target.Width(), target.Height())
	targetX := target.X() + tOffX
	targetY := target.Y() + tOffY

	sOffX, sOffY := p.SelfAnchor.Offset(self.Width(), self.Height())
	selfX := self.X() + sOffX
	selfY := self.Y() + sOffY

	self.SetX(self.X() + (targetX - selfX) + p.AnchorOffsetX)
	self.SetY(self.Y() + (targetY - selfY) + p.AnchorOffsetY)
}

// ResolveTarget resolves an anchorTarget value to a node: no anchorTarget
// or the string "parent" resolves to parent; any other string searches
// for the first node tagged with it (via dir if provided, else a
// walk-to-root-then-search fallback); a node handle resolves to itself.
func ResolveTarget(p props.Properties, self, parent host.Node, dir host.Directory) (host.Node, bool) {
	if !p.HasAnchorTarget {
		return parent, parent != nil
	}
	switch v := p.AnchorTarget.(type) {
	case string:
		if v == "parent" {
			return parent, parent != nil
		}
		if dir != nil {
			return dir.FindByTag(v)
		}
		return findByTagFromRoot(self, v)
	case host.Node:
		return v, v != nil
	default:
		return parent, parent != nil
	}
}

func findByTagFromRoot(self host.Node, tag string) (host.Node, bool) {
	root := self
	for root.Parent() != nil {
		root = root.Parent()
	}
	return searchSubtree(root, tag)
}

func searchSubtree(n host.Node, tag string) (host.Node, bool) {
	if n.HasTag(tag) {
		return n, true
	}
	for _, child := range n.Children() {
		if found, ok := searchSubtree(child, tag); ok {
			return found, true
		}
	}
	return nil, false
}
