// Package host defines the contract the engine requires from a host-owned
// scene graph, independent of the engine packages that consume it. Keeping
// the contract in its own package lets internal/flow, internal/position,
// and internal/driver depend on it without importing the root package.
package host

// Node is the contract the engine requires from a host-owned scene graph
// element. Implementations are typically backed by whatever rectangle
// type the host's scene graph already uses; see the fixtures package for
// a minimal reference implementation used by this module's own tests and
// demo CLI.
type Node interface {
	// X, Y, Width, and Height report the node's current geometry.
	X() float64
	Y() float64
	Width() float64
	Height() float64

	// SetX, SetY, SetWidth, and SetHeight are called by the engine to
	// write computed geometry back to the host.
	SetX(float64)
	SetY(float64)
	SetWidth(float64)
	SetHeight(float64)

	// IsVisible reports whether the node should participate in layout.
	IsVisible() bool

	// Parent returns the node's parent, or nil for a root.
	Parent() Node

	// Children returns the node's children in order.
	Children() []Node

	// HasTag reports whether the node's tag set contains tag. Used by
	// anchor-target resolution.
	HasTag(tag string) bool

	// Tags returns the node's full tag set, used by debug-driver
	// step snapshots.
	Tags() []string

	// Classes returns the node's whitespace-separated class list.
	Classes() string

	// StyleText returns the node's inline style block.
	StyleText() string

	// DoLayout reports the doLayout attribute. ok is false when the
	// attribute is unset, in which case the node behaves as if it were
	// true (participates in layout).
	DoLayout() (value bool, ok bool)
}

// Directory lets the engine resolve an anchor target by tag across the
// full host scene graph, not just the tree currently being laid out.
// When no Directory is configured, anchor resolution falls back
// to walking up to the root of the tree containing the node being
// positioned and searching down from there — sufficient when the anchor
// target lives in the same tree, but hosts with disconnected scenes or a
// flat object directory should supply one.
type Directory interface {
	FindByTag(tag string) (Node, bool)
}
