// Package fixtures provides a minimal, concrete host.Node implementation
// for exercising the engine without a real scene graph: tests and the
// cmd/layoutdebug demo CLI build trees of *Box and hand the root to an
// Engine. It owns no rendering and no hit testing, only the geometry and
// style fields the engine's Node contract requires.
package fixtures

import (
	"github.com/google/uuid"

	"github.com/flowkit/retained/internal/host"
)

// Box is a minimal host.Node: a rectangle with tags, classes, an inline
// style block, and a parent/children tree.
type Box struct {
	id uuid.UUID

	x, y, w, h float64
	visible    bool
	doLayout   *bool

	classes   string
	styleText string
	tags      map[string]bool

	parent   *Box
	children []*Box
}

// Option configures a Box at construction time.
type Option func(*Box)

// New creates a Box with a fresh identity, visible by default.
func New(opts ...Option) *Box {
	b := &Box{id: uuid.New(), visible: true}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WithStyle sets the inline style block.
func WithStyle(text string) Option {
	return func(b *Box) { b.styleText = text }
}

// WithClasses sets the whitespace-separated class list.
func WithClasses(classes string) Option {
	return func(b *Box) { b.classes = classes }
}

// WithTags attaches tags usable as anchor targets.
func WithTags(tags ...string) Option {
	return func(b *Box) {
		if b.tags == nil {
			b.tags = make(map[string]bool, len(tags))
		}
		for _, t := range tags {
			b.tags[t] = true
		}
	}
}

// WithVisible overrides the default-visible state.
func WithVisible(visible bool) Option {
	return func(b *Box) { b.visible = visible }
}

// WithDoLayout overrides the doLayout attribute; unset by default.
func WithDoLayout(participate bool) Option {
	return func(b *Box) { b.doLayout = &participate }
}

// WithChildren appends children to the box, wiring their parent pointer.
func WithChildren(children ...*Box) Option {
	return func(b *Box) {
		for _, c := range children {
			c.parent = b
		}
		b.children = append(b.children, children...)
	}
}

// AddChild appends a single child, wiring its parent pointer. Unlike
// WithChildren this is meant for building a tree incrementally after
// construction, the way a host adds nodes as they're discovered.
func (b *Box) AddChild(c *Box) {
	c.parent = b
	b.children = append(b.children, c)
}

// ID returns the box's stable identity.
func (b *Box) ID() uuid.UUID { return b.id }

func (b *Box) X() float64      { return b.x }
func (b *Box) Y() float64      { return b.y }
func (b *Box) Width() float64  { return b.w }
func (b *Box) Height() float64 { return b.h }

func (b *Box) SetX(v float64)      { b.x = v }
func (b *Box) SetY(v float64)      { b.y = v }
func (b *Box) SetWidth(v float64)  { b.w = v }
func (b *Box) SetHeight(v float64) { b.h = v }

func (b *Box) IsVisible() bool { return b.visible }

// Parent returns the parent Box as a host.Node, or a true nil interface
// for a root box. Returning b.parent directly when it is a nil *Box would
// produce a non-nil interface wrapping a nil pointer, breaking callers'
// "!= nil" checks; this returns an untyped nil instead.
func (b *Box) Parent() host.Node {
	if b.parent == nil {
		return nil
	}
	return b.parent
}

// Children returns the box's children as host.Node values.
func (b *Box) Children() []host.Node {
	out := make([]host.Node, len(b.children))
	for i, c := range b.children {
		out[i] = c
	}
	return out
}

func (b *Box) Classes() string   { return b.classes }
func (b *Box) StyleText() string { return b.styleText }

func (b *Box) HasTag(tag string) bool { return b.tags[tag] }

func (b *Box) Tags() []string {
	out := make([]string, 0, len(b.tags))
	for t := range b.tags {
		out = append(out, t)
	}
	return out
}

func (b *Box) DoLayout() (bool, bool) {
	if b.doLayout == nil {
		return true, false
	}
	return *b.doLayout, true
}
