package driver

import (
	"testing"

	"github.com/flowkit/retained/internal/host"
	"github.com/flowkit/retained/internal/style"
)

// testNode is a minimal host.Node implementation for exercising the tree
// driver end-to-end, independent of the fixtures demo package.
type testNode struct {
	x, y, w, h float64
	visible    bool
	classes    string
	styleText  string
	tags       map[string]bool
	parent     host.Node
	children   []host.Node
}

func newNode(styleText string) *testNode {
	return &testNode{visible: true, styleText: styleText}
}

func (n *testNode) X() float64          { return n.x }
func (n *testNode) Y() float64          { return n.y }
func (n *testNode) Width() float64      { return n.w }
func (n *testNode) Height() float64     { return n.h }
func (n *testNode) SetX(v float64)      { n.x = v }
func (n *testNode) SetY(v float64)      { n.y = v }
func (n *testNode) SetWidth(v float64)  { n.w = v }
func (n *testNode) SetHeight(v float64) { n.h = v }
func (n *testNode) IsVisible() bool     { return n.visible }
func (n *testNode) Parent() host.Node   { return n.parent }
func (n *testNode) Children() []host.Node {
	return n.children
}
func (n *testNode) HasTag(tag string) bool { return n.tags[tag] }
func (n *testNode) Tags() []string {
	out := make([]string, 0, len(n.tags))
	for t := range n.tags {
		out = append(out, t)
	}
	return out
}
func (n *testNode) Classes() string        { return n.classes }
func (n *testNode) StyleText() string      { return n.styleText }
func (n *testNode) DoLayout() (bool, bool) { return true, false }

func addChild(parent, child *testNode) {
	child.parent = parent
	parent.children = append(parent.children, child)
}

func approx(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestProcessInstance_VerticalStackFitContent(t *testing.T) {
	// Vertical stack with fit-content hugging three fixed-size children.
	root := newNode("display: vertical; padding: 20; gap: 10; fitContent: true; border: 2")
	root.x, root.y = 100, 100
	for i := 0; i < 3; i++ {
		c := newNode("width: 200; height: 80; margin: 5")
		addChild(root, c)
	}

	d := New(style.NewRegistry())
	d.ProcessInstance(root)

	wantYs := []float64{127, 227, 327}
	for i, c := range root.children {
		child := c.(*testNode)
		if child.Width() != 200 || child.Height() != 80 {
			t.Errorf("child %d size = (%v,%v), want (200,80)", i, child.Width(), child.Height())
		}
		if child.Y() != wantYs[i] {
			t.Errorf("child %d y = %v, want %v", i, child.Y(), wantYs[i])
		}
	}
	if root.Height() != 334 {
		t.Errorf("root height = %v, want 334", root.Height())
	}
	if root.Width() != 254 {
		t.Errorf("root width = %v, want 254", root.Width())
	}
}

func TestProcessInstance_FlexGrow(t *testing.T) {
	// Two flex-grow items splitting available width 1:2.
	root := newNode("display: horizontal; width: 500; height: 100; padding: 0; gap: 0")
	c1 := newNode("flex-grow: 1")
	c2 := newNode("flex-grow: 2")
	addChild(root, c1)
	addChild(root, c2)

	d := New(style.NewRegistry())
	d.ProcessInstance(root)

	if !approx(c1.Width(), 166.67, 0.1) {
		t.Errorf("child1 width = %v, want ~166.67", c1.Width())
	}
	if !approx(c2.Width(), 333.33, 0.1) {
		t.Errorf("child2 width = %v, want ~333.33", c2.Width())
	}
	if c1.X() != 0 {
		t.Errorf("child1 x = %v, want 0", c1.X())
	}
	if !approx(c2.X(), 166.67, 0.1) {
		t.Errorf("child2 x = %v, want ~166.67", c2.X())
	}
}

func TestProcessInstance_AbsoluteCorner(t *testing.T) {
	// Absolute child pinned to the bottom-right corner of its parent.
	root := newNode("width: 500; height: 400; padding: 15; border: 2")
	child := newNode("position: absolute; right: 10; bottom: 10; width: 50; height: 50")
	addChild(root, child)

	d := New(style.NewRegistry())
	d.ProcessInstance(root)

	if child.X() != 438 {
		t.Errorf("x = %v, want 438", child.X())
	}
	if child.Y() != 338 {
		t.Errorf("y = %v, want 338", child.Y())
	}
}

func TestProcessInstance_RegisteredClassesCascade(t *testing.T) {
	reg := style.NewRegistry()
	reg.RegisterClass("box", "width: 100; height: 50")
	reg.RegisterClass("wide", "width: 300")

	root := newNode("display: horizontal; width: 500; height: 100")
	child := newNode("")
	child.classes = "box wide"
	addChild(root, child)

	d := New(reg)
	d.ProcessInstance(root)

	if child.Width() != 300 {
		t.Errorf("width = %v, want 300 (later class wins)", child.Width())
	}
	if child.Height() != 50 {
		t.Errorf("height = %v, want 50", child.Height())
	}
}

func TestProcessInstance_InvisibleChildSkipped(t *testing.T) {
	root := newNode("display: vertical; fitContent: true")
	visible := newNode("width: 100; height: 50")
	hidden := newNode("width: 100; height: 999")
	hidden.visible = false
	addChild(root, visible)
	addChild(root, hidden)

	d := New(style.NewRegistry())
	d.ProcessInstance(root)

	if root.Height() != 50 {
		t.Errorf("root height = %v, want 50 (invisible child excluded)", root.Height())
	}
}

func TestProcessInstance_FitContentIdempotent(t *testing.T) {
	root := newNode("display: vertical; padding: 20; gap: 10; fitContent: true; border: 2")
	for i := 0; i < 3; i++ {
		addChild(root, newNode("width: 200; height: 80; margin: 5"))
	}
	d := New(style.NewRegistry())
	d.ProcessInstance(root)
	w1, h1 := root.Width(), root.Height()
	d.ProcessInstance(root)
	w2, h2 := root.Width(), root.Height()
	if w1 != w2 || h1 != h2 {
		t.Errorf("second pass changed size: (%v,%v) -> (%v,%v)", w1, h1, w2, h2)
	}
}
