// Package stepgen implements the debug driver: a lazy, step-by-step replay
// of the tree driver's phases, suitable for an external controller (an
// inspector UI, a test harness) to single-step through one node at a time.
//
// The generator is a goroutine paired with an unbuffered handoff channel,
// the same "background goroutine signaled by channels" shape the rest of
// the ambient stack uses for its own cooperative loops: the goroutine runs
// the real layout math and blocks after each breakpoint until the
// controller calls Next again. This gives callers "advance one step,
// return a snapshot or a terminal indicator" without threading a
// continuation or explicit sub-iterator stack through every phase.
package stepgen

import (
	"github.com/flowkit/retained/internal/flow"
	"github.com/flowkit/retained/internal/geom"
	"github.com/flowkit/retained/internal/host"
	"github.com/flowkit/retained/internal/obslog"
	"github.com/flowkit/retained/internal/position"
	"github.com/flowkit/retained/internal/props"
	"github.com/flowkit/retained/internal/style"
)

// NodeSnapshot is a point-in-time capture of a node's identity and
// geometry, taken before and after a step so a consumer can diff them.
type NodeSnapshot struct {
	Tags     []string
	Classes  string
	Position geom.Point
	Size     geom.Point // X holds width, Y holds height
	Style    map[string]any
}

func snapshot(n host.Node, computed map[string]any) NodeSnapshot {
	styleCopy := make(map[string]any, len(computed))
	for k, v := range computed {
		styleCopy[k] = v
	}
	return NodeSnapshot{
		Tags:     n.Tags(),
		Classes:  n.Classes(),
		Position: geom.Point{X: n.X(), Y: n.Y()},
		Size:     geom.Point{X: n.Width(), Y: n.Height()},
		Style:    styleCopy,
	}
}

// Step is one suspension point in the debug driver's replay of a layout
// pass: Before is the node's snapshot immediately prior to this phase's
// work, After immediately after, so a consumer can diff the two. Node is
// the subject the host should point its highlighter rectangle at.
type Step struct {
	Label  string
	Node   host.Node
	Before NodeSnapshot
	After  *NodeSnapshot
}

// terminal is the sentinel returned by Next once the sequence is
// exhausted.
var terminal = Step{Label: "done"}

// IsTerminal reports whether s is the terminal indicator.
func (s Step) IsTerminal() bool {
	return s.Label == "done" && s.Node == nil
}

// Generator produces one Step at a time for a layout pass rooted at a
// node, suspending between steps until the controller calls Next.
type Generator struct {
	registry  *style.Registry
	directory host.Directory
	log       *obslog.Logger

	steps   chan Step
	resume  chan struct{}
	cancel  chan struct{}
	started bool
	closed  bool
}

// New arms a step generator rooted at root. Its goroutine starts at once,
// runs the root's "compute style" phase (which writes no geometry) and
// then blocks until the first call to Next. log may be nil.
func New(root host.Node, registry *style.Registry, directory host.Directory, log *obslog.Logger) *Generator {
	g := &Generator{
		registry:  registry,
		directory: directory,
		log:       log,
		steps:     make(chan Step),
		resume:    make(chan struct{}),
		cancel:    make(chan struct{}),
	}
	go g.run(root)
	return g
}

// Next advances the generator by one step. The second return value is
// false once the sequence is exhausted or the generator has been Stopped;
// callers should treat that as the terminal indicator.
func (g *Generator) Next() (Step, bool) {
	if g.closed {
		return terminal, false
	}
	if g.started {
		select {
		case g.resume <- struct{}{}:
		case <-g.cancel:
		}
	}
	g.started = true
	s, ok := <-g.steps
	if !ok {
		g.closed = true
		return terminal, false
	}
	return s, true
}

// Stop tears down the generator before its sequence is exhausted,
// releasing the background goroutine.
func (g *Generator) Stop() {
	if g.closed {
		return
	}
	close(g.cancel)
	g.closed = true
	for range g.steps {
		// drain until run() observes cancel and closes steps
	}
}

// run is the producer goroutine. It replays the tree driver's phases,
// sending a Step and blocking on resume (or cancel) after each one.
func (g *Generator) run(root host.Node) {
	defer close(g.steps)
	g.walk(root, 0, 0, true)
}

// emit sends a step and blocks until the controller resumes or cancels
// the generator. It returns false if the generator was canceled,
// signaling callers to unwind without doing further work.
func (g *Generator) emit(step Step) bool {
	select {
	case g.steps <- step:
	case <-g.cancel:
		return false
	}
	select {
	case <-g.resume:
		return true
	case <-g.cancel:
		return false
	}
}

// doPhase snapshots node before and after running work, then emits the
// step carrying both — the basis for before/after diffing of a phase.
func (g *Generator) doPhase(label string, node host.Node, computed map[string]any, work func()) bool {
	before := snapshot(node, computed)
	work()
	after := snapshot(node, computed)
	return g.emit(Step{Label: label, Node: node, Before: before, After: &after})
}

// walk mirrors the tree driver's seven phases, one step per phase per
// node, splicing each in-flow or out-of-flow child's own walk into the
// parent's sequence by simply recursing before moving to the next phase.
func (g *Generator) walk(n host.Node, parentContentW, parentContentH float64, isRoot bool) bool {
	if !n.IsVisible() {
		return true
	}

	var p map[string]any
	if !g.doPhase("compute style", n, nil, func() {
		computed := g.registry.ComputeInstanceStyle(n.Classes(), n.StyleText())
		p = computed.Props
	}) {
		return false
	}

	if !g.doPhase("resolve size", n, p, func() {
		props.ResolveSize(n, p, parentContentW, parentContentH)
	}) {
		return false
	}

	var lp props.Properties
	if !g.doPhase("resolve properties", n, p, func() {
		lp = props.Resolve(p)
		if isRoot {
			lp.Position = props.PositionRelative
		}
	}) {
		return false
	}

	content := geom.Rect{X: n.X(), Y: n.Y(), Width: n.Width(), Height: n.Height()}.
		Inset(lp.Padding.Add(lp.Border))
	contentW, contentH := content.Width, content.Height

	var inFlow, outOfFlow []flow.Entry
	for _, c := range n.Children() {
		if !c.IsVisible() {
			continue
		}
		if v, ok := c.DoLayout(); ok && !v {
			continue
		}
		craw := g.registry.ComputeInstanceStyle(c.Classes(), c.StyleText())
		cp := craw.Props
		if lp.Display != props.DisplayGrid {
			props.ResolveFlexBasis(c, cp, lp.Display == props.DisplayVertical, contentW, contentH)
		}
		entry := flow.Entry{Node: c, Raw: cp, Props: props.Resolve(cp)}
		if entry.Props.Position == props.PositionRelative {
			inFlow = append(inFlow, entry)
		} else {
			outOfFlow = append(outOfFlow, entry)
		}
	}

	for _, ce := range inFlow {
		if !g.walk(ce.Node, contentW, contentH, false) {
			return false
		}
	}

	if !g.doPhase("flow layout", n, p, func() {
		if lp.Position == props.PositionRelative {
			flow.RunContainer(n, lp, inFlow)
		}
	}) {
		return false
	}

	if lp.FitContent {
		if !g.doPhase("fit content", n, p, func() {
			flow.FitContainer(n, lp, inFlow)
			flow.ReflowAfterFit(n, lp, inFlow)
		}) {
			return false
		}
	}

	for _, ce := range outOfFlow {
		if !g.walk(ce.Node, contentW, contentH, false) {
			return false
		}
		if !g.doPhase("position out-of-flow", ce.Node, ce.Raw, func() {
			switch ce.Props.Position {
			case props.PositionAbsolute:
				position.Absolute(n, lp.Border, ce.Node, ce.Props, ce.Props.Margin)
			case props.PositionAnchor:
				position.Anchor(ce.Node, ce.Props, n, g.directory, g.log)
			}
		}) {
			return false
		}
	}

	return true
}
