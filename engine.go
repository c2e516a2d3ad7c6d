package retained

import (
	"fmt"

	"github.com/flowkit/retained/internal/driver"
	"github.com/flowkit/retained/internal/obslog"
	"github.com/flowkit/retained/internal/stepgen"
	"github.com/flowkit/retained/internal/style"
)

// Option configures an Engine at construction time.
type Option func(*Engine) error

// WithDirectory supplies a host-wide tag directory for anchor-target
// resolution. Without one, anchor resolution falls back to walking up to
// the root of the tree being laid out and searching down from there.
func WithDirectory(dir Directory) Option {
	return func(e *Engine) error {
		e.directory = dir
		return nil
	}
}

// WithLogger attaches a logger used for debug-driver warnings and
// low-volume anchor-resolution traces. The zero value logs nothing.
func WithLogger(l *obslog.Logger) Option {
	return func(e *Engine) error {
		if l == nil {
			return fmt.Errorf("retained: WithLogger requires a non-nil logger")
		}
		e.log = l
		return nil
	}
}

// Engine owns a style registry and runs layout passes over host-owned
// node trees. The zero value is not usable; construct with New.
type Engine struct {
	registry  *style.Registry
	directory Directory
	log       *obslog.Logger

	driver *driver.Driver
	debug  *stepgen.Generator
}

// New creates an Engine with an empty style registry.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		registry: style.NewRegistry(),
		log:      obslog.Noop(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	e.driver = &driver.Driver{Registry: e.registry, Directory: e.directory, Log: e.log}
	return e, nil
}

// RegisterClass parses text and registers it as a named class, available
// to any node whose Classes() lists name.
func (e *Engine) RegisterClass(name, text string) {
	e.registry.RegisterClass(name, text)
}

// ParseStyleSheet registers every named block in a multi-class style
// document in one call; see style.Registry.ParseStyleSheet.
func (e *Engine) ParseStyleSheet(text string) {
	e.registry.ParseStyleSheet(text)
}

// ProcessInstance runs one full layout pass rooted at node, recursively
// sizing and positioning its entire visible subtree. While a debug-mode
// replay is armed, the tick-driven pass is suppressed entirely and this
// is a no-op — the two drivers never run over the same tree at once.
func (e *Engine) ProcessInstance(node Node) {
	if e.debug != nil {
		return
	}
	e.driver.ProcessInstance(node)
}

// EnableDebugMode arms a step-by-step replay of a layout pass rooted at
// node. Call NextStep to advance; DisableDebugMode (or running the
// sequence to exhaustion) tears it down. Enabling debug mode while already
// active replaces the in-flight one, releasing its goroutine first.
func (e *Engine) EnableDebugMode(node Node) {
	if e.debug != nil {
		e.debug.Stop()
	}
	e.debug = stepgen.New(node, e.registry, e.directory, e.log)
}

// NextStep advances the active debug-mode replay by one phase. ok is
// false once the sequence is exhausted or no debug mode is active; the
// latter case is logged as a warning rather than treated as an error,
// since the replay silently doing nothing is the safe failure mode.
func (e *Engine) NextStep() (Step, bool) {
	if e.debug == nil {
		e.log.Warn("NextStep called with no debug mode active")
		return Step{}, false
	}
	s, ok := e.debug.Next()
	if !ok {
		e.debug = nil
	}
	return s, ok
}

// DisableDebugMode tears down the active debug-mode replay, if any,
// releasing its background goroutine without running it to completion.
func (e *Engine) DisableDebugMode() {
	if e.debug == nil {
		return
	}
	e.debug.Stop()
	e.debug = nil
}
