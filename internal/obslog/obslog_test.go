package obslog

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestNoop_DiscardsWithoutPanicking(t *testing.T) {
	l := Noop()
	l.Warn("warning", zap.String("k", "v"))
	l.Debug("debug")
	if err := l.Sync(); err != nil {
		t.Errorf("Sync on noop logger returned %v, want nil", err)
	}
}

func TestNew_NilFallsBackToNoop(t *testing.T) {
	l := New(nil)
	l.Warn("warning")
	if l.z == nil {
		t.Error("New(nil) should still carry a usable zap logger")
	}
}

func TestNew_WrapsGivenLogger(t *testing.T) {
	z := zap.NewExample()
	l := New(z)
	if l.z != z {
		t.Error("New should wrap the given logger unchanged")
	}
}

func TestZeroValue_DoesNotPanic(t *testing.T) {
	var l *Logger
	l.Warn("warning")
	l.Debug("debug")
	if err := l.Sync(); err != nil {
		t.Errorf("Sync on a nil *Logger returned %v, want nil", err)
	}
}

func TestNewFile_BuildsWithoutPanicking(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout-debug.log")
	l := NewFile(path, 1)
	l.Debug("step", zap.String("label", "resolve size"))
	if err := l.Sync(); err != nil {
		t.Errorf("Sync returned %v, want nil", err)
	}
}

func TestNewFile_EmptyPathUsesDefault(t *testing.T) {
	l := NewFile("", 0)
	if l.z == nil {
		t.Error("NewFile with an empty path should still build a usable logger")
	}
}
