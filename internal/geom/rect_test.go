package geom

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.X != 5 || r.Y != 10 || r.Width != 20 || r.Height != 15 {
		t.Errorf("NewRect = %+v, want {5 10 20 15}", r)
	}
}

func TestRect_RightBottom(t *testing.T) {
	tests := map[string]struct {
		rect          Rect
		right, bottom float64
	}{
		"standard rect":     {NewRect(5, 10, 20, 15), 25, 25},
		"zero position":     {NewRect(0, 0, 10, 10), 10, 10},
		"negative position": {NewRect(-5, -5, 10, 10), 5, 5},
		"zero size":         {NewRect(5, 5, 0, 0), 5, 5},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	tests := map[string]struct {
		rect     Rect
		edges    Edges
		expected Rect
	}{
		"uniform positive inset":   {NewRect(10, 10, 100, 100), EdgeAll(5), NewRect(15, 15, 90, 90)},
		"different insets":        {NewRect(0, 0, 100, 100), EdgeTRBL(10, 20, 30, 40), NewRect(40, 10, 40, 60)},
		"negative insets (expand)": {NewRect(10, 10, 50, 50), EdgeAll(-5), NewRect(5, 5, 60, 60)},
		"inset to zero":           {NewRect(0, 0, 10, 10), EdgeAll(5), NewRect(5, 5, 0, 0)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.edges); got != tt.expected {
				t.Errorf("Inset() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestRect_Immutability(t *testing.T) {
	original := NewRect(10, 10, 20, 20)
	_ = original.Inset(EdgeAll(5))
	if original.X != 10 || original.Y != 10 || original.Width != 20 || original.Height != 20 {
		t.Error("original rect was modified by method calls")
	}
}

func TestEdges(t *testing.T) {
	tests := map[string]struct {
		edges                Edges
		horizontal, vertical float64
		isZero               bool
	}{
		"EdgeAll":       {EdgeAll(5), 10, 10, false},
		"EdgeSymmetric": {EdgeSymmetric(10, 20), 40, 20, false},
		"EdgeTRBL":      {EdgeTRBL(1, 2, 3, 4), 6, 4, false},
		"zero edges":    {Edges{}, 0, 0, true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.edges.Horizontal(); got != tt.horizontal {
				t.Errorf("Horizontal() = %v, want %v", got, tt.horizontal)
			}
			if got := tt.edges.Vertical(); got != tt.vertical {
				t.Errorf("Vertical() = %v, want %v", got, tt.vertical)
			}
			if got := tt.edges.IsZero(); got != tt.isZero {
				t.Errorf("IsZero() = %v, want %v", got, tt.isZero)
			}
		})
	}
}

func TestEdges_Add(t *testing.T) {
	got := EdgeTRBL(1, 2, 3, 4).Add(EdgeAll(10))
	want := EdgeTRBL(11, 12, 13, 14)
	if got != want {
		t.Errorf("Add() = %+v, want %+v", got, want)
	}
}
