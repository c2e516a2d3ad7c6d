package props

import "testing"

func TestBoxModel_Shorthand(t *testing.T) {
	margin, padding, border := BoxModel(map[string]any{
		"margin":      float64(5),
		"padding":     float64(10),
		"borderWidth": float64(2),
	})
	if margin.Top != 5 || margin.Right != 5 || margin.Bottom != 5 || margin.Left != 5 {
		t.Errorf("margin = %+v, want all 5", margin)
	}
	if padding.Top != 10 {
		t.Errorf("padding.Top = %v, want 10", padding.Top)
	}
	if border.Left != 2 {
		t.Errorf("border.Left = %v, want 2", border.Left)
	}
}

func TestBoxModel_PerSideOverridesShorthand(t *testing.T) {
	margin, _, _ := BoxModel(map[string]any{
		"margin":    float64(5),
		"marginTop": float64(20),
	})
	if margin.Top != 20 {
		t.Errorf("marginTop = %v, want 20", margin.Top)
	}
	if margin.Left != 5 {
		t.Errorf("marginLeft = %v, want 5 (shorthand)", margin.Left)
	}
}

func TestBoxModel_BorderFallbackChain(t *testing.T) {
	_, _, border := BoxModel(map[string]any{
		"border": float64(1),
	})
	if border.Top != 1 || border.Bottom != 1 {
		t.Errorf("border = %+v, want all 1 via border fallback", border)
	}

	_, _, border2 := BoxModel(map[string]any{
		"border":           float64(1),
		"borderWidth":      float64(3),
		"borderTopWidth":   float64(7),
	})
	if border2.Top != 7 {
		t.Errorf("borderTopWidth should win, got %v", border2.Top)
	}
	if border2.Left != 3 {
		t.Errorf("borderWidth should win over border, got %v", border2.Left)
	}
}

func TestBoxModel_Defaults(t *testing.T) {
	margin, padding, border := BoxModel(map[string]any{})
	if !margin.IsZero() || !padding.IsZero() || !border.IsZero() {
		t.Error("expected all-zero box model for empty props")
	}
}
