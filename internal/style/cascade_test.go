package style

import "testing"

func TestMerge_LaterClassWins(t *testing.T) {
	a := Parse("color: red")
	b := Parse("color: blue")
	merged := Merge(a, b)
	if merged.Props["color"] != "blue" {
		t.Errorf("color = %v, want blue", merged.Props["color"])
	}
}

func TestMerge_InlineBeatsAllClasses(t *testing.T) {
	classA := Parse("width: 10")
	classB := Parse("width: 20")
	inline := Parse("width: 30")
	merged := Merge(classA, classB, inline)
	if merged.Props["width"] != float64(30) {
		t.Errorf("width = %v, want 30", merged.Props["width"])
	}
}

func TestMerge_ImportantSurvivesLaterNonImportant(t *testing.T) {
	first := Parse("width: 10 !important")
	second := Parse("width: 20")
	merged := Merge(first, second)
	if merged.Props["width"] != float64(10) {
		t.Errorf("width = %v, want 10 (important should win)", merged.Props["width"])
	}
	if !merged.Important["width"] {
		t.Error("width should remain important")
	}
}

func TestMerge_LastImportantWinsOverEarlierImportant(t *testing.T) {
	first := Parse("width: 10 !important")
	second := Parse("width: 20 !important")
	merged := Merge(first, second)
	if merged.Props["width"] != float64(20) {
		t.Errorf("width = %v, want 20 (last important wins)", merged.Props["width"])
	}
}

func TestComputeInstanceStyle_UnknownClassSkipped(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterClass("card", "padding: 10")
	merged := reg.ComputeInstanceStyle("card ghost-class", "")
	if merged.Props["padding"] != float64(10) {
		t.Errorf("padding = %v, want 10", merged.Props["padding"])
	}
}

func TestComputeInstanceStyle_ClassOrderThenInline(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterClass("a", "width: 10")
	reg.RegisterClass("b", "width: 20")
	merged := reg.ComputeInstanceStyle("a b", "width: 30")
	if merged.Props["width"] != float64(30) {
		t.Errorf("width = %v, want 30", merged.Props["width"])
	}

	merged2 := reg.ComputeInstanceStyle("a b", "")
	if merged2.Props["width"] != float64(20) {
		t.Errorf("width = %v, want 20 (b overrides a)", merged2.Props["width"])
	}
}
