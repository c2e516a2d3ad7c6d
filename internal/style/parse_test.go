package style

import "testing"

func TestParse_Numbers(t *testing.T) {
	s := Parse("width: 200")
	if s.Props["width"] != float64(200) {
		t.Errorf("width = %v, want 200", s.Props["width"])
	}
	if s.Important["width"] {
		t.Error("width should not be important")
	}
}

func TestParse_Important(t *testing.T) {
	s := Parse("width: 200 !important")
	if s.Props["width"] != float64(200) {
		t.Errorf("width = %v, want 200", s.Props["width"])
	}
	if !s.Important["width"] {
		t.Error("width should be important")
	}
}

func TestParse_ZeroWithUnit(t *testing.T) {
	s := Parse("width: 0px;")
	if s.Props["width"] != float64(0) {
		t.Errorf("width = %v, want 0", s.Props["width"])
	}
}

func TestParse_Percent(t *testing.T) {
	s := Parse("width: 50%;")
	if s.Props["width"] != "50%" {
		t.Errorf("width = %v, want \"50%%\"", s.Props["width"])
	}
}

func TestParse_Identifier(t *testing.T) {
	s := Parse("display: vertical")
	if s.Props["display"] != "vertical" {
		t.Errorf("display = %v, want vertical", s.Props["display"])
	}
}

func TestParse_KebabAndCamelCollapse(t *testing.T) {
	a := Parse("min-width: 100")
	b := Parse("minWidth: 100")
	if a.Props["minWidth"] != b.Props["minWidth"] {
		t.Errorf("kebab/camel mismatch: %v vs %v", a.Props["minWidth"], b.Props["minWidth"])
	}
}

func TestParse_MalformedLinesDropped(t *testing.T) {
	s := Parse("no-colon-here\n: novalue\nkey:\nwidth: 10")
	if len(s.Props) != 1 || s.Props["width"] != float64(10) {
		t.Errorf("expected only width to survive, got %+v", s.Props)
	}
}

func TestParse_FlexShorthand(t *testing.T) {
	tests := map[string]struct {
		text  string
		grow  float64
		shrink float64
		basis any
	}{
		"auto":        {"flex: auto", 1, 1, "auto"},
		"none":        {"flex: none", 0, 0, "auto"},
		"initial":     {"flex: initial", 0, 1, "auto"},
		"single grow": {"flex: 2", 2, 1, float64(0)},
		"grow+shrink": {"flex: 2 3", 2, 3, float64(0)},
		"grow+basis":  {"flex: 2 30%", 2, 1, "30%"},
		"three token": {"flex: 2 3 40", 2, 3, float64(40)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := Parse(tt.text)
			if s.Props["flexGrow"] != tt.grow {
				t.Errorf("flexGrow = %v, want %v", s.Props["flexGrow"], tt.grow)
			}
			if s.Props["flexShrink"] != tt.shrink {
				t.Errorf("flexShrink = %v, want %v", s.Props["flexShrink"], tt.shrink)
			}
			if s.Props["flexBasis"] != tt.basis {
				t.Errorf("flexBasis = %v, want %v", s.Props["flexBasis"], tt.basis)
			}
		})
	}
}

func TestParse_MultilineBlock(t *testing.T) {
	s := Parse("display: vertical;\npadding: 20;\ngap: 10 !important;\nfitContent: true")
	if s.Props["display"] != "vertical" {
		t.Errorf("display = %v", s.Props["display"])
	}
	if s.Props["gap"] != float64(10) || !s.Important["gap"] {
		t.Errorf("gap = %v, important=%v", s.Props["gap"], s.Important["gap"])
	}
	if s.Props["fitContent"] != "true" {
		t.Errorf("fitContent = %v, want \"true\"", s.Props["fitContent"])
	}
}
