package style

import (
	"errors"
	"testing"

	"github.com/opd-ai/go-proppanel/internal/gradient"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected gradient.Color
		wantErr  bool
	}{
		{"named", "red", gradient.Pack(255, 0, 0, 255), false},
		{"named uppercase", "GREY", gradient.Pack(128, 128, 128, 255), false},
		{"transparent", "transparent", 0, false},
		{"hex6", "#fe0a00", 0xFF000AFE, false},
		{"hex6 uppercase", "#95668C", gradient.Pack(0x95, 0x66, 0x8C, 0xFF), false},
		{"hex6 without #", "1f334e", gradient.Pack(0x1f, 0x33, 0x4e, 0xFF), false},
		{"hex3", "#f0a", gradient.Pack(255, 0, 170, 255), false},
		{"hex4", "#f008", gradient.Pack(255, 0, 0, 136), false},
		{"hex8", "#11223380", gradient.Pack(0x11, 0x22, 0x33, 0x80), false},
		{"rgb", "rgb(1, 2, 3)", gradient.Pack(1, 2, 3, 255), false},
		{"rgba int alpha", "rgba(1,2,3,4)", gradient.Pack(1, 2, 3, 4), false},
		{"rgba float alpha", "rgba(1, 2, 3, 0.5)", gradient.Pack(1, 2, 3, 127), false},
		{"hsl red", "hsl(0, 1, 0.5)", gradient.Pack(255, 0, 0, 255), false},
		{"empty", "", 0, true},
		{"bad hex length", "#12345", 0, true},
		{"bad hex digits", "#zzzzzz", 0, true},
		{"rgb out of range", "rgb(256, 0, 0)", 0, true},
		{"rgb wrong arity", "rgb(1, 2)", 0, true},
		{"garbage", "not a color", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseColorMatchesPresets(t *testing.T) {
	g, err := gradient.Parse(ParseColor, "#fe0a00", "#f4f467", "#a8b9ea", "#2c4fac", "#274483", "#1f334e")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !g.Equal(gradient.MustPreset(gradient.PresetTemperature)) {
		t.Errorf("parsed temperature gradient %v differs from preset", g)
	}
}

func TestToHex(t *testing.T) {
	if got := ToHex(gradient.Pack(0xac, 0x60, 0x60, 0xff)); got != "#ac6060" {
		t.Errorf("ToHex opaque = %q", got)
	}
	if got := ToHex(gradient.Pack(1, 2, 3, 4)); got != "#01020304" {
		t.Errorf("ToHex translucent = %q", got)
	}
}

func TestParseSelector(t *testing.T) {
	tests := []struct {
		input   string
		want    Selector
		wantErr bool
	}{
		{"Slider", Selector{Kind: "Slider"}, false},
		{"Label::attribute_name", Selector{Kind: "Label", Name: "attribute_name"}, false},
		{"Label::attribute_name:hovered", Selector{Kind: "Label", Name: "attribute_name", State: "hovered"}, false},
		{"  Circle::group_circle ", Selector{Kind: "Circle", Name: "group_circle"}, false},
		{"", Selector{}, true},
		{"::name", Selector{}, true},
		{"Label::", Selector{}, true},
		{"Label::name:", Selector{}, true},
		{"Label::a:b:c", Selector{}, true},
		{"Label:name", Selector{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSelector(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSelector(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSelector) {
					t.Errorf("error %v is not ErrInvalidSelector", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseSelector(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if got.String() != trimmed(tt.input) {
				t.Errorf("String() = %q", got.String())
			}
		})
	}
}

func trimmed(s string) string {
	for len(s) > 0 && s[0] == ' ' {
		s = s[1:]
	}
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}

func TestSheetResolveCascade(t *testing.T) {
	s := NewSheet()
	s.Set(MustParseSelector("Slider"), Properties{"background_color": Col(1), "draw_mode": Str("handle")})
	s.Set(MustParseSelector("Slider::attribute_float"), Properties{"draw_mode": Str("filled"), "secondary_color": Col(2)})
	s.Set(MustParseSelector("Slider::attribute_float:hovered"), Properties{"color": Col(3)})

	props := s.Resolve("Slider", "attribute_float", "hovered")
	if c, _ := props.Color("background_color"); c != 1 {
		t.Errorf("background_color = %v, want inherited 1", c)
	}
	if m, _ := props.Text("draw_mode"); m != "filled" {
		t.Errorf("draw_mode = %q, want filled", m)
	}
	if c, _ := props.Color("color"); c != 3 {
		t.Errorf("color = %v, want 3", c)
	}

	plain := s.Resolve("Slider", "attribute_float", "")
	if _, ok := plain.Color("color"); ok {
		t.Error("state rule leaked into stateless resolution")
	}

	other := s.Resolve("Slider", "other", "hovered")
	if m, _ := other.Text("draw_mode"); m != "handle" {
		t.Errorf("other draw_mode = %q, want handle", m)
	}
	if got := s.Resolve("Label", "x", ""); len(got) != 0 {
		t.Errorf("unrelated kind resolved %v", got)
	}
}

func TestSheetMergeAndClone(t *testing.T) {
	base := NewSheet()
	base.Set(MustParseSelector("Label"), Properties{"color": Col(1), "font_size": Num(12)})

	clone := base.Clone()
	overlay := NewSheet()
	overlay.Set(MustParseSelector("Label"), Properties{"color": Col(9)})
	clone.Merge(overlay)
	clone.Merge(nil)

	props := clone.Resolve("Label", "", "")
	if c, _ := props.Color("color"); c != 9 {
		t.Errorf("merged color = %v, want 9", c)
	}
	if f, _ := props.Float("font_size"); f != 12 {
		t.Errorf("merged font_size = %v, want 12", f)
	}
	if c, _ := base.Resolve("Label", "", "").Color("color"); c != 1 {
		t.Errorf("Clone shares rules with base: color = %v", c)
	}
}

func TestSheetSelectorsOrder(t *testing.T) {
	s := NewSheet()
	for _, sel := range []string{"Label::b:hovered", "Label::a", "Button", "Label"} {
		if err := s.SetString(sel, Properties{}); err != nil {
			t.Fatalf("SetString(%q): %v", sel, err)
		}
	}
	if err := s.SetString("::bad", nil); err == nil {
		t.Error("SetString accepted a bad selector")
	}

	var got []string
	for _, sel := range s.Selectors() {
		got = append(got, sel.String())
	}
	want := []string{"Button", "Label", "Label::a", "Label::b:hovered"}
	if len(got) != len(want) {
		t.Fatalf("Selectors() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Selectors()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name     string
		property string
		raw      any
		want     Value
		wantErr  bool
	}{
		{"color string", "background_color", "#ffffff", Col(0xFFFFFFFF), false},
		{"packed color", "secondary_color", 0, Col(0), false},
		{"packed color int64", "color", int64(0xFF0000FF), Col(0xFF0000FF), false},
		{"number", "border_radius", 3.5, Num(3.5), false},
		{"int number", "font_size", 14, Num(14), false},
		{"string", "alignment", "left_center", Str("left_center"), false},
		{"bool", "visible", true, Num(1), false},
		{"bad color", "color", "nope", Value{}, true},
		{"bad type", "x", []int{1}, Value{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.property, tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseValue error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseValue = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDefaultSheet(t *testing.T) {
	s := DefaultSheet()
	if s.Len() == 0 {
		t.Fatal("default sheet is empty")
	}

	hovered := s.Resolve("Label", "attribute_name", "hovered")
	if c, _ := hovered.Color("color"); c != ColorTextHovered {
		t.Errorf("hovered label color = %v, want %v", c, ColorTextHovered)
	}
	if a, _ := hovered.Text("alignment"); a != "right_center" {
		t.Errorf("hovered label alignment = %q", a)
	}

	changed := s.Resolve("Rectangle", "attribute_changed", "")
	if got := changed.ColorOr("background_color", 0); got != ColorAttributeChanged {
		t.Errorf("changed indicator color = %v", got)
	}
	if got := changed.FloatOr("missing", 7); got != 7 {
		t.Errorf("FloatOr fallback = %v", got)
	}
}
