package render

import (
	"image/color"
	"strings"

	"github.com/opd-ai/go-proppanel/internal/gradient"
	"github.com/opd-ai/go-proppanel/internal/panel"
	"github.com/opd-ai/go-proppanel/internal/style"
)

// Theme is a style sheet resolved into the colors and metrics the renderer
// draws with.
type Theme struct {
	Background  color.RGBA
	Line        color.RGBA
	GroupCircle color.RGBA

	HeaderText       color.RGBA
	LabelText        color.RGBA
	LabelHovered     color.RGBA
	LabelAlign       string
	ChannelText      [3]color.RGBA
	FieldText        color.RGBA
	FieldBackground  color.RGBA
	FontSize         float64
	HeaderImageColor color.RGBA

	SliderBackground color.RGBA
	SliderFill       color.RGBA
	GradientRadius   float64

	Changed color.RGBA
	Default color.RGBA

	ComboText       color.RGBA
	ComboBackground color.RGBA

	HandleBorder      color.RGBA
	HandleBorderWidth float64
}

// NewTheme resolves sheet. Properties the sheet does not set fall back to
// the default palette.
func NewTheme(sheet *style.Sheet) Theme {
	if sheet == nil {
		sheet = style.DefaultSheet()
	}
	get := func(kind, name, key string, fallback gradient.Color) color.RGBA {
		return sheet.Resolve(kind, name, "").ColorOr(key, fallback).RGBA()
	}

	label := sheet.Resolve("Label", "attribute_name", "")
	align, ok := label.Text("alignment")
	if !ok {
		align = "right_center"
	}

	return Theme{
		Background:  get("ScrollingFrame", "main_frame", "background_color", style.ColorMainBackground),
		Line:        get("Line", "group_line", "color", style.ColorLine),
		GroupCircle: get("Circle", "group_circle", "background_color", style.ColorLine),

		HeaderText: get("Label", "collapsable_name", "color", style.ColorText),
		LabelText:  label.ColorOr("color", style.ColorText).RGBA(),
		LabelHovered: sheet.Resolve("Label", "attribute_name", "hovered").
			ColorOr("color", style.ColorTextHovered).RGBA(),
		LabelAlign: align,
		ChannelText: [3]color.RGBA{
			get("Label", "attribute_r", "color", style.ColorAttributeRed),
			get("Label", "attribute_g", "color", style.ColorAttributeGreen),
			get("Label", "attribute_b", "color", style.ColorAttributeBlue),
		},
		FieldText:        get("Field", "add", "color", style.ColorText),
		FieldBackground:  get("Button", "add", "background_color", style.ColorWidgetBackground),
		FontSize:         sheet.Resolve("Field", "add", "").FloatOr("font_size", defaultFontSize),
		HeaderImageColor: get("Image", "collapsable_opened", "color", style.ColorText),

		SliderBackground: get("Slider", "float_slider", "background_color", style.ColorWidgetBackground),
		SliderFill:       get("Slider", "float_slider", "secondary_color", style.ColorSlider),
		GradientRadius:   sheet.Resolve("ImageWithProvider", "gradient_slider", "").FloatOr("border_radius", 0),

		Changed: get("Rectangle", "attribute_changed", "background_color", style.ColorAttributeChanged),
		Default: get("Rectangle", "attribute_default", "background_color", style.ColorAttributeDefault),

		ComboText:       get("ComboBox", "dropdown_menu", "color", style.ColorText),
		ComboBackground: get("ComboBox", "dropdown_menu", "background_color", style.ColorComboBackground),

		HandleBorder:      get("Circle", "slider_handle", "border_color", style.ColorComboBackground),
		HandleBorderWidth: sheet.Resolve("Circle", "slider_handle", "").FloatOr("border_width", 2),
	}
}

// Align places a w x h box inside box according to an alignment name such
// as "left_center" or "right_bottom". Unknown parts default to left and
// center.
func Align(alignment string, box panel.Rect, w, h float64) (x, y float64) {
	horiz, vert, _ := strings.Cut(alignment, "_")
	switch horiz {
	case "right":
		x = box.X + box.W - w
	case "center":
		x = box.X + (box.W-w)/2
	default:
		x = box.X
	}
	switch vert {
	case "top":
		y = box.Y
	case "bottom":
		y = box.Y + box.H - h
	default:
		y = box.Y + (box.H-h)/2
	}
	return x, y
}
