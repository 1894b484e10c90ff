package style

import "github.com/opd-ai/go-proppanel/internal/gradient"

// Palette of the light properties panel.
var (
	ColorAttributeDark    = MustParseColor("#202324")
	ColorAttributeRed     = MustParseColor("#ac6060")
	ColorAttributeGreen   = MustParseColor("#60ab7c")
	ColorAttributeBlue    = MustParseColor("#35889e")
	ColorLine             = MustParseColor("#404040")
	ColorTextBlue         = MustParseColor("#5eb3ff")
	ColorTextGray         = MustParseColor("#707070")
	ColorText             = MustParseColor("#a1a1a1")
	ColorTextHovered      = MustParseColor("#ffffff")
	ColorFieldText        = MustParseColor("#5f5f5f")
	ColorWidgetBackground = MustParseColor("#1f2123")
	ColorAttributeDefault = MustParseColor("#505050")
	ColorAttributeChanged = MustParseColor("#55a5e2")
	ColorSlider           = MustParseColor("#383b3e")
	ColorComboBackground  = MustParseColor("#252525")
	ColorMainBackground   = MustParseColor("#2a2b2c")
)

// Spacing constants of the default layout.
const (
	AttrHSpacing = 10
	AttrSpacing  = 1
	GroupSpacing = 5
)

const transparent gradient.Color = 0

// DefaultSheet returns the style of the light properties window.
func DefaultSheet() *Sheet {
	s := NewSheet()
	set := func(sel string, props Properties) {
		s.Set(MustParseSelector(sel), props)
	}

	set("Button::add", Properties{"background_color": Col(ColorWidgetBackground)})
	set("Field::add", Properties{"font_size": Num(14), "color": Col(ColorText)})
	set("Field::search", Properties{"font_size": Num(16), "color": Col(ColorFieldText)})
	set("Field::path", Properties{"font_size": Num(14), "color": Col(ColorFieldText)})

	set("ScrollingFrame::main_frame", Properties{"background_color": Col(ColorMainBackground)})
	group := Properties{
		"margin_height":    Num(GroupSpacing),
		"background_color": Col(transparent),
		"secondary_color":  Col(transparent),
	}
	set("CollapsableFrame::group", group)
	set("CollapsableFrame::group:hovered", group)

	set("Circle::group_circle", Properties{"background_color": Col(ColorLine)})
	set("Circle::slider_handle", Properties{
		"background_color": Col(transparent),
		"border_width":     Num(2),
		"border_color":     Col(ColorComboBackground),
	})
	set("Line::group_line", Properties{"color": Col(ColorLine)})

	set("Label::collapsable_name", Properties{"alignment": Str("left_center"), "color": Col(ColorText)})
	set("Label::attribute_bool", Properties{
		"alignment":     Str("left_bottom"),
		"margin_height": Num(AttrSpacing),
		"margin_width":  Num(AttrHSpacing),
		"color":         Col(ColorText),
	})
	set("Label::attribute_name", Properties{
		"alignment":     Str("right_center"),
		"margin_height": Num(AttrSpacing),
		"margin_width":  Num(AttrHSpacing),
		"color":         Col(ColorText),
	})
	set("Label::attribute_name:hovered", Properties{"color": Col(ColorTextHovered)})
	set("Label::header_attribute_name", Properties{"alignment": Str("left_center"), "color": Col(ColorText)})
	set("Label::details", Properties{"alignment": Str("left_center"), "color": Col(ColorTextBlue), "font_size": Num(19)})
	set("Label::layers", Properties{"alignment": Str("left_center"), "color": Col(ColorTextGray), "font_size": Num(19)})
	set("Label::attribute_r", Properties{"alignment": Str("left_center"), "color": Col(ColorAttributeRed)})
	set("Label::attribute_g", Properties{"alignment": Str("left_center"), "color": Col(ColorAttributeGreen)})
	set("Label::attribute_b", Properties{"alignment": Str("left_center"), "color": Col(ColorAttributeBlue)})

	set("Slider::float_slider", Properties{
		"background_color": Col(ColorWidgetBackground),
		"secondary_color":  Col(ColorSlider),
		"border_radius":    Num(3),
		"draw_mode":        Str("filled"),
	})

	set("Rectangle::attribute_changed", Properties{"background_color": Col(ColorAttributeChanged), "border_radius": Num(2)})
	set("Rectangle::attribute_default", Properties{"background_color": Col(ColorAttributeDefault), "border_radius": Num(1)})

	set("Image::collapsable_opened", Properties{"color": Col(ColorText)})
	set("Image::collapsable_closed", Properties{"color": Col(ColorText)})

	set("ComboBox::dropdown_menu", Properties{
		"color":            Col(ColorText),
		"background_color": Col(ColorComboBackground),
		"secondary_color":  Col(transparent),
	})

	set("ImageWithProvider::gradient_slider", Properties{"border_radius": Num(4)})
	set("ImageWithProvider::button_background_gradient", Properties{"border_radius": Num(3)})

	return s
}
