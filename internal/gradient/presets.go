package gradient

import (
	"fmt"
	"sort"
)

// Preset gradient names.
const (
	PresetTemperature  = "temperature"
	PresetColor        = "color"
	PresetTint         = "tint"
	PresetGrey         = "grey"
	PresetButton       = "button"
	PresetChannelRed   = "channel_red"
	PresetChannelGreen = "channel_green"
	PresetChannelBlue  = "channel_blue"
)

// presets holds the stock gradients of the light properties panel, packed
// from their #rrggbb definitions with opaque alpha.
var presets = map[string][]Color{
	PresetTemperature: {
		0xFF000AFE, // #fe0a00
		0xFF67F4F4, // #f4f467
		0xFFEAB9A8, // #a8b9ea
		0xFFAC4F2C, // #2c4fac
		0xFF834427, // #274483
		0xFF4E331F, // #1f334e
	},
	PresetColor: {
		0xFF0504FA, // #fa0405
		0xFF8C6695, // #95668c
		0xFFB4534B, // #4b53b4
		0xFF87C233, // #33c287
		0xFF21E59F, // #9fe521
		0xFF0002FF, // #ff0200
	},
	PresetTint: {
		0xFF921D1D, // #1d1d92
		0xFFC97E7E, // #7e7ec9
		0xFFFFFFFF, // #ffffff
	},
	PresetGrey: {
		0xFF020202, // #020202
		0xFF525252, // #525252
		0xFFFFFFFF, // #ffffff
	},
	PresetButton: {
		0xFF232323, // #232323
		0xFF656565, // #656565
	},
	PresetChannelRed: {
		0xFF242320, // #202324
		0xFF6060AC, // #ac6060
	},
	PresetChannelGreen: {
		0xFF242320, // #202324
		0xFF7CAB60, // #60ab7c
	},
	PresetChannelBlue: {
		0xFF242320, // #202324
		0xFF9E8835, // #35889e
	},
}

// Preset returns the named stock gradient.
func Preset(name string) (Gradient, error) {
	stops, ok := presets[name]
	if !ok {
		return Gradient{}, fmt.Errorf("unknown gradient preset %q", name)
	}
	return FromStops(stops)
}

// MustPreset is Preset for names known at compile time.
func MustPreset(name string) Gradient {
	g, err := Preset(name)
	if err != nil {
		panic(err)
	}
	return g
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
