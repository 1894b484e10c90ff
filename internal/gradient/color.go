// Package gradient maps scalar positions onto color gradients for slider-style
// widgets. It packs colors into 32-bit integers, interpolates between stops and
// materializes gradients into 1xN pixel strips for display.
//
// The arithmetic reproduces existing renders bit for bit: channels are
// interpolated with truncation, and the raw position along the whole gradient is
// used as the interpolation parameter inside the selected segment.
package gradient

import (
	"fmt"
	"image/color"
)

// Color is a packed RGBA color. Red occupies the least significant byte,
// followed by green, blue and alpha: R | G<<8 | B<<16 | A<<24.
type Color uint32

// Pack packs four 8-bit channels into a Color.
func Pack(r, g, b, a uint8) Color {
	return Color(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// Unpack splits a Color into its four 8-bit channels. It is the exact inverse of Pack.
func Unpack(c Color) (r, g, b, a uint8) {
	return uint8(c & 0xFF), uint8((c >> 8) & 0xFF), uint8((c >> 16) & 0xFF), uint8((c >> 24) & 0xFF)
}

// FromRGBA packs a non-premultiplied image/color.RGBA value.
func FromRGBA(c color.RGBA) Color {
	return Pack(c.R, c.G, c.B, c.A)
}

// RGBA returns the color as an image/color.RGBA value.
// The channels are copied as-is; no premultiplication is applied.
func (c Color) RGBA() color.RGBA {
	r, g, b, a := Unpack(c)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// Channels returns the four channels in R, G, B, A order.
func (c Color) Channels() [4]uint8 {
	r, g, b, a := Unpack(c)
	return [4]uint8{r, g, b, a}
}

// String formats the color as #RRGGBBAA.
func (c Color) String() string {
	r, g, b, a := Unpack(c)
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}

// Interpolate blends low towards high by t, channel by channel:
//
//	channel = int((high - low) * t) + low
//
// The conversion truncates toward zero rather than rounding, which equals
// floor whenever high >= low on a channel. t is not clamped;
// values outside [0, 1] extrapolate and the result is wrapped to 8 bits.
func Interpolate(low, high Color, t float64) Color {
	lo := low.Channels()
	hi := high.Channels()

	var out [4]uint8
	for i := range out {
		delta := float64(int(hi[i]) - int(lo[i]))
		out[i] = uint8(int(delta*t) + int(lo[i]))
	}
	return Pack(out[0], out[1], out[2], out[3])
}
