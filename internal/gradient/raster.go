package gradient

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// Raster is a 1xN pixel strip holding one pixel per gradient stop, in stop
// order. It is only ever displayed (stretched by the consumer); color lookups
// go through MapValueToColor.
type Raster struct {
	img *image.RGBA
}

// BuildRaster materializes g into a Raster. Pixel i carries the unpacked
// channels of stop i.
func BuildRaster(g Gradient) *Raster {
	g.mustHaveStops()

	img := image.NewRGBA(image.Rect(0, 0, len(g.stops), 1))
	for i, c := range g.stops {
		r, gr, b, a := Unpack(c)
		off := i * 4
		img.Pix[off] = r
		img.Pix[off+1] = gr
		img.Pix[off+2] = b
		img.Pix[off+3] = a
	}
	return &Raster{img: img}
}

// Width returns the number of pixels, which equals the number of stops.
func (r *Raster) Width() int {
	return r.img.Rect.Dx()
}

// Height is always 1.
func (r *Raster) Height() int {
	return r.img.Rect.Dy()
}

// Image returns the backing image. Callers must not modify it.
func (r *Raster) Image() image.Image {
	return r.img
}

// Bytes returns a copy of the flat RGBA byte data, 4 bytes per pixel.
func (r *Raster) Bytes() []byte {
	out := make([]byte, len(r.img.Pix))
	copy(out, r.img.Pix)
	return out
}

// Pixel returns pixel i as a packed Color.
func (r *Raster) Pixel(i int) Color {
	off := i * 4
	p := r.img.Pix[off : off+4 : off+4]
	return Pack(p[0], p[1], p[2], p[3])
}

// Stretch scales the strip to width x height using nearest-neighbour sampling,
// the same look the host gives a stretched 1xN texture.
func (r *Raster) Stretch(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid stretch size %dx%d", width, height)
	}
	n := r.Width()
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		src := x * n / width
		c := r.Pixel(src).RGBA()
		for y := 0; y < height; y++ {
			out.SetRGBA(x, y, c)
		}
	}
	return out, nil
}

// WritePNG encodes the raster, stretched to width x height, as PNG.
// A zero width or height keeps the raster's own size.
func (r *Raster) WritePNG(w io.Writer, width, height int) error {
	if width == 0 {
		width = r.Width()
	}
	if height == 0 {
		height = r.Height()
	}
	img, err := r.Stretch(width, height)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode gradient png: %w", err)
	}
	return nil
}
