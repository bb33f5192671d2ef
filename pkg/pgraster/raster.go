package pgraster

import (
	"fmt"
	"image"
	"image/color"
)

// Extent is a georeferenced rectangle. (X0, Y0) is the raster origin and
// (X1, Y1) the opposite corner; when ScaleY is negative Y1 < Y0.
type Extent struct {
	X0, Y0, X1, Y1 float64
}

func (e Extent) String() string {
	return fmt.Sprintf("Extent(%g %g, %g %g)", e.X0, e.Y0, e.X1, e.Y1)
}

// Raster is a decoded raster: a tightly packed row-major RGBA pixel buffer
// (top row first) with its georeferenced extent. Alpha is premultiplied.
// The value is owned by the caller; the decoder keeps no reference to it.
// It implements image.Image.
type Raster struct {
	extent        Extent
	srid          int32
	width, height int
	pix           []uint8
	premultiplied bool
}

// newRaster allocates the pixel buffer prefilled fully opaque white: every
// byte 0xFF, so the initial image is plain white under either RGBA or ABGR
// channel interpretation and the alpha byte never needs touching.
func newRaster(h Header) *Raster {
	pix := make([]uint8, int(h.Width)*int(h.Height)*4)
	for i := range pix {
		pix[i] = 0xFF
	}
	return &Raster{
		extent:        h.Extent(),
		srid:          h.SRID,
		width:         int(h.Width),
		height:        int(h.Height),
		pix:           pix,
		premultiplied: true,
	}
}

// Extent returns the georeferenced rectangle covered by the raster.
func (r *Raster) Extent() Extent {
	return r.extent
}

// SRID returns the spatial reference identifier carried in the header. It
// is passed through undecoded and unvalidated.
func (r *Raster) SRID() int32 {
	return r.srid
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the raster height in pixels.
func (r *Raster) Height() int {
	return r.height
}

// Pix returns the raw pixel data: width·height 4-byte RGBA pixels,
// row-major, top row first.
func (r *Raster) Pix() []uint8 {
	return r.pix
}

// AlphaPremultiplied reports whether the pixel buffer carries premultiplied
// alpha. Always true for rasters produced by Decode.
func (r *Raster) AlphaPremultiplied() bool {
	return r.premultiplied
}

// ToImage copies the pixel buffer into a standalone image.RGBA.
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	copy(img.Pix, r.pix)
	return img
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return color.RGBA{}
	}
	i := (y*r.width + x) * 4
	return color.RGBA{R: r.pix[i+0], G: r.pix[i+1], B: r.pix[i+2], A: r.pix[i+3]}
}
