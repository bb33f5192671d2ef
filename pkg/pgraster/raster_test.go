package pgraster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterImplementsImage(t *testing.T) {
	t.Parallel()

	var _ image.Image = (*Raster)(nil)

	data := buildWKB(grayHeader(2, 1), true, testBand{typ: 0x04, samples: []byte{0x7F, 0x00}})
	ras, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, color.RGBAModel, ras.ColorModel())
	assert.Equal(t, image.Rect(0, 0, 2, 1), ras.Bounds())
	assert.Equal(t, color.RGBA{R: 0x7F, G: 0x7F, B: 0x7F, A: 0xFF}, ras.At(0, 0))
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 0, A: 0xFF}, ras.At(1, 0))
	assert.Equal(t, color.RGBA{}, ras.At(-1, 0))
	assert.Equal(t, color.RGBA{}, ras.At(2, 0))
	assert.Equal(t, color.RGBA{}, ras.At(0, 1))
}

func TestRasterToImage(t *testing.T) {
	t.Parallel()

	data := buildWKB(grayHeader(2, 2), true, testBand{typ: 0x04, samples: []byte{1, 2, 3, 4}})
	ras, err := Decode(data)
	require.NoError(t, err)

	img := ras.ToImage()
	assert.Equal(t, ras.Bounds(), img.Bounds())
	assert.Equal(t, ras.Pix(), []uint8(img.Pix))

	// The copy is independent of the raster's buffer.
	img.Pix[0] = 0xEE
	assert.Equal(t, uint8(1), ras.Pix()[0])
}

func TestExtentString(t *testing.T) {
	t.Parallel()

	e := Extent{X0: -180, Y0: 90, X1: 180, Y1: -90}
	assert.Equal(t, "Extent(-180 90, 180 -90)", e.String())
}
