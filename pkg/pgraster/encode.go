package pgraster

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
)

// GeoRef positions an encoded raster in space. A zero extent places the
// raster in pixel coordinates: (0,0)-(width,height).
type GeoRef struct {
	Extent Extent
	SRID   int32
}

// Encode writes img as a three-band RGB raster WKB value with 8-bit
// unsigned samples, the layout Decode reads back. Output is always
// little-endian, version 0, zero skew; alpha is dropped. The per-pixel
// scale is derived from the extent and the image dimensions.
func Encode(w io.Writer, img image.Image, geo GeoRef) error {
	return encode(w, img, geo, false)
}

// EncodeGray writes img as a single-band grayscale raster WKB value with
// 8-bit unsigned samples, converting colors through color.GrayModel.
func EncodeGray(w io.Writer, img image.Image, geo GeoRef) error {
	return encode(w, img, geo, true)
}

func encode(w io.Writer, img image.Image, geo GeoRef, gray bool) error {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width > math.MaxUint16 || height > math.MaxUint16 {
		return fmt.Errorf("image %dx%d exceeds raster dimension limit %d", width, height, math.MaxUint16)
	}

	if geo.Extent == (Extent{}) {
		geo.Extent = Extent{X1: float64(width), Y1: float64(height)}
	}
	var scaleX, scaleY float64
	if width > 0 {
		scaleX = (geo.Extent.X1 - geo.Extent.X0) / float64(width)
	}
	if height > 0 {
		scaleY = (geo.Extent.Y1 - geo.Extent.Y0) / float64(height)
	}

	bands := 3
	if gray {
		bands = 1
	}

	buf := make([]byte, headerSize+bands*(2+width*height))
	bw := newByteWriter(binary.LittleEndian, buf)
	bw.uint8(1) // little-endian marker
	bw.uint16(0)
	bw.uint16(uint16(bands))
	bw.float64(scaleX)
	bw.float64(scaleY)
	bw.float64(geo.Extent.X0)
	bw.float64(geo.Extent.Y0)
	bw.float64(0)
	bw.float64(0)
	bw.int32(geo.SRID)
	bw.uint16(uint16(width))
	bw.uint16(uint16(height))

	if gray {
		bw.uint8(uint8(PT8BUI))
		bw.uint8(0) // nodata
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
				bw.uint8(g.Y)
			}
		}
	} else {
		for bn := 0; bn < bands; bn++ {
			bw.uint8(uint8(PT8BUI))
			bw.uint8(0) // nodata
			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
					switch bn {
					case 0:
						bw.uint8(c.R)
					case 1:
						bw.uint8(c.G)
					default:
						bw.uint8(c.B)
					}
				}
			}
		}
	}

	_, err := w.Write(buf)
	return err
}
