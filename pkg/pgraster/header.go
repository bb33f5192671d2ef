package pgraster

import (
	"encoding/binary"
	"fmt"
)

// headerSize is the fixed byte length of the raster header: endianness
// marker, version, band count, six geotransform doubles, srid, width and
// height.
const headerSize = 61

// Header is the fixed-size header of a raster WKB value. Band count is not
// validated here; Decode rejects unsupported counts only after the header
// is fully read, so dimensions and extent stay available for diagnostics.
type Header struct {
	Version  uint16
	NumBands uint16
	ScaleX   float64
	ScaleY   float64
	IPX      float64 // insertion point: world X of the top-left corner
	IPY      float64
	SkewX    float64
	SkewY    float64
	SRID     int32
	Width    uint16
	Height   uint16
}

// Extent returns the georeferenced rectangle covered by the raster:
// (IPX, IPY) to (IPX + Width·ScaleX, IPY + Height·ScaleY), exactly as the
// geotransform defines it. For north-up rasters ScaleY is negative and Y1
// lies below Y0; no normalization is applied.
func (h Header) Extent() Extent {
	return Extent{
		X0: h.IPX,
		Y0: h.IPY,
		X1: h.IPX + float64(h.Width)*h.ScaleX,
		Y1: h.IPY + float64(h.Height)*h.ScaleY,
	}
}

// DecodeHeader parses only the raster header from data. It fails with
// ErrUnsupportedVersion, ErrUnsupportedRotation or ErrBufferUnderrun under
// the same conditions as Decode.
func DecodeHeader(data []byte) (Header, error) {
	return decodeHeader(newByteReader(data))
}

// decodeHeader reads the header fail-fast: once a field fails validation no
// further bytes are consumed.
func decodeHeader(r *byteReader) (Header, error) {
	var h Header

	endian, err := r.uint8()
	if err != nil {
		return h, err
	}
	if endian != 0 {
		r.ord = binary.LittleEndian
	}

	if h.Version, err = r.uint16(); err != nil {
		return h, err
	}
	if h.Version != 0 {
		Logger().Warn("raster wkb version unsupported", "version", h.Version)
		return h, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}

	if h.NumBands, err = r.uint16(); err != nil {
		return h, err
	}
	if h.ScaleX, err = r.float64(); err != nil {
		return h, err
	}
	if h.ScaleY, err = r.float64(); err != nil {
		return h, err
	}
	if h.IPX, err = r.float64(); err != nil {
		return h, err
	}
	if h.IPY, err = r.float64(); err != nil {
		return h, err
	}
	if h.SkewX, err = r.float64(); err != nil {
		return h, err
	}
	if h.SkewY, err = r.float64(); err != nil {
		return h, err
	}
	if h.SkewX != 0 || h.SkewY != 0 {
		Logger().Warn("rotated raster unsupported", "skewX", h.SkewX, "skewY", h.SkewY)
		return h, fmt.Errorf("%w: skew %g,%g", ErrUnsupportedRotation, h.SkewX, h.SkewY)
	}

	if h.SRID, err = r.int32(); err != nil {
		return h, err
	}
	if h.Width, err = r.uint16(); err != nil {
		return h, err
	}
	if h.Height, err = r.uint16(); err != nil {
		return h, err
	}

	Logger().Debug("raster header",
		"numBands", h.NumBands,
		"scaleX", h.ScaleX, "scaleY", h.ScaleY,
		"ipX", h.IPX, "ipY", h.IPY,
		"srid", h.SRID,
		"width", h.Width, "height", h.Height)

	return h, nil
}
