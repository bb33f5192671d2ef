// Package pgraster decodes the PostGIS raster well-known-binary (WKB) wire
// format into an in-memory RGBA image.
//
// The format is a fixed 61-byte header (endianness marker, version, band
// count, geotransform, srid, dimensions) followed by one record per band.
// Byte order for every multi-byte field is chosen by the first byte of the
// buffer. Only flat (zero skew) rasters with one grayscale band or three
// RGB bands of 8-bit samples are decoded; everything else the format can
// carry is recognized for diagnostics but rejected or skipped.
package pgraster

import "errors"

// PixelType is the storage type of one raster band, from the low nibble of
// the band-type byte.
type PixelType uint8

const (
	PT1BB   PixelType = 0  // 1-bit boolean
	PT2BUI  PixelType = 1  // 2-bit unsigned integer
	PT4BUI  PixelType = 2  // 4-bit unsigned integer
	PT8BSI  PixelType = 3  // 8-bit signed integer
	PT8BUI  PixelType = 4  // 8-bit unsigned integer
	PT16BSI PixelType = 5  // 16-bit signed integer
	PT16BUI PixelType = 6  // 16-bit unsigned integer
	PT32BSI PixelType = 7  // 32-bit signed integer
	PT32BUI PixelType = 8  // 32-bit unsigned integer
	PT32BF  PixelType = 10 // 32-bit float
	PT64BF  PixelType = 11 // 64-bit float
	PTEnd   PixelType = 13 // end marker
)

// is8Bit reports whether samples of this type are single bytes. Only these
// band types have their pixel payload decoded.
func (t PixelType) is8Bit() bool {
	return t == PT8BSI || t == PT8BUI
}

func (t PixelType) String() string {
	switch t {
	case PT1BB:
		return "1BB"
	case PT2BUI:
		return "2BUI"
	case PT4BUI:
		return "4BUI"
	case PT8BSI:
		return "8BSI"
	case PT8BUI:
		return "8BUI"
	case PT16BSI:
		return "16BSI"
	case PT16BUI:
		return "16BUI"
	case PT32BSI:
		return "32BSI"
	case PT32BUI:
		return "32BUI"
	case PT32BF:
		return "32BF"
	case PT64BF:
		return "64BF"
	case PTEnd:
		return "END"
	}
	return "unknown"
}

var (
	ErrUnsupportedVersion   = errors.New("unsupported wkb version")
	ErrUnsupportedRotation  = errors.New("raster rotation is not supported")
	ErrUnsupportedBandCount = errors.New("unsupported band count")
	ErrBufferUnderrun       = errors.New("buffer underrun")
)
