package pgraster

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
)

// Option configures a single Decode call.
type Option func(*decoder)

// WithLegacyBandSkip restores the historical handling of unsupported and
// offline bands in multi-band rasters: the band's pixel payload is left
// unconsumed, so every later band is read from the wrong offset. By default
// the payload is skipped and later bands stay aligned. Use this only when
// bit-for-bit compatibility with the legacy reader matters more than the
// remaining bands.
func WithLegacyBandSkip() Option {
	return func(d *decoder) { d.legacySkip = true }
}

type decoder struct {
	legacySkip bool
}

// Decode parses one raster WKB value. Unsupported versions, rotated
// rasters, band counts other than 1 or 3 and truncated buffers fail with a
// typed error; an offline band or a band with an undecodable pixel type is
// not an error, it only leaves that band's channel at opaque white.
//
// Decode never mutates data and the returned raster holds no reference to
// it, so independent buffers may be decoded concurrently.
func Decode(data []byte, opts ...Option) (*Raster, error) {
	var d decoder
	for _, opt := range opts {
		opt(&d)
	}

	r := newByteReader(data)
	h, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}

	switch h.NumBands {
	case 1, 3:
	default:
		Logger().Warn("raster band count unsupported",
			"numBands", h.NumBands,
			"width", h.Width, "height", h.Height,
			"extent", h.Extent())
		return nil, fmt.Errorf("%w: %d bands", ErrUnsupportedBandCount, h.NumBands)
	}

	ras := newRaster(h)
	if h.NumBands == 1 {
		err = d.readGrayscale(r, h, ras)
	} else {
		err = d.readRGB(r, h, ras)
	}
	if err != nil {
		return nil, err
	}
	return ras, nil
}

// DecodeHex decodes a hex-encoded raster WKB value, the form PostGIS emits
// over the text protocol. Whitespace is ignored.
func DecodeHex(s string, opts ...Option) (*Raster, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding hex raster: %w", err)
	}
	return Decode(data, opts...)
}

// readBandHeader consumes the two-byte band header: the band-type byte and
// the one-byte nodata value, which is present on the wire unconditionally.
func readBandHeader(r *byteReader) (bandType, uint8, error) {
	b, err := r.uint8()
	if err != nil {
		return 0, 0, err
	}
	nodata, err := r.uint8()
	if err != nil {
		return 0, 0, err
	}
	return bandType(b), nodata, nil
}

// skipBand moves the cursor past an undecodable band's pixel payload, or
// leaves it in place in legacy mode.
func (d *decoder) skipBand(r *byteReader, h Header) error {
	if d.legacySkip {
		return nil
	}
	return r.skip(int(h.Width) * int(h.Height))
}

// readGrayscale decodes the single band of a one-band raster, writing each
// sample to the red, green and blue bytes of its pixel. The alpha byte is
// never touched; it keeps the opaque prefill.
func (d *decoder) readGrayscale(r *byteReader, h Header, ras *Raster) error {
	bt, nodata, err := readBandHeader(r)
	if err != nil {
		return err
	}
	Logger().Debug("band header",
		"pixtype", bt.pixelType(),
		"offline", bt.isOffline(),
		"hasnodata", bt.hasNodata())

	if bt.isOffline() {
		Logger().Warn("offline band unsupported")
		return d.skipBand(r, h)
	}
	if !bt.pixelType().is8Bit() {
		Logger().Warn("band pixel type unsupported", "pixtype", bt.pixelType())
		return d.skipBand(r, h)
	}
	if bt.hasNodata() {
		Logger().Warn("nodata value unsupported", "nodata", nodata)
	}

	samples, err := r.bytes(int(h.Width) * int(h.Height))
	if err != nil {
		return err
	}
	pix := ras.pix
	for i, v := range samples {
		off := i * 4
		pix[off+0] = v
		pix[off+1] = v
		pix[off+2] = v
	}
	return nil
}

// readRGB decodes the three bands of an RGB raster in order, writing band
// n's samples to byte position n of each pixel. Band 0's nodata value is
// canonical; the values from bands 1 and 2 are only checked against it for
// consistency and never affect output pixels.
func (d *decoder) readRGB(r *byteReader, h Header, ras *Raster) error {
	var nodata0 uint8
	for bn := 0; bn < int(h.NumBands); bn++ {
		bt, nodata, err := readBandHeader(r)
		if err != nil {
			return err
		}
		Logger().Debug("band header",
			"band", bn,
			"pixtype", bt.pixelType(),
			"offline", bt.isOffline(),
			"hasnodata", bt.hasNodata())

		if bn == 0 {
			nodata0 = nodata
		} else if nodata != nodata0 {
			Logger().Warn("band nodata differs from band 0",
				"band", bn, "nodata", nodata, "band0", nodata0)
		}

		if bt.isOffline() {
			Logger().Warn("offline band unsupported", "band", bn)
			if err := d.skipBand(r, h); err != nil {
				return err
			}
			continue
		}
		if !bt.pixelType().is8Bit() {
			Logger().Warn("band pixel type unsupported", "band", bn, "pixtype", bt.pixelType())
			if err := d.skipBand(r, h); err != nil {
				return err
			}
			continue
		}

		samples, err := r.bytes(int(h.Width) * int(h.Height))
		if err != nil {
			return err
		}
		pix := ras.pix
		for i, v := range samples {
			pix[i*4+bn] = v
		}
	}
	return nil
}
