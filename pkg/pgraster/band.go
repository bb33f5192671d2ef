package pgraster

// Band-type byte layout, bit 7 = MSB: bits [3:0] carry the pixel-type code,
// bit 7 flags out-of-database storage, bit 6 a declared nodata value, bit 5
// an all-nodata band. Bit 4 is reserved and ignored.
const (
	bandPixTypeMask   = 0x0F
	bandFlagOffline   = 1 << 7
	bandFlagHasNodata = 1 << 6
	bandFlagIsNodata  = 1 << 5
)

// bandType is the one-byte band descriptor that precedes each band's data.
// It is constructed fresh per band and consumed immediately.
type bandType byte

func (b bandType) pixelType() PixelType {
	return PixelType(b & bandPixTypeMask)
}

func (b bandType) isOffline() bool {
	return b&bandFlagOffline != 0
}

func (b bandType) hasNodata() bool {
	return b&bandFlagHasNodata != 0
}

func (b bandType) isNodata() bool {
	return b&bandFlagIsNodata != 0
}
