package pgraster

import (
	"encoding/binary"
	"fmt"
	"math"
)

// byteReader is a bounds-checked cursor over a raster WKB buffer. The byte
// order is fixed once, from the endianness marker at offset 0; every read
// advances the cursor by exactly the width of the value read, and a read
// past the end of the buffer fails with ErrBufferUnderrun instead of
// observing bytes beyond the declared length.
type byteReader struct {
	ord  binary.ByteOrder
	data []byte
	i    int
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{ord: binary.BigEndian, data: data}
}

func (r *byteReader) need(n int) error {
	if rem := len(r.data) - r.i; rem < n {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrBufferUnderrun, n, r.i, rem)
	}
	return nil
}

func (r *byteReader) uint8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.data[r.i]
	r.i++
	return v, nil
}

func (r *byteReader) uint16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := r.ord.Uint16(r.data[r.i:])
	r.i += 2
	return v, nil
}

func (r *byteReader) uint32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := r.ord.Uint32(r.data[r.i:])
	r.i += 4
	return v, nil
}

// int32 reinterprets the uint32 bit pattern; the cast is the point.
func (r *byteReader) int32() (int32, error) {
	v, err := r.uint32()
	return int32(v), err
}

// float64 rebuilds the IEEE-754 double from 8 raw bytes in the stream's
// byte order, not the host's.
func (r *byteReader) float64() (float64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := math.Float64frombits(r.ord.Uint64(r.data[r.i:]))
	r.i += 8
	return v, nil
}

func (r *byteReader) bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	v := r.data[r.i : r.i+n]
	r.i += n
	return v, nil
}

func (r *byteReader) skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.i += n
	return nil
}

// byteWriter fills a preallocated buffer; the encoder sizes the buffer
// exactly, so writes never grow it.
type byteWriter struct {
	ord  binary.ByteOrder
	data []byte
	i    int
}

func newByteWriter(ord binary.ByteOrder, data []byte) *byteWriter {
	return &byteWriter{ord: ord, data: data}
}

func (w *byteWriter) uint8(v uint8) {
	w.data[w.i] = v
	w.i++
}

func (w *byteWriter) uint16(v uint16) {
	w.ord.PutUint16(w.data[w.i:], v)
	w.i += 2
}

func (w *byteWriter) int32(v int32) {
	w.ord.PutUint32(w.data[w.i:], uint32(v))
	w.i += 4
}

func (w *byteWriter) float64(v float64) {
	w.ord.PutUint64(w.data[w.i:], math.Float64bits(v))
	w.i += 8
}
