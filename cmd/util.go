package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/klauspost/compress/zstd"
)

// rasterExt returns the raster file extension with any .zst suffix peeled
// off, so "tile.hex.zst" is treated as hex.
func rasterExt(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".zst") {
		path = strings.TrimSuffix(path, filepath.Ext(path))
	}
	return strings.ToLower(filepath.Ext(path))
}

// readRasterFile loads one raster WKB value from path, transparently
// decompressing .zst files and decoding .hex files.
func readRasterFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening zstd stream %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if rasterExt(path) == ".hex" {
		return decodeHexDump(data)
	}
	return data, nil
}

// writeRasterFile stores data at path, hex-encoding for .hex and
// zstd-compressing for .zst.
func writeRasterFile(path string, data []byte) error {
	if rasterExt(path) == ".hex" {
		data = []byte(hex.EncodeToString(data))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(path), ".zst") {
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return fmt.Errorf("opening zstd stream %s: %w", path, err)
		}
		if _, err := zw.Write(data); err != nil {
			zw.Close()
			f.Close()
			return err
		}
		// Close flushes the final frame; its error matters.
		if err := zw.Close(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// decodeHexDump decodes a hex dump as psql emits it: upper or lower case,
// possibly line-wrapped.
func decodeHexDump(data []byte) ([]byte, error) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, string(data))
	out, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding hex dump: %w", err)
	}
	return out, nil
}

// replaceExt swaps a path's raster extensions (including .zst stacking)
// for ext.
func replaceExt(path, ext string) string {
	if strings.EqualFold(filepath.Ext(path), ".zst") {
		path = strings.TrimSuffix(path, filepath.Ext(path))
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
