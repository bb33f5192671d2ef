package cmd

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_pgraster/pkg/pgraster"
)

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "tile.png", replaceExt("tile.wkb", ".png"))
	assert.Equal(t, "tile.png", replaceExt("tile.hex.zst", ".png"))
	assert.Equal(t, "tile.wkb", replaceExt("tile.png", ".wkb"))
	assert.Equal(t, "dir/t.png", replaceExt("dir/t.wkb.zst", ".png"))
}

func TestRasterExt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".wkb", rasterExt("a.wkb"))
	assert.Equal(t, ".hex", rasterExt("a.hex"))
	assert.Equal(t, ".hex", rasterExt("a.hex.ZST"))
	assert.Equal(t, ".wkb", rasterExt("a.wkb.zst"))
}

func TestDecodeHexDump(t *testing.T) {
	t.Parallel()

	got, err := decodeHexDump([]byte(" 00FF\n10 \t"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xFF, 0x10}, got)

	_, err = decodeHexDump([]byte("xyz"))
	require.Error(t, err)
}

func TestParseExtent(t *testing.T) {
	t.Parallel()

	e, err := parseExtent("0, -1.5, 10, 2e3")
	require.NoError(t, err)
	assert.Equal(t, pgraster.Extent{X0: 0, Y0: -1.5, X1: 10, Y1: 2000}, e)

	_, err = parseExtent("1,2,3")
	require.Error(t, err)
	_, err = parseExtent("1,2,three,4")
	require.Error(t, err)
}

func TestReadWriteRasterFile(t *testing.T) {
	t.Parallel()

	payload := []byte{0x01, 0x00, 0x00, 0xAB, 0xCD}

	t.Run("raw", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "tile.wkb")
		require.NoError(t, writeRasterFile(path, payload))
		got, err := readRasterFile(path)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("hex", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "tile.hex")
		require.NoError(t, writeRasterFile(path, payload))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, hex.EncodeToString(payload), string(raw))

		got, err := readRasterFile(path)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("zstd", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "tile.wkb.zst")
		require.NoError(t, writeRasterFile(path, payload))

		// The file really is a zstd frame, not raw bytes.
		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		zr, err := zstd.NewReader(bytes.NewReader(raw))
		require.NoError(t, err)
		defer zr.Close()

		got, err := readRasterFile(path)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("hex zstd", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "tile.hex.zst")
		require.NoError(t, writeRasterFile(path, payload))
		got, err := readRasterFile(path)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})
}
