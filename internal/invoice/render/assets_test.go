package render

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 120, A: 255})
		}
	}
	return img
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage()))
	return buf.Bytes()
}

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(), nil))
	return buf.Bytes()
}

func TestDecodeAsset(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		asset := decodeAsset(pngBytes(t))
		require.NotNil(t, asset)
		assert.Equal(t, extension.Png, asset.ext)
	})

	t.Run("jpeg", func(t *testing.T) {
		asset := decodeAsset(jpegBytes(t))
		require.NotNil(t, asset)
		assert.Equal(t, extension.Jpg, asset.ext)
	})

	t.Run("garbage is treated as absent", func(t *testing.T) {
		assert.Nil(t, decodeAsset([]byte("definitely not an image")))
	})

	t.Run("empty is absent", func(t *testing.T) {
		assert.Nil(t, decodeAsset(nil))
	})
}

func TestWrappedLineCount(t *testing.T) {
	t.Run("short text fits one line", func(t *testing.T) {
		assert.Equal(t, 1, wrappedLineCount("Hosting", 90, 9))
	})

	t.Run("empty text still occupies a line", func(t *testing.T) {
		assert.Equal(t, 1, wrappedLineCount("", 90, 9))
	})

	t.Run("long text wraps", func(t *testing.T) {
		long := ""
		for i := 0; i < 30; i++ {
			long += "architecture "
		}
		assert.Greater(t, wrappedLineCount(long, 90, 9), 1)
	})

	t.Run("narrower column wraps more", func(t *testing.T) {
		text := "managed kubernetes cluster operations and incident response retainer"
		assert.GreaterOrEqual(t,
			wrappedLineCount(text, 40, 9),
			wrappedLineCount(text, 90, 9),
		)
	})

	t.Run("wide glyphs occupy more lines than narrow ones", func(t *testing.T) {
		wide := strings.Repeat("WWWWWWWWWW ", 18)
		narrow := strings.Repeat("iiiiiiiiii ", 18)
		assert.Greater(t,
			wrappedLineCount(wide, 90, 9),
			wrappedLineCount(narrow, 90, 9),
		)
	})
}
