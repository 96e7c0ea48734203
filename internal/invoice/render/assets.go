package render

import (
	"bytes"
	"image"

	// Raster formats accepted for logo and signature uploads.
	_ "image/jpeg"
	_ "image/png"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
)

// imageAsset is a fully decoded, embeddable image.
type imageAsset struct {
	data []byte
	ext  extension.Type
}

// decodeAsset validates raw image bytes by decoding them completely and maps
// the detected format onto the embedder's extension type. It returns nil for
// empty, undecodable, or unsupported data, which callers treat as "asset
// absent".
func decodeAsset(raw []byte) *imageAsset {
	if len(raw) == 0 {
		return nil
	}

	_, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil
	}

	var ext extension.Type
	switch format {
	case "png":
		ext = extension.Png
	case "jpeg":
		ext = extension.Jpg
	default:
		return nil
	}

	return &imageAsset{data: raw, ext: ext}
}
