package assets

import (
	"encoding/base64"
	"image"
)

// DataURI returns img as a base64 PNG data URI, ready to embed in the
// extension's HTML or manifest.
func DataURI(img image.Image) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(EncodePNG(img))
}
