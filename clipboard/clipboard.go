// Package clipboard puts generated assets on the system clipboard.
package clipboard

import (
	"image"

	cb "github.com/atotto/clipboard"

	"clawgen/assets"
)

func Read() (string, error) {
	return cb.ReadAll()
}

func Copy(text string) error {
	return cb.WriteAll(text)
}

// CopyImage copies img as a base64 PNG data URI.
func CopyImage(img image.Image) error {
	return cb.WriteAll(assets.DataURI(img))
}
