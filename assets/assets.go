// Package assets writes the rendered icon set into the extension's
// packaging trees (public/ and dist/).
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"clawgen/icon"
)

// Layout locates the extension trees under a single root directory.
type Layout struct {
	Root string
}

// Written records one emitted file.
type Written struct {
	Path  string
	Size  int // pixel edge length
	Bytes int
}

func (l Layout) Public() string      { return filepath.Join(l.Root, "public") }
func (l Layout) Dist() string        { return filepath.Join(l.Root, "dist") }
func (l Layout) PublicIcons() string { return filepath.Join(l.Public(), "icons") }
func (l Layout) DistIcons() string   { return filepath.Join(l.Dist(), "icons") }

// WriteAll renders every icon size into public/icons and dist/icons, plus
// the square logo into public and dist. Directory creation is idempotent;
// on error it returns the files written so far.
func (l Layout) WriteAll() ([]Written, error) {
	iconDirs := []string{l.PublicIcons(), l.DistIcons()}
	for _, dir := range iconDirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	var out []Written
	for _, size := range icon.Sizes {
		img := icon.Render(size)
		name := fmt.Sprintf("icon%d.png", size)
		for _, dir := range iconDirs {
			w, err := writePNG(filepath.Join(dir, name), img, size)
			if err != nil {
				return out, err
			}
			out = append(out, w)
		}
	}

	logo := icon.Render(icon.LogoSize)
	for _, dir := range []string{l.Public(), l.Dist()} {
		w, err := writePNG(filepath.Join(dir, "logo-square.png"), logo, icon.LogoSize)
		if err != nil {
			return out, err
		}
		out = append(out, w)
	}
	return out, nil
}

func writePNG(path string, img image.Image, size int) (Written, error) {
	data := EncodePNG(img)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return Written{}, fmt.Errorf("write %s: %w", path, err)
	}
	return Written{Path: path, Size: size, Bytes: len(data)}, nil
}

// EncodePNG encodes img, panicking on encoder failure.
func EncodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic("encodePNG: " + err.Error())
	}
	return buf.Bytes()
}
