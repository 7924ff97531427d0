package assets

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"

	"clawgen/icon"
)

const faviconSize = 48

// WriteFavicons encodes favicon.ico into public and dist, downscaled from
// the square logo.
func (l Layout) WriteFavicons() ([]Written, error) {
	fav := Scale(icon.Render(icon.LogoSize), faviconSize)

	var buf bytes.Buffer
	if err := ico.Encode(&buf, fav); err != nil {
		return nil, fmt.Errorf("encode favicon: %w", err)
	}

	var out []Written
	for _, dir := range []string{l.Public(), l.Dist()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return out, fmt.Errorf("create %s: %w", dir, err)
		}
		path := filepath.Join(dir, "favicon.ico")
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return out, fmt.Errorf("write %s: %w", path, err)
		}
		out = append(out, Written{Path: path, Size: faviconSize, Bytes: buf.Len()})
	}
	return out, nil
}

// Scale resizes src to a size×size square with Catmull-Rom resampling.
func Scale(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
