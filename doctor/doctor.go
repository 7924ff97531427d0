// Package doctor runs quick self-checks over the renderer, the output
// tree, and the clipboard.
package doctor

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"clawgen/assets"
	"clawgen/clipboard"
	"clawgen/icon"
)

// Run executes the diagnostic checks and returns an exit code (0=all pass, 1=any fail).
func Run(outDir string) int {
	fmt.Println("clawgen doctor - asset pipeline diagnostics")
	fmt.Println("===========================================")

	allPass := true

	if !checkRender() {
		allPass = false
	}
	if !checkOutputTree(outDir) {
		allPass = false
	}
	if !checkRoundTrip() {
		allPass = false
	}
	if !checkClipboard() {
		allPass = false
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
		return 0
	}
	fmt.Println("Some checks failed. See details above.")
	return 1
}

func checkRender() bool {
	fmt.Println()
	fmt.Println("[1/4] Renderer")

	sizes := append(append([]int{}, icon.Sizes...), icon.LogoSize)
	for _, size := range sizes {
		img := icon.Render(size)
		b := img.Bounds()
		if b.Dx() != size || b.Dy() != size {
			fmt.Printf("  FAIL: size %d rendered %dx%d\n", size, b.Dx(), b.Dy())
			return false
		}
	}

	first := icon.Render(128)
	second := icon.Render(128)
	if !bytes.Equal(first.Pix, second.Pix) {
		fmt.Println("  FAIL: repeated renders differ")
		return false
	}

	fmt.Println("  PASS: all sizes render deterministically")
	return true
}

func checkOutputTree(outDir string) bool {
	fmt.Println()
	fmt.Println("[2/4] Output tree")

	l := assets.Layout{Root: outDir}
	for _, dir := range []string{l.PublicIcons(), l.DistIcons()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("  FAIL: cannot create %s: %v\n", dir, err)
			return false
		}
		probe := filepath.Join(dir, ".clawgen-doctor")
		if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
			fmt.Printf("  FAIL: %s not writable: %v\n", dir, err)
			return false
		}
		os.Remove(probe)
	}

	fmt.Println("  PASS: output directories writable")
	return true
}

func checkRoundTrip() bool {
	fmt.Println()
	fmt.Println("[3/4] PNG round-trip")

	img := icon.Render(48)
	decoded, err := png.Decode(bytes.NewReader(assets.EncodePNG(img)))
	if err != nil {
		fmt.Printf("  FAIL: decode: %v\n", err)
		return false
	}
	if decoded.Bounds() != img.Bounds() {
		fmt.Printf("  FAIL: bounds changed: %v -> %v\n", img.Bounds(), decoded.Bounds())
		return false
	}

	fmt.Println("  PASS: encoded icon decodes cleanly")
	return true
}

func checkClipboard() bool {
	fmt.Println()
	fmt.Println("[4/4] Clipboard")

	sentinel := "clawgen-doctor-test"
	if err := clipboard.Copy(sentinel); err != nil {
		fmt.Printf("  FAIL: clipboard copy failed: %v\n", err)
		return false
	}
	got, err := clipboard.Read()
	if err != nil {
		fmt.Printf("  FAIL: clipboard read failed: %v\n", err)
		return false
	}
	if got != sentinel {
		fmt.Printf("  FAIL: clipboard round-trip (got %q, want %q)\n", got, sentinel)
		return false
	}

	fmt.Println("  PASS: clipboard copy/read verified")
	return true
}
