//go:build gui

// Package gui shows the generated icon set in a desktop window.
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"clawgen/icon"
)

// Display size for each tile; small icons are shown scaled up so the
// pixel structure stays visible.
const tilePx = 160

// Run opens a window with one tile per icon size plus the square logo
// and blocks until the window is closed.
func Run() error {
	fyneApp := app.NewWithID("io.clawfi.clawgen")
	fyneApp.Settings().SetTheme(&darkTheme{})

	window := fyneApp.NewWindow("clawgen preview")

	sizes := append(append([]int{}, icon.Sizes...), icon.LogoSize)
	tiles := make([]fyne.CanvasObject, 0, len(sizes))
	for _, size := range sizes {
		img := canvas.NewImageFromImage(icon.Render(size))
		img.FillMode = canvas.ImageFillContain
		img.ScaleMode = canvas.ImageScalePixels
		img.SetMinSize(fyne.NewSize(tilePx, tilePx))

		label := widget.NewLabel(fmt.Sprintf("%d×%d", size, size))
		label.Alignment = fyne.TextAlignCenter

		tiles = append(tiles, container.NewVBox(img, label))
	}

	window.SetContent(container.NewHBox(tiles...))
	window.SetFixedSize(true)
	window.ShowAndRun()
	return nil
}
