package main

import (
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"clawgen/assets"
	"clawgen/icon"
)

// Terminal preview: the rendered icon drawn as ANSI half-blocks, one cell
// per horizontal pixel and two vertical pixels per cell.

const previewMaxPx = 64

var previewSizes = []int{16, 48, 128, icon.LogoSize}

type previewModel struct {
	idx    int
	width  int
	height int
	// cache of rendered block art, keyed by size index
	art map[int]string
}

func newPreviewModel() previewModel {
	return previewModel{idx: 2, art: make(map[int]string)}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.idx > 0 {
				m.idx--
			}
		case "right", "l":
			if m.idx < len(previewSizes)-1 {
				m.idx++
			}
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	size := previewSizes[m.idx]
	art, ok := m.art[m.idx]
	if !ok {
		art = renderBlocks(previewImage(size))
		m.art[m.idx] = art
	}

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Render(fmt.Sprintf("icon %dx%d", size, size))

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	boldStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("239")).Bold(true)
	help := boldStyle.Render("←/→") + helpStyle.Render(" size  ") +
		boldStyle.Render("q") + helpStyle.Render(" quit")

	return title + "\n\n" + art + "\n" + help + "\n" +
		helpStyle.Render("clawgen "+version) + "\n"
}

// previewImage renders size and downscales anything larger than the
// terminal budget to previewMaxPx.
func previewImage(size int) *image.NRGBA {
	img := icon.Render(size)
	if size > previewMaxPx {
		return assets.Scale(img, previewMaxPx)
	}
	return img
}

// renderBlocks converts img to half-block art: each output cell carries
// two vertically stacked pixels via ▀/▄/█ with truecolor styles.
// Transparent pixels (alpha < 128) become blank cells.
func renderBlocks(img *image.NRGBA) string {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var out strings.Builder
	for cy := 0; cy < (h+1)/2; cy++ {
		for cx := 0; cx < w; cx++ {
			topOK, topCol := blockColor(img, cx, cy*2)
			botOK, botCol := blockColor(img, cx, cy*2+1)
			switch {
			case !topOK && !botOK:
				out.WriteString(" ")
			case topOK && !botOK:
				out.WriteString(lipgloss.NewStyle().Foreground(topCol).Render("▀"))
			case !topOK && botOK:
				out.WriteString(lipgloss.NewStyle().Foreground(botCol).Render("▄"))
			case topCol == botCol:
				out.WriteString(lipgloss.NewStyle().Foreground(topCol).Render("█"))
			default:
				out.WriteString(lipgloss.NewStyle().Foreground(topCol).Background(botCol).Render("▀"))
			}
		}
		out.WriteString("\n")
	}
	return out.String()
}

func blockColor(img *image.NRGBA, x, y int) (bool, lipgloss.Color) {
	if y >= img.Bounds().Dy() {
		return false, ""
	}
	c := img.NRGBAAt(img.Bounds().Min.X+x, img.Bounds().Min.Y+y)
	if c.A < 128 {
		return false, ""
	}
	// Flatten remaining translucency against a dark terminal background.
	a := int(c.A)
	r := (int(c.R)*a + 30*(255-a)) / 255
	g := (int(c.G)*a + 30*(255-a)) / 255
	bl := (int(c.B)*a + 30*(255-a)) / 255
	return true, lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, bl))
}
