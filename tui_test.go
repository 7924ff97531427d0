package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"clawgen/icon"
)

func TestRenderBlocksLineCount(t *testing.T) {
	art := renderBlocks(icon.Render(16))
	// two pixel rows per text line
	if got := strings.Count(art, "\n"); got != 8 {
		t.Errorf("got %d lines, want 8", got)
	}
}

func TestRenderBlocksBlankCorners(t *testing.T) {
	art := renderBlocks(icon.Render(48))
	lines := strings.Split(art, "\n")
	last := lines[len(lines)-2] // trailing newline leaves an empty element
	if !strings.HasPrefix(last, " ") {
		t.Errorf("bottom-left corner not blank: %q", last)
	}
}

func TestPreviewImageDownscales(t *testing.T) {
	img := previewImage(icon.LogoSize)
	if b := img.Bounds(); b.Dx() != previewMaxPx {
		t.Errorf("bounds = %v, want %dpx", b, previewMaxPx)
	}

	img = previewImage(16)
	if b := img.Bounds(); b.Dx() != 16 {
		t.Errorf("bounds = %v, want 16px", b)
	}
}

func TestPreviewModelKeys(t *testing.T) {
	m := newPreviewModel()
	if previewSizes[m.idx] != 128 {
		t.Fatalf("initial size = %d, want 128", previewSizes[m.idx])
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(previewModel)
	if previewSizes[m.idx] != icon.LogoSize {
		t.Errorf("after right: size = %d, want %d", previewSizes[m.idx], icon.LogoSize)
	}

	// already at the top end
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(previewModel)
	if previewSizes[m.idx] != icon.LogoSize {
		t.Errorf("right at end moved: size = %d", previewSizes[m.idx])
	}

	for range 3 {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
		m = next.(previewModel)
	}
	if previewSizes[m.idx] != 16 {
		t.Errorf("after lefts: size = %d, want 16", previewSizes[m.idx])
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("q did not quit")
	}
}
