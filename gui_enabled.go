//go:build gui

package main

import (
	"fmt"
	"os"

	"clawgen/gui"
)

func runGUIPreview() {
	if err := gui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: GUI preview failed: %v\n", err)
		os.Exit(1)
	}
}
