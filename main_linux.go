//go:build linux

package main

import "os"

func main() {
	// -gui takes over the main thread before flag parsing
	for _, arg := range os.Args[1:] {
		if arg == "-gui" {
			runGUIPreview()
			return
		}
	}
	run()
}
