//go:build !linux

package main

import (
	"os"
	"runtime"
)

func init() {
	// Fyne/GLFW need the main OS thread
	runtime.LockOSThread()
}

func main() {
	for _, arg := range os.Args[1:] {
		if arg == "-gui" {
			runGUIPreview()
			return
		}
	}
	run()
}
