//go:build !gui

package main

func runGUIPreview() {
	panic("clawgen: built without GUI support (rebuild with -tags gui)")
}
