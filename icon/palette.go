// Package icon renders the ClawFi brand mark: a white crab silhouette on a
// rounded-rect blue gradient with a highlight band across the top. The
// reference design is 128 px; every measurement scales linearly from there.
package icon

import "image/color"

// iOS-style blues from the extension branding.
var (
	BlueLight = color.NRGBA{R: 10, G: 132, B: 255, A: 255} // #0A84FF
	BlueDark  = color.NRGBA{R: 0, G: 90, B: 200, A: 255}   // #005AC8
	White     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)
