package render

import (
	"fmt"
	"image/color"
)

// Plan colors shared by the SVG and PNG outputs
var (
	ColorBackground  = color.RGBA{26, 27, 38, 255}
	ColorRoomFill    = color.RGBA{60, 100, 200, 90}
	ColorRoomStroke  = color.RGBA{140, 190, 255, 255}
	ColorSelected    = color.RGBA{255, 255, 0, 255}
	ColorHover       = color.RGBA{0, 200, 200, 255}
	ColorDoor        = color.RGBA{255, 120, 120, 255}
	ColorDoorPreview = color.RGBA{255, 120, 120, 110}
	ColorPreview     = color.RGBA{180, 180, 180, 255}
	ColorLabel       = color.RGBA{255, 255, 255, 255}
)

// hex formats c as #rrggbb for SVG attributes
func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// opacity returns the alpha channel as an SVG opacity value
func opacity(c color.RGBA) string {
	return formatFloat(float64(c.A) / 255)
}
