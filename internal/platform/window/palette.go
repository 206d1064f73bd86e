package window

import (
	"image/color"

	"github.com/tapcade/arcade/internal/core"
)

// Background is the window clear color.
var Background = color.RGBA{18, 18, 24, 255}

var palette = map[core.Color]color.RGBA{
	core.ColorRed:           {205, 49, 49, 255},
	core.ColorGreen:         {13, 188, 121, 255},
	core.ColorYellow:        {229, 229, 16, 255},
	core.ColorBlue:          {36, 114, 200, 255},
	core.ColorMagenta:       {188, 63, 188, 255},
	core.ColorCyan:          {17, 168, 205, 255},
	core.ColorWhite:         {229, 229, 229, 255},
	core.ColorOrange:        {255, 135, 0, 255},
	core.ColorGray:          {118, 118, 118, 255},
	core.ColorBrightRed:     {241, 76, 76, 255},
	core.ColorBrightGreen:   {35, 209, 139, 255},
	core.ColorBrightYellow:  {245, 245, 67, 255},
	core.ColorBrightBlue:    {59, 142, 234, 255},
	core.ColorBrightMagenta: {214, 112, 214, 255},
	core.ColorBrightCyan:    {41, 184, 219, 255},
	core.ColorBrightWhite:   {255, 255, 255, 255},
}

// RGBA maps a screen color to a window color. Unknown and default colors
// are light gray.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return color.RGBA{204, 204, 204, 255}
}
