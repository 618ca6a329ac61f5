package render

import "image/color"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Mul scales each channel by k/255.
func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// RGBA is the opaque colour.
func (c RGB) RGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255} }

// NRGBA is the colour at straight alpha a.
func (c RGB) NRGBA(a uint8) color.NRGBA { return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a} }

var Palette = struct {
	Background RGB
	GridDot    RGB
	Food       RGB
	SnakeBody  RGB
	SnakeHead  RGB
	Spark      RGB
	Debris     RGB
	Text       RGB
	Title      RGB
	Hint       RGB
}{
	Background: RGB{R: 16, G: 18, B: 24},
	GridDot:    RGB{R: 38, G: 42, B: 54},
	Food:       RGB{R: 232, G: 72, B: 72},
	SnakeBody:  RGB{R: 86, G: 196, B: 104},
	SnakeHead:  RGB{R: 170, G: 255, B: 160},
	Spark:      RGB{R: 255, G: 210, B: 110},
	Debris:     RGB{R: 120, G: 230, B: 130},
	Text:       RGB{R: 255, G: 255, B: 255},
	Title:      RGB{R: 255, G: 80, B: 80},
	Hint:       RGB{R: 255, G: 255, B: 100},
}

// overlayDim darkens the board behind overlay text.
const overlayDim = 150
