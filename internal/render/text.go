package render

import (
	"image"
	"image/color"
	"image/draw"
	"unicode"
)

func glyphFor(ch rune) ([GlyphH]string, bool) {
	g, ok := glyphs[unicode.ToUpper(ch)]
	return g, ok
}

// HasGlyph reports whether ch draws as something other than a gap.
func HasGlyph(ch rune) bool {
	_, ok := glyphFor(ch)
	return ok
}

// DrawChar draws one glyph with its top-left at (x, y). Unknown runes draw
// nothing.
func DrawChar(dst draw.Image, ch rune, x, y, scale int, col color.Color) {
	g, ok := glyphFor(ch)
	if !ok {
		return
	}
	src := image.NewUniform(col)
	for row, bits := range g {
		for c := 0; c < GlyphW; c++ {
			if bits[c] != '#' {
				continue
			}
			px := x + c*scale
			py := y + row*scale
			draw.Draw(dst, image.Rect(px, py, px+scale, py+scale), src, image.Point{}, draw.Over)
		}
	}
}

// DrawString draws text at (x, y). '\n' starts a new line.
func DrawString(dst draw.Image, text string, x, y, scale int, col color.Color) {
	cx, cy := x, y
	for _, ch := range text {
		if ch == '\n' {
			cx = x
			cy += LineAdvance * scale
			continue
		}
		DrawChar(dst, ch, cx, cy, scale, col)
		cx += GlyphAdvance * scale
	}
}

// TextWidth returns the pixel width of the widest line, without the
// trailing gap.
func TextWidth(text string, scale int) int {
	lineLen, maxLineLen := 0, 0
	for _, ch := range text {
		if ch == '\n' {
			maxLineLen = max(maxLineLen, lineLen)
			lineLen = 0
			continue
		}
		lineLen++
	}
	maxLineLen = max(maxLineLen, lineLen)
	if maxLineLen == 0 {
		return 0
	}
	return (maxLineLen*GlyphAdvance - 1) * scale
}
