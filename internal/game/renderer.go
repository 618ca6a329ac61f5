package game

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Presenter uploads a CPU-rendered frame into a texture and draws it as a
// letterboxed quad.
type Presenter struct {
	prog uint32
	vao  uint32
	vbo  uint32
	tex  uint32

	uFrame int32

	texW, texH int
}

func NewPresenter() (*Presenter, error) {
	prog, err := linkProgram(blitVertSrc, blitFragSrc)
	if err != nil {
		return nil, fmt.Errorf("blit program: %w", err)
	}
	p := &Presenter{prog: prog}

	// Triangle strip covering clip space; v is flipped so row 0 of the image
	// lands at the top.
	quad := [16]float32{
		-1, -1, 0, 1,
		1, -1, 1, 1,
		-1, 1, 0, 0,
		1, 1, 1, 0,
	}
	gl.GenVertexArrays(1, &p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(&quad[0]), gl.STATIC_DRAW)
	stride := int32(4 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.BindVertexArray(0)

	gl.UseProgram(prog)
	p.uFrame = gl.GetUniformLocation(prog, gl.Str("uFrame\x00"))
	gl.Uniform1i(p.uFrame, 0)

	gl.GenTextures(1, &p.tex)
	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return p, nil
}

// Upload copies frame into the texture, reallocating it when the size changes.
func (p *Presenter) Upload(frame *image.RGBA) {
	b := frame.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(frame.Stride/4))
	if w != p.texW || h != p.texH {
		gl.TexImage2D(
			gl.TEXTURE_2D, 0, gl.RGBA8,
			int32(w), int32(h), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(frame.Pix),
		)
		p.texW, p.texH = w, h
	} else {
		gl.TexSubImage2D(
			gl.TEXTURE_2D, 0, 0, 0,
			int32(w), int32(h),
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(frame.Pix),
		)
	}
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
}

// Draw clears the framebuffer and draws the uploaded frame into view, given
// in framebuffer pixels with a top-left origin.
func (p *Presenter) Draw(view image.Rectangle, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if p.texW == 0 || view.Empty() {
		return
	}
	gl.Viewport(int32(view.Min.X), int32(fbH-view.Max.Y), int32(view.Dx()), int32(view.Dy()))
	gl.UseProgram(p.prog)
	gl.BindVertexArray(p.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

func (p *Presenter) Destroy() {
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.tex != 0 {
		gl.DeleteTextures(1, &p.tex)
	}
	if p.prog != 0 {
		gl.DeleteProgram(p.prog)
	}
}
