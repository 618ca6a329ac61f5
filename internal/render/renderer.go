package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"gridsnake/internal/sim"
)

// Renderer rasterises a sim.View into a GridW*Cell × GridH*Cell image.
// It only reads the view.
type Renderer struct {
	frame *image.RGBA
}

func NewRenderer() *Renderer { return &Renderer{} }

// Render draws v into the renderer's frame and returns it. The frame is
// reused across calls and reallocated when the board size changes.
func (r *Renderer) Render(v sim.View) *image.RGBA {
	b := image.Rect(0, 0, v.GridW*v.Cell, v.GridH*v.Cell)
	if r.frame == nil || r.frame.Bounds() != b {
		r.frame = image.NewRGBA(b)
	}
	Draw(r.frame, v)
	return r.frame
}

// Draw paints the whole frame: board, food, snake, particles, overlay and
// the score readout, in that order.
func Draw(dst *image.RGBA, v sim.View) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(Palette.Background.RGBA()), image.Point{}, draw.Src)
	drawGrid(dst, v)
	if v.HasFood {
		drawFood(dst, v)
	}
	drawSnake(dst, v)
	drawParticles(dst, v.Particles)
	drawOverlay(dst, v)
	DrawString(dst, ScoreText(v.Score), 4, 4, 2, Palette.Text.RGBA())
}

func fill(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

func drawGrid(dst *image.RGBA, v sim.View) {
	c := Palette.GridDot.RGBA()
	half := v.Cell / 2
	for y := 0; y < v.GridH; y++ {
		for x := 0; x < v.GridW; x++ {
			dst.SetRGBA(x*v.Cell+half, y*v.Cell+half, c)
		}
	}
}

func drawFood(dst *image.RGBA, v sim.View) {
	const inset = 3
	x := v.Food.X * v.Cell
	y := v.Food.Y * v.Cell
	fill(dst, image.Rect(x+inset, y+inset, x+v.Cell-inset, y+v.Cell-inset), Palette.Food.RGBA())
}

func drawSnake(dst *image.RGBA, v sim.View) {
	body := Palette.SnakeBody.RGBA()
	head := Palette.SnakeHead.RGBA()
	for i := range v.Body {
		fx, fy := Interpolate(v.Prev, v.Body, i, v.Alpha)
		px := int(math.Round(fx * float64(v.Cell)))
		py := int(math.Round(fy * float64(v.Cell)))
		col := body
		if i == len(v.Body)-1 {
			col = head
		}
		fill(dst, image.Rect(px+1, py+1, px+v.Cell-1, py+v.Cell-1), col)
	}
}

func drawParticles(dst *image.RGBA, ps []sim.Particle) {
	for _, p := range ps {
		if p.Life <= 0 || p.MaxLife <= 0 {
			continue
		}
		col := Palette.Spark
		if p.Kind == sim.ParticleDebris {
			col = Palette.Debris
		}
		a := uint8(255 * min(p.Life/p.MaxLife, 1))
		half := float64(p.Size) / 2
		x := int(math.Round(p.X - half))
		y := int(math.Round(p.Y - half))
		fill(dst, image.Rect(x, y, x+p.Size, y+p.Size), col.NRGBA(a))
	}
}

func drawOverlay(dst *image.RGBA, v sim.View) {
	lines := Overlay(v.Phase, v.Score)
	if len(lines) == 0 {
		return
	}
	b := dst.Bounds()
	fill(dst, b, RGB{}.NRGBA(overlayDim))

	total := 0
	for _, l := range lines {
		total += LineAdvance * l.Scale
	}
	y := b.Min.Y + (b.Dy()-total)/2
	for _, l := range lines {
		x := b.Min.X + (b.Dx()-TextWidth(l.Text, l.Scale))/2
		DrawString(dst, l.Text, x, y, l.Scale, l.Col.RGBA())
		y += LineAdvance * l.Scale
	}
}
