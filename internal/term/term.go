// Package term runs the game in a terminal. Each grid cell is two columns
// wide so the board keeps a roughly square aspect.
package term

import (
	"fmt"
	"io"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/render"
	"gridsnake/internal/sim"
)

const frameInterval = 16 * time.Millisecond

// Board origin on screen: row 0 is the score line, row 1 the top border.
const (
	originX = 1
	originY = 2
)

type Host struct {
	screen tcell.Screen
	runner *sim.Runner
	log    *log.Logger
}

func New(screen tcell.Screen, runner *sim.Runner, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Host{screen: screen, runner: runner, log: logger}
}

// Run opens the terminal and plays until the user quits.
func Run(runner *sim.Runner, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	New(screen, runner, logger).Loop()
	return nil
}

// Loop pumps input and frames until a quit key. Events are read on their own
// goroutine; the runner is only touched here.
func (h *Host) Loop() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(h.screen, events, done)

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !h.HandleEvent(ev) {
				h.log.Printf("quit with score %d", h.runner.Score())
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			h.runner.Frame(dt)
			h.Draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one input event. It returns false on quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuitKey(ev) {
			return false
		}
		if isStartKey(ev) {
			h.runner.RequestStart()
			return true
		}
		if d, ok := keyDirection(ev); ok {
			h.runner.QueueDirection(d)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return r == 'c' || r == 'C'
		}
		return r == 'q' || r == 'Q'
	}
	return false
}

func isStartKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ')
}

func keyDirection(ev *tcell.EventKey) (sim.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return sim.Left, true
	case tcell.KeyRight:
		return sim.Right, true
	case tcell.KeyUp:
		return sim.Up, true
	case tcell.KeyDown:
		return sim.Down, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return sim.Left, true
		case 'd', 'D':
			return sim.Right, true
		case 'w', 'W':
			return sim.Up, true
		case 's', 'S':
			return sim.Down, true
		}
	}
	return 0, false
}

func style(c render.RGB) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(tcell.ColorReset)
}

// Draw paints the current view and shows it.
func (h *Host) Draw() {
	v := h.runner.View()
	s := h.screen
	s.Clear()

	h.drawText(0, 0, render.ScoreText(v.Score), style(render.Palette.Text).Bold(true))
	h.drawBorder(v)

	for _, p := range v.Particles {
		cx := int(math.Floor(p.X / float64(v.Cell)))
		cy := int(math.Floor(p.Y / float64(v.Cell)))
		if p.MaxLife <= 0 || cx < 0 || cx >= v.GridW || cy < 0 || cy >= v.GridH {
			continue
		}
		col := render.Palette.Spark
		if p.Kind == sim.ParticleDebris {
			col = render.Palette.Debris
		}
		fade := uint8(255 * min(max(p.Life/p.MaxLife, 0), 1))
		s.SetContent(originX+cx*2, originY+cy, '·', nil, style(col.Mul(fade)))
	}

	if v.HasFood {
		h.drawCell(v.Food.X, v.Food.Y, style(render.Palette.Food))
	}
	for i := range v.Body {
		fx, fy := render.Interpolate(v.Prev, v.Body, i, v.Alpha)
		st := style(render.Palette.SnakeBody)
		if i == len(v.Body)-1 {
			st = style(render.Palette.SnakeHead)
		}
		h.drawCell(int(math.Round(fx)), int(math.Round(fy)), st)
	}

	lines := render.Overlay(v.Phase, v.Score)
	top := originY + (v.GridH-len(lines))/2
	for i, l := range lines {
		x := originX + (v.GridW*2-len(l.Text))/2
		h.drawText(x, top+i, l.Text, style(l.Col).Bold(true))
	}

	s.Show()
}

func (h *Host) drawCell(x, y int, st tcell.Style) {
	sx := originX + x*2
	sy := originY + y
	h.screen.SetContent(sx, sy, '█', nil, st)
	h.screen.SetContent(sx+1, sy, '█', nil, st)
}

func (h *Host) drawText(x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		h.screen.SetContent(x+i, y, ch, nil, st)
	}
}

func (h *Host) drawBorder(v sim.View) {
	st := style(render.Palette.GridDot)
	left, right := originX-1, originX+v.GridW*2
	top, bottom := originY-1, originY+v.GridH
	for x := left + 1; x < right; x++ {
		h.screen.SetContent(x, top, '─', nil, st)
		h.screen.SetContent(x, bottom, '─', nil, st)
	}
	for y := top + 1; y < bottom; y++ {
		h.screen.SetContent(left, y, '│', nil, st)
		h.screen.SetContent(right, y, '│', nil, st)
	}
	h.screen.SetContent(left, top, '┌', nil, st)
	h.screen.SetContent(right, top, '┐', nil, st)
	h.screen.SetContent(left, bottom, '└', nil, st)
	h.screen.SetContent(right, bottom, '┘', nil, st)
}
