package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"gridsnake/internal/sim"
)

type command struct {
	start bool
	dir   sim.Direction
}

// Input collects key presses from the glfw callback until the next frame
// drains them. Presses are queued so two taps inside one frame both reach
// the direction buffer in order.
type Input struct {
	pending []command
	quit    bool
}

func NewInput(window *glfw.Window) *Input {
	in := &Input{}
	window.SetKeyCallback(in.onKey)
	return in
}

func (in *Input) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		in.quit = true
	case glfw.KeySpace, glfw.KeyEnter, glfw.KeyKPEnter:
		in.pending = append(in.pending, command{start: true})
	default:
		if d, ok := keyDirection(key); ok {
			in.pending = append(in.pending, command{dir: d})
		}
	}
}

func keyDirection(key glfw.Key) (sim.Direction, bool) {
	switch key {
	case glfw.KeyLeft, glfw.KeyA:
		return sim.Left, true
	case glfw.KeyRight, glfw.KeyD:
		return sim.Right, true
	case glfw.KeyUp, glfw.KeyW:
		return sim.Up, true
	case glfw.KeyDown, glfw.KeyS:
		return sim.Down, true
	}
	return 0, false
}

// Apply forwards queued commands to the runner and reports whether a start
// was requested.
func (in *Input) Apply(r *sim.Runner) (started bool) {
	for _, c := range in.pending {
		if c.start {
			r.RequestStart()
			started = true
			continue
		}
		r.QueueDirection(c.dir)
	}
	in.pending = in.pending[:0]
	return started
}

func (in *Input) Quit() bool { return in.quit }
