package sim

import (
	"fmt"
	"io"
	"log"
)

// FrameResult is what one display frame produced.
type FrameResult struct {
	Alpha  float64
	Steps  int
	Events []Event
}

// View is a read-only snapshot for renderers. Slices are copies.
type View struct {
	GridW, GridH int
	Cell         int

	Body  []Point
	Prev  []Point
	Alpha float64

	Food    Point
	HasFood bool

	Particles []Particle

	Score int
	Phase Phase
}

// Runner owns one game, its driver and its particles, and runs them one
// frame at a time. Input arriving between frames only sets pending state:
// directions go to the game's pending slot, start requests are held until
// the next Frame. Directions queued behind a start request are held too and
// replayed into the new game.
type Runner struct {
	game      *Game
	driver    Driver
	particles *ParticleSystem
	log       *log.Logger

	startRequested bool
	startDirs      []Direction
	stopped        bool
}

func NewRunner(cfg Config, seed uint64, logger *log.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Runner{
		game:      NewGame(cfg, NewRand(seed^0xF00D), logger),
		driver:    NewDriver(cfg.StepsPerSecond),
		particles: NewParticleSystem(cfg.Cell, NewRand(seed^0xBEAD)),
		log:       logger,
	}, nil
}

func (r *Runner) Game() *Game                { return r.game }
func (r *Runner) Particles() *ParticleSystem { return r.particles }

// RequestStart asks for a new game at the start of the next frame. It has no
// effect if a game is playing by then.
func (r *Runner) RequestStart() { r.startRequested = true }

// QueueDirection forwards d to the game. While a start request is waiting
// and no game is playing, d is checked against the direction the new game
// will start with and held until it begins.
func (r *Runner) QueueDirection(d Direction) bool {
	if !r.startRequested || r.game.Playing() {
		return r.game.QueueDirection(d)
	}
	last := StartDirection
	if n := len(r.startDirs); n > 0 {
		last = r.startDirs[n-1]
	}
	if !d.Valid() || d == StartDirection.Opposite() || d == last.Opposite() {
		return false
	}
	r.startDirs = append(r.startDirs, d)
	return true
}

// Frame runs one display frame of dt seconds.
func (r *Runner) Frame(dt float64) FrameResult {
	if r.stopped {
		return FrameResult{Alpha: r.driver.Alpha()}
	}
	if r.startRequested {
		r.startRequested = false
		if !r.game.Playing() {
			r.newGame()
		}
		r.startDirs = r.startDirs[:0]
	}

	dt = r.driver.Clamp(dt)
	var events []Event
	steps := r.driver.Advance(dt, func() bool {
		events = append(events, r.game.Step()...)
		return r.game.Playing()
	})
	for _, e := range events {
		r.particles.Burst(e.Cell, e.Count, e.ParticleKind())
	}
	r.particles.Update(dt)

	return FrameResult{Alpha: r.driver.Alpha(), Steps: steps, Events: events}
}

func (r *Runner) newGame() {
	r.game.Start()
	r.particles.Clear()
	r.driver.Reset()
	for _, d := range r.startDirs {
		r.game.QueueDirection(d)
	}
	r.log.Printf("new game started")
}

// Start resumes frames after Stop and begins a game unless one is playing.
func (r *Runner) Start() {
	r.stopped = false
	if !r.game.Playing() {
		r.newGame()
	}
	r.startRequested = false
	r.startDirs = r.startDirs[:0]
}

// Stop freezes the runner: frames do nothing until Start.
func (r *Runner) Stop() { r.stopped = true }

func (r *Runner) Stopped() bool { return r.stopped }

func (r *Runner) Score() int { return r.game.Score() }

func (r *Runner) View() View {
	cfg := r.game.Config()
	food, fed := r.game.Food()
	return View{
		GridW:     cfg.GridW,
		GridH:     cfg.GridH,
		Cell:      cfg.Cell,
		Body:      r.game.Body(),
		Prev:      r.game.Prev(),
		Alpha:     r.driver.Alpha(),
		Food:      food,
		HasFood:   fed,
		Particles: append([]Particle(nil), r.particles.P...),
		Score:     r.game.Score(),
		Phase:     r.game.Phase(),
	}
}
