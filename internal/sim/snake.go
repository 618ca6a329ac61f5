package sim

import (
	"io"
	"log"
)

type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}

// Game is the discrete snake simulation. The body is ordered tail first,
// head last. Nothing here knows about time; Step advances exactly one cell.
type Game struct {
	cfg Config
	rng *Rand
	log *log.Logger

	body []Point
	prev []Point // body before the last step, for interpolation

	dir  Direction // committed
	next Direction // pending, resolved once per step

	grow  int
	food  Point
	fed   bool // food placed
	score int
	phase Phase

	foodAttempts int
}

// NewGame returns a game in PhaseNotStarted. cfg is expected to be valid.
func NewGame(cfg Config, rng *Rand, logger *log.Logger) *Game {
	if rng == nil {
		rng = NewRand(1)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Game{
		cfg:          cfg,
		rng:          rng,
		log:          logger,
		foodAttempts: MaxFoodAttempts,
	}
}

// Start resets everything and begins a new round, from any phase.
func (g *Game) Start() {
	cx, cy := g.cfg.GridW/2, g.cfg.GridH/2
	g.body = g.body[:0]
	for i := StartLength - 1; i >= 0; i-- {
		g.body = append(g.body, Point{X: cx - i, Y: cy})
	}
	g.prev = append(g.prev[:0], g.body...)
	g.dir = StartDirection
	g.next = StartDirection
	g.grow = 0
	g.score = 0
	g.phase = PhasePlaying
	g.placeFood()
}

// Step advances one cell. It is a no-op unless the game is playing.
func (g *Game) Step() []Event {
	if g.phase != PhasePlaying {
		return nil
	}

	g.prev = append(g.prev[:0], g.body...)
	g.dir = g.next

	head := g.body[len(g.body)-1].Add(g.dir)
	if !g.inBounds(head) || g.occupied(head) {
		return g.GameOver()
	}

	g.body = append(g.body, head)
	if g.grow > 0 {
		g.grow--
	} else {
		g.body = append(g.body[:0], g.body[1:]...)
	}

	if !g.fed || head != g.food {
		return nil
	}
	g.score += FoodScore
	g.grow += FoodGrowth
	ev := Event{Kind: EventEat, Cell: g.food, Count: EatBurst}
	g.placeFood()
	return []Event{ev}
}

// GameOver ends the round and reports a death burst at the current head.
func (g *Game) GameOver() []Event {
	if g.phase != PhasePlaying {
		return nil
	}
	g.phase = PhaseGameOver
	return []Event{{Kind: EventDeath, Cell: g.Head(), Count: DeathBurst}}
}

// QueueDirection sets the direction taken on the next step. Reversing the
// committed or the pending direction is refused.
func (g *Game) QueueDirection(d Direction) bool {
	if !d.Valid() {
		return false
	}
	if d == g.dir.Opposite() || d == g.next.Opposite() {
		return false
	}
	g.next = d
	return true
}

func (g *Game) inBounds(p Point) bool {
	return p.X >= 0 && p.X < g.cfg.GridW && p.Y >= 0 && p.Y < g.cfg.GridH
}

func (g *Game) occupied(p Point) bool {
	for _, s := range g.body {
		if s == p {
			return true
		}
	}
	return false
}

func (g *Game) Config() Config       { return g.cfg }
func (g *Game) Phase() Phase         { return g.phase }
func (g *Game) Playing() bool        { return g.phase == PhasePlaying }
func (g *Game) Score() int           { return g.score }
func (g *Game) Growth() int          { return g.grow }
func (g *Game) Direction() Direction { return g.dir }
func (g *Game) Pending() Direction   { return g.next }

// Food returns the food cell and whether one is placed.
func (g *Game) Food() (Point, bool) { return g.food, g.fed }

// Head returns the last body cell, or the zero point before the first start.
func (g *Game) Head() Point {
	if len(g.body) == 0 {
		return Point{}
	}
	return g.body[len(g.body)-1]
}

// Body returns a copy of the committed body, tail first.
func (g *Game) Body() []Point { return append([]Point(nil), g.body...) }

// Prev returns a copy of the body as it was before the last step.
func (g *Game) Prev() []Point { return append([]Point(nil), g.prev...) }
