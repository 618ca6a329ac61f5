package sim

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(DefaultConfig(), NewRand(42), nil)
	g.Start()
	return g
}

// parkFood moves the food somewhere the test controls.
func parkFood(g *Game, p Point) {
	g.food = p
	g.fed = true
}

func equalPoints(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func assertNoOverlap(t *testing.T, body []Point) {
	t.Helper()
	seen := make(map[Point]bool, len(body))
	for _, p := range body {
		if seen[p] {
			t.Fatalf("segment %v occupied twice in %v", p, body)
		}
		seen[p] = true
	}
}

func TestStartNewGame(t *testing.T) {
	g := newTestGame(t)

	want := []Point{{17, 14}, {18, 14}, {19, 14}, {20, 14}}
	if !equalPoints(g.Body(), want) {
		t.Fatalf("expected body %v, got %v", want, g.Body())
	}
	if !equalPoints(g.Prev(), want) {
		t.Errorf("expected previous snapshot %v, got %v", want, g.Prev())
	}
	if g.Direction() != Right || g.Pending() != Right {
		t.Errorf("expected right/right, got %v/%v", g.Direction(), g.Pending())
	}
	if g.Score() != 0 {
		t.Errorf("expected score 0, got %d", g.Score())
	}
	if g.Growth() != 0 {
		t.Errorf("expected growth 0, got %d", g.Growth())
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("expected playing, got %v", g.Phase())
	}
	food, ok := g.Food()
	if !ok {
		t.Fatal("expected food to be placed")
	}
	if g.occupied(food) {
		t.Errorf("food %v placed on the snake", food)
	}
}

func TestStartResetsFinishedGame(t *testing.T) {
	g := newTestGame(t)
	parkFood(g, Point{21, 14})
	g.Step()
	g.QueueDirection(Up)
	for g.Playing() {
		g.Step()
	}

	g.Start()
	if g.Score() != 0 || g.Growth() != 0 || len(g.Body()) != StartLength {
		t.Errorf("expected a fresh game, got score %d growth %d length %d",
			g.Score(), g.Growth(), len(g.Body()))
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("expected playing, got %v", g.Phase())
	}
}

func TestStepShiftsBody(t *testing.T) {
	g := newTestGame(t)
	parkFood(g, Point{0, 0})

	if ev := g.Step(); ev != nil {
		t.Fatalf("expected no events, got %v", ev)
	}
	want := []Point{{18, 14}, {19, 14}, {20, 14}, {21, 14}}
	if !equalPoints(g.Body(), want) {
		t.Fatalf("after one step expected %v, got %v", want, g.Body())
	}
	prev := []Point{{17, 14}, {18, 14}, {19, 14}, {20, 14}}
	if !equalPoints(g.Prev(), prev) {
		t.Errorf("expected previous snapshot %v, got %v", prev, g.Prev())
	}

	g.Step()
	g.Step()
	want = []Point{{20, 14}, {21, 14}, {22, 14}, {23, 14}}
	if !equalPoints(g.Body(), want) {
		t.Errorf("after three steps expected %v, got %v", want, g.Body())
	}
	if g.Score() != 0 {
		t.Errorf("expected score 0, got %d", g.Score())
	}
}

func TestEatScoresAndGrows(t *testing.T) {
	g := newTestGame(t)
	parkFood(g, Point{21, 14})

	events := g.Step()
	if len(events) != 1 {
		t.Fatalf("expected one event, got %v", events)
	}
	ev := events[0]
	if ev.Kind != EventEat || ev.Cell != (Point{21, 14}) || ev.Count != EatBurst {
		t.Errorf("expected eat burst of %d at (21,14), got %+v", EatBurst, ev)
	}
	if g.Score() != 10 {
		t.Errorf("expected score 10, got %d", g.Score())
	}
	if g.Growth() != 2 {
		t.Errorf("expected growth 2, got %d", g.Growth())
	}
	food, ok := g.Food()
	if !ok || g.occupied(food) {
		t.Errorf("expected food relocated off the snake, got %v (placed=%v)", food, ok)
	}
	if len(g.Body()) != 4 {
		t.Errorf("expected length 4 on the eating step, got %d", len(g.Body()))
	}

	// Keep the food off the path so only the pending growth applies.
	parkFood(g, Point{0, 0})
	for i, want := range []int{5, 6, 6, 6} {
		g.Step()
		if got := len(g.Body()); got != want {
			t.Errorf("step %d: expected length %d, got %d", i+1, want, got)
		}
	}
	if g.Growth() != 0 {
		t.Errorf("expected growth drained, got %d", g.Growth())
	}
}

func TestLengthConstantWithoutEating(t *testing.T) {
	g := newTestGame(t)
	rng := NewRand(7)

	for i := 0; i < 2000; i++ {
		g.QueueDirection(Directions[rng.Intn(len(Directions))])
		before := len(g.Body())
		grow := g.Growth()
		events := g.Step()

		if !g.Playing() {
			g.Start()
			continue
		}
		assertNoOverlap(t, g.Body())
		if len(events) > 0 {
			continue
		}
		want := before
		if grow > 0 {
			want++
		}
		if got := len(g.Body()); got != want {
			t.Fatalf("step %d: expected length %d, got %d", i, want, got)
		}
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name     string
		turns    []Direction
		lastHead Point
	}{
		{"right", nil, Point{39, 14}},
		{"up", []Direction{Up}, Point{20, 0}},
		{"down", []Direction{Down}, Point{20, 27}},
		{"left", []Direction{Up, Left}, Point{0, 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			parkFood(g, Point{39, 27})

			for i, d := range tt.turns {
				if !g.QueueDirection(d) {
					t.Fatalf("turn %v refused", d)
				}
				if i < len(tt.turns)-1 {
					g.Step()
				}
			}

			var events []Event
			var before []Point
			for i := 0; i < 100 && g.Playing(); i++ {
				before = g.Body()
				events = g.Step()
			}

			if g.Phase() != PhaseGameOver {
				t.Fatalf("expected game over, got %v", g.Phase())
			}
			if len(events) != 1 || events[0].Kind != EventDeath {
				t.Fatalf("expected a death event, got %v", events)
			}
			if events[0].Cell != tt.lastHead || events[0].Count != DeathBurst {
				t.Errorf("expected death burst of %d at %v, got %+v", DeathBurst, tt.lastHead, events[0])
			}
			if !equalPoints(g.Body(), before) {
				t.Errorf("collision changed the body: %v -> %v", before, g.Body())
			}

			if ev := g.Step(); ev != nil {
				t.Errorf("expected no events after game over, got %v", ev)
			}
			if !equalPoints(g.Body(), before) {
				t.Errorf("step after game over moved the body to %v", g.Body())
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	tests := []struct {
		name string
		body []Point
		dir  Direction
		turn Direction
	}{
		{
			name: "into body",
			body: []Point{{10, 10}, {11, 10}, {12, 10}, {12, 11}, {11, 11}},
			dir:  Left,
			turn: Up,
		},
		{
			name: "into tail cell",
			body: []Point{{10, 10}, {11, 10}, {11, 11}, {10, 11}},
			dir:  Left,
			turn: Up,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			parkFood(g, Point{30, 20})
			g.body = append([]Point(nil), tt.body...)
			g.dir, g.next = tt.dir, tt.dir

			if !g.QueueDirection(tt.turn) {
				t.Fatalf("turn %v refused", tt.turn)
			}
			events := g.Step()

			if g.Phase() != PhaseGameOver {
				t.Fatalf("expected game over, got %v", g.Phase())
			}
			head := tt.body[len(tt.body)-1]
			if len(events) != 1 || events[0].Cell != head {
				t.Errorf("expected death at %v, got %v", head, events)
			}
			if !equalPoints(g.Body(), tt.body) {
				t.Errorf("expected body unchanged, got %v", g.Body())
			}
		})
	}
}

func TestQueueDirectionRejectsReversal(t *testing.T) {
	g := newTestGame(t)
	parkFood(g, Point{0, 0})

	if g.QueueDirection(Left) {
		t.Error("expected reversal of the committed direction to be refused")
	}
	if g.Pending() != Right {
		t.Errorf("expected pending right, got %v", g.Pending())
	}

	if !g.QueueDirection(Up) {
		t.Fatal("expected up to be accepted")
	}
	if g.QueueDirection(Down) {
		t.Error("expected reversal of the pending direction to be refused")
	}
	if g.QueueDirection(Left) {
		t.Error("expected reversal of the committed direction to be refused while up is pending")
	}
	if g.Pending() != Up {
		t.Errorf("expected pending up, got %v", g.Pending())
	}

	g.Step()
	if g.Direction() != Up {
		t.Errorf("expected committed up after the step, got %v", g.Direction())
	}
	if !g.QueueDirection(Left) {
		t.Error("expected left to be accepted once up is committed")
	}
	if g.QueueDirection(Direction(9)) {
		t.Error("expected an invalid direction to be refused")
	}
}

func TestStepBeforeStartIsNoop(t *testing.T) {
	g := NewGame(DefaultConfig(), NewRand(1), nil)
	if ev := g.Step(); ev != nil {
		t.Errorf("expected no events, got %v", ev)
	}
	if g.Phase() != PhaseNotStarted {
		t.Errorf("expected not-started, got %v", g.Phase())
	}
	if len(g.Body()) != 0 {
		t.Errorf("expected empty body, got %v", g.Body())
	}
	if ev := g.GameOver(); ev != nil {
		t.Errorf("expected game over to be ignored before start, got %v", ev)
	}
	if !g.QueueDirection(Up) {
		t.Error("expected queueing to work before start")
	}
}

func TestFoodNeverOnSnake(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 500; i++ {
		g.placeFood()
		food, _ := g.Food()
		if g.occupied(food) {
			t.Fatalf("placement %d put food on the snake at %v", i, food)
		}
		if !g.inBounds(food) {
			t.Fatalf("placement %d put food off the board at %v", i, food)
		}
	}
}

func TestFoodFallbackWhenExhausted(t *testing.T) {
	var buf bytes.Buffer
	g := NewGame(DefaultConfig(), NewRand(1), log.New(&buf, "", 0))
	g.Start()
	g.foodAttempts = 0

	g.placeFood()

	food, ok := g.Food()
	if !ok || food != FoodFallback {
		t.Errorf("expected fallback %v, got %v (placed=%v)", FoodFallback, food, ok)
	}
	if !strings.Contains(buf.String(), "exhausted") {
		t.Errorf("expected a degraded placement log line, got %q", buf.String())
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"smallest width", func(c *Config) { c.GridW = 6 }, false},
		{"narrow", func(c *Config) { c.GridW = 5 }, true},
		{"no height", func(c *Config) { c.GridH = 0 }, true},
		{"no cell", func(c *Config) { c.Cell = 0 }, true},
		{"no rate", func(c *Config) { c.StepsPerSecond = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}
