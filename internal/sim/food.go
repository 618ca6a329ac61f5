package sim

// placeFood picks a free cell by rejection sampling. A nearly full board
// could reject forever, so after foodAttempts tries it settles on
// FoodFallback whether or not the snake is there.
func (g *Game) placeFood() {
	for range g.foodAttempts {
		p := Point{X: g.rng.Intn(g.cfg.GridW), Y: g.rng.Intn(g.cfg.GridH)}
		if !g.occupied(p) {
			g.food = p
			g.fed = true
			return
		}
	}
	g.food = FoodFallback
	g.fed = true
	g.log.Printf("food placement exhausted after %d attempts, using fallback (%d,%d)",
		g.foodAttempts, FoodFallback.X, FoodFallback.Y)
}
