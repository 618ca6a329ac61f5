package render

import (
	"fmt"

	"gridsnake/internal/sim"
)

// Line is one centred row of overlay text.
type Line struct {
	Text  string
	Scale int
	Col   RGB
}

func ScoreText(score int) string { return fmt.Sprintf("SCORE %d", score) }

// Overlay returns the text shown over the board for a phase. Playing has
// none; the corner score readout is drawn separately in every phase.
func Overlay(phase sim.Phase, score int) []Line {
	switch phase {
	case sim.PhaseNotStarted:
		return []Line{
			{Text: "PRESS SPACE TO START", Scale: 3, Col: Palette.Text},
			{Text: "ARROWS OR WASD TO MOVE", Scale: 2, Col: Palette.Hint},
		}
	case sim.PhaseGameOver:
		return []Line{
			{Text: "GAME OVER", Scale: 5, Col: Palette.Title},
			{Text: "PRESS SPACE TO RESTART", Scale: 2, Col: Palette.Text},
			{Text: ScoreText(score), Scale: 3, Col: Palette.Hint},
		}
	}
	return nil
}
