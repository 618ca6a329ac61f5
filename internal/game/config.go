package game

const WindowTitle = "Grid Snake"

// Minimum window size in screen pixels.
const (
	MinWindowWidth  = 320
	MinWindowHeight = 240
)

// Audio mix levels.
const sfxVolume = 0.58
