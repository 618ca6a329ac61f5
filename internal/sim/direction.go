package sim

// Point is a grid cell.
type Point struct {
	X, Y int
}

func (p Point) Add(d Direction) Point {
	v := d.Vec()
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Direction is one of the four unit moves on the grid.
type Direction uint8

const (
	Right Direction = iota
	Left
	Up
	Down
)

var dirVecs = [...]Point{
	Right: {X: 1, Y: 0},
	Left:  {X: -1, Y: 0},
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
}

var dirNames = [...]string{
	Right: "right",
	Left:  "left",
	Up:    "up",
	Down:  "down",
}

// Directions lists every valid direction.
var Directions = [...]Direction{Right, Left, Up, Down}

// StartDirection is the heading of every new snake.
const StartDirection = Right

func (d Direction) Valid() bool { return int(d) < len(dirVecs) }

func (d Direction) Vec() Point {
	if !d.Valid() {
		return Point{}
	}
	return dirVecs[d]
}

func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	case Down:
		return Up
	}
	return d
}

func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return dirNames[d]
}
