package snake

import "strings"

// Cell is a grid coordinate. Cells are plain values and compare with ==.
type Cell struct {
	X, Y int
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// spawnDirections maps a uniformly sampled integer in [0,4) to a direction.
var spawnDirections = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// keyDirections maps the steering keys to directions.
var keyDirections = map[string]Direction{
	"W": DirUp,
	"A": DirLeft,
	"S": DirDown,
	"D": DirRight,
}

// DirectionForKey maps W/A/S/D (either case) to a direction.
// Any other key reports false.
func DirectionForKey(key string) (Direction, bool) {
	d, ok := keyDirections[strings.ToUpper(key)]
	return d, ok
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Step returns c moved one cell in direction d.
func (c Cell) Step(d Direction) Cell {
	switch d {
	case DirUp:
		c.Y--
	case DirDown:
		c.Y++
	case DirLeft:
		c.X--
	case DirRight:
		c.X++
	}
	return c
}

// InBounds reports whether c lies on a gridSize x gridSize board.
func (c Cell) InBounds(gridSize int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < gridSize && c.Y < gridSize
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
