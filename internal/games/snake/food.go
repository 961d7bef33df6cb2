package snake

import "math/rand"

// FoodSource picks the cell for the next piece of food.
type FoodSource interface {
	Next(gridSize int) Cell
}

// RandomFood samples x and y independently and uniformly from [0, gridSize).
// It does not avoid the snake: food may land on the body.
type RandomFood struct {
	rng *rand.Rand
}

// NewRandomFood creates a food source drawing from rng.
func NewRandomFood(rng *rand.Rand) *RandomFood {
	return &RandomFood{rng: rng}
}

// Next returns a uniformly random cell.
func (f *RandomFood) Next(gridSize int) Cell {
	return Cell{
		X: f.rng.Intn(gridSize),
		Y: f.rng.Intn(gridSize),
	}
}
