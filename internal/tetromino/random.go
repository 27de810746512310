package tetromino

import "math/rand"

// Randomizer draws shapes from a seeded source so a run can be replayed.
type Randomizer struct {
	rng *rand.Rand
}

// NewRandomizer creates a randomizer seeded with seed.
func NewRandomizer(seed int64) *Randomizer {
	return &Randomizer{rng: rand.New(rand.NewSource(seed))}
}

// Next draws a shape uniformly from 1..7. When the draw equals exclude the
// result advances to the following id, wrapping T back to I. The excluded
// shape's successor is therefore twice as likely as the others.
func (r *Randomizer) Next(exclude Shape) Shape {
	return advance(Shape(r.rng.Intn(Count)+1), exclude)
}

func advance(drawn, exclude Shape) Shape {
	if drawn != exclude {
		return drawn
	}
	drawn++
	if drawn > T {
		drawn = I
	}
	return drawn
}
