package snake

import "math/rand/v2"

// newRand builds the food RNG. A zero seed draws one from the global source.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// placeFood draws uniformly random cells until one is not covered by the snake.
// It returns false only when the snake covers the whole grid.
func placeFood(rng *rand.Rand, b *body) (Position, bool) {
	if b.full() {
		return Position{}, false
	}
	for {
		p := Position{X: rng.IntN(b.size), Y: rng.IntN(b.size)}
		if !b.occupied(p) {
			return p, true
		}
	}
}
