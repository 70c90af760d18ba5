package monopoly

import "math/rand"

// Randomizer is the only source of chance in the engine. Tests inject fixed
// implementations to make outcomes reproducible.
type Randomizer interface {
	RollDice() (int, int)
	PickCard(deckSize int) int
}

type randSource struct {
	rng *rand.Rand
}

// NewRandomizer returns a seeded math/rand based source.
func NewRandomizer(seed int64) Randomizer {
	return &randSource{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // game dice, not crypto
}

func (that *randSource) RollDice() (int, int) {
	return that.rng.Intn(6) + 1, that.rng.Intn(6) + 1
}

func (that *randSource) PickCard(deckSize int) int {
	return that.rng.Intn(deckSize)
}
