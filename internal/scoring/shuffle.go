package scoring

import (
	"math/rand"

	"lifepath/internal/catalog"
)

// Shuffle returns a shuffled copy of the deck using the provided source,
// so the card order differs per session but stays reproducible in tests.
func Shuffle(cards []catalog.PulseCheckCard, rng *rand.Rand) []catalog.PulseCheckCard {
	out := make([]catalog.PulseCheckCard, len(cards))
	copy(out, cards)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
