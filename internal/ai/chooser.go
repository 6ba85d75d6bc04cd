package ai

import (
	"math/rand"
)

// Chooser breaks ties between cards the brain rates equally. Choose returns
// "" for an empty list and never modifies it.
type Chooser interface {
	Choose(cards []string) string
}

// ChooserFunc adapts a plain function to the Chooser interface.
type ChooserFunc func(cards []string) string

func (f ChooserFunc) Choose(cards []string) string { return f(cards) }

// RandomChooser picks uniformly from its own random source, so seeded games
// replay the same choices.
type RandomChooser struct {
	rand *rand.Rand
}

func NewRandomChooser(rand *rand.Rand) *RandomChooser {
	return &RandomChooser{rand: rand}
}

func (r *RandomChooser) Choose(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return cards[r.rand.Intn(len(cards))]
}

// DeterministicChooser always picks the alphabetically smallest card name.
type DeterministicChooser struct{}

func (DeterministicChooser) Choose(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	best := cards[0]
	for _, c := range cards[1:] {
		if c < best {
			best = c
		}
	}
	return best
}
