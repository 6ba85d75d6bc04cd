package deduction

import (
	"sort"

	"cluedo-toolbox/internal/config"
)

// Candidates lists, per category, the cards that might be in the envelope.
type Candidates struct {
	Suspects []Card
	Weapons  []Card
	Rooms    []Card
}

// ForCategory returns the candidates of one category.
func (c Candidates) ForCategory(cat config.CardCategory) []Card {
	switch cat {
	case config.CategorySuspect:
		return c.Suspects
	case config.CategoryWeapon:
		return c.Weapons
	case config.CategoryRoom:
		return c.Rooms
	default:
		return nil
	}
}

// EnvelopeCandidates returns every card the envelope might still hold.
func (e *Engine) EnvelopeCandidates() Candidates {
	env := e.reg.column(Envelope)
	var out Candidates
	for _, c := range e.reg.cards {
		if !e.row(c)[env] {
			continue
		}
		switch c.category {
		case config.CategorySuspect:
			out.Suspects = append(out.Suspects, c)
		case config.CategoryWeapon:
			out.Weapons = append(out.Weapons, c)
		case config.CategoryRoom:
			out.Rooms = append(out.Rooms, c)
		}
	}
	return out
}

// IsSolutionKnown reports whether one card of every category is proven to
// be in the envelope. Once true it stays true.
func (e *Engine) IsSolutionKnown() bool { return e.solution != nil }

// SolutionIfKnown returns the envelope's content once it is proven.
func (e *Engine) SolutionIfKnown() (Solution, bool) {
	if e.solution == nil {
		return Solution{}, false
	}
	return *e.solution, true
}

// InformationValue scores a set of cards by how many alternative holders
// remain across them. Lower scores are closer to being resolved and rank as
// more informative.
func (e *Engine) InformationValue(cards []Card) int {
	total := 0
	for _, c := range cards {
		e.mustCard(c)
		total += countTrue(e.row(c)) - 1
	}
	return total
}

// RankSuggestions orders candidate suggestions from most to least
// informative. Ties keep their input order.
func (e *Engine) RankSuggestions(candidates []Suggestion) []Suggestion {
	ranked := append([]Suggestion(nil), candidates...)
	scores := make(map[Suggestion]int, len(ranked))
	for _, s := range ranked {
		scores[s] = e.InformationValue(s.Cards())
	}
	sort.SliceStable(ranked, func(i, j int) bool { return scores[ranked[i]] < scores[ranked[j]] })
	return ranked
}
