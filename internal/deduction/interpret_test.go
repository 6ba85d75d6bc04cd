package deduction

import (
	"testing"

	"cluedo-toolbox/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suggestion(reg *Registry, suspect, weapon, room string) Suggestion {
	return Suggestion{
		Suspect: reg.MustCard(suspect),
		Weapon:  reg.MustCard(weapon),
		Room:    reg.MustCard(room),
	}
}

func TestHiddenResponseIsResolvedLater(t *testing.T) {
	// GIVEN Miss Scarlett watching Mr. Green suggest, and Colonel Mustard
	// showing him a card she does not see
	e, reg := newTestEngine(t, 0, Options{})
	s := suggestion(reg, "Mrs. White", "Rope", "Hall")
	require.NoError(t, e.ObserveHiddenResponse(1, s, 2))

	ds := e.Disjunctions()
	require.Len(t, ds, 1)
	assert.Equal(t, Holder(2), ds[0].Holder)
	assert.ElementsMatch(t, s.Cards(), ds[0].Cards)

	// WHEN separate evidence shows Mustard has neither Mrs. White nor the Rope
	require.NoError(t, e.Eliminate(s.Suspect, 2))
	require.NoError(t, e.Eliminate(s.Weapon, 2))

	// THEN he must have shown the Hall
	assert.Equal(t, []Holder{2}, e.PossibleHolders(s.Room))
	assert.NotContains(t, e.EnvelopeCandidates().Rooms, s.Room)
	assert.Empty(t, e.Disjunctions())
}

func TestHiddenResponseEliminatesPassedPlayers(t *testing.T) {
	// GIVEN Mr. Green observing; seats are Scarlett(0), Green(1), Mustard(2)
	e, reg := newTestEngine(t, 1, Options{})
	s := suggestion(reg, "Professor Plum", "Dagger", "Study")

	// WHEN Miss Scarlett suggests and Colonel Mustard answers, Mr. Green passed
	require.NoError(t, e.ObserveHiddenResponse(0, s, 2))

	for _, c := range s.Cards() {
		assert.Equal(t, StatusNo, e.Status(c, 1), c.Name())
		assert.Equal(t, StatusMaybe, e.Status(c, 2), c.Name())
	}
	assert.Equal(t, []Holder{1}, e.Passed(0, 2))
	assert.Empty(t, e.Passed(0, 1))
}

func TestPassedWrapsAroundTheTable(t *testing.T) {
	e, _ := newTestEngine(t, 0, Options{})

	assert.Equal(t, []Holder{0}, e.Passed(2, 1))
	assert.Equal(t, []Holder{2}, e.Passed(1, 0))
	assert.Empty(t, e.Passed(2, 0))
}

func TestPassedIgnoresSeatsOffTheTable(t *testing.T) {
	e, _ := newTestEngine(t, 0, Options{})

	assert.Empty(t, e.Passed(Envelope, Envelope))
	assert.Empty(t, e.Passed(Holder(5), Holder(7)))
	assert.Empty(t, e.Passed(0, Holder(3)))
	assert.Empty(t, e.Passed(Envelope, 1))
}

func TestShownCard(t *testing.T) {
	// GIVEN Miss Scarlett suggesting
	e, reg := newTestEngine(t, 0, Options{})
	s := suggestion(reg, "Mrs. Peacock", "Candlestick", "Library")

	// WHEN Colonel Mustard shows her the Candlestick, Mr. Green having passed
	require.NoError(t, e.ObserveShownCard(0, s, 2, s.Weapon))

	assert.Equal(t, []Holder{2}, e.PossibleHolders(s.Weapon))
	for _, c := range s.Cards() {
		assert.Equal(t, StatusNo, e.Status(c, 1), c.Name())
	}

	t.Run("the shown card must be part of the suggestion", func(t *testing.T) {
		err := e.ObserveShownCard(0, s, 2, reg.MustCard("Rope"))
		assert.ErrorIs(t, err, ErrInvalidSuggestion)
	})

	t.Run("nobody answers their own suggestion", func(t *testing.T) {
		err := e.ObserveShownCard(0, s, 0, s.Weapon)
		assert.ErrorIs(t, err, ErrInvalidHolder)
	})
}

func TestNoResponseForOwnSuggestion(t *testing.T) {
	// GIVEN Miss Scarlett suggesting three cards she does not know about
	e, reg := newTestEngine(t, 0, Options{})
	s := suggestion(reg, "Mrs. White", "Lead Pipe", "Kitchen")

	// WHEN nobody can disprove it
	require.NoError(t, e.ObserveNoResponse(0, s))

	// THEN all three cards are the envelope's and the solution is known
	for _, c := range s.Cards() {
		assert.Equal(t, []Holder{Envelope}, e.PossibleHolders(c), c.Name())
	}
	assert.True(t, e.IsSolutionKnown())
	got, ok := e.SolutionIfKnown()
	require.True(t, ok)
	assert.Equal(t, s, got)
}

func TestNoResponseKeepsOwnCards(t *testing.T) {
	// GIVEN Miss Scarlett holding the Rope
	e, reg := newTestEngine(t, 0, Options{})
	require.NoError(t, e.SeedHand([]Card{reg.MustCard("Rope")}))
	s := suggestion(reg, "Mrs. White", "Rope", "Kitchen")

	// WHEN she suggests it as a bluff and nobody answers
	require.NoError(t, e.ObserveNoResponse(0, s))

	// THEN the Rope stays hers and only the other two are in the envelope
	assert.Equal(t, []Holder{0}, e.PossibleHolders(s.Weapon))
	assert.Equal(t, []Holder{Envelope}, e.PossibleHolders(s.Suspect))
	assert.Equal(t, []Holder{Envelope}, e.PossibleHolders(s.Room))
	assert.False(t, e.IsSolutionKnown())
}

func TestNoResponseForSomebodyElse(t *testing.T) {
	s := func(reg *Registry) Suggestion { return suggestion(reg, "Mr. Green", "Wrench", "Lounge") }

	t.Run("all three cards go to the envelope", func(t *testing.T) {
		// GIVEN Miss Scarlett observing Mr. Green's suggestion
		e, reg := newTestEngine(t, 0, Options{})

		// WHEN nobody answers it
		require.NoError(t, e.ObserveNoResponse(1, s(reg)))

		// THEN the solution is known
		for _, c := range s(reg).Cards() {
			assert.Equal(t, []Holder{Envelope}, e.PossibleHolders(c), c.Name())
		}
		assert.True(t, e.IsSolutionKnown())
		sol, ok := e.SolutionIfKnown()
		require.True(t, ok)
		assert.Equal(t, s(reg), sol)
	})

	t.Run("a card known to be the suggester's stays with them", func(t *testing.T) {
		e, reg := newTestEngine(t, 0, Options{})
		require.NoError(t, e.Assign(reg.MustCard("Wrench"), 1))

		require.NoError(t, e.ObserveNoResponse(1, s(reg)))

		assert.Equal(t, []Holder{1}, e.PossibleHolders(reg.MustCard("Wrench")))
		assert.Equal(t, []Holder{Envelope}, e.PossibleHolders(reg.MustCard("Mr. Green")))
		assert.Equal(t, []Holder{Envelope}, e.PossibleHolders(reg.MustCard("Lounge")))
		assert.False(t, e.IsSolutionKnown())
	})

	t.Run("allowing bluffs leaves the suggester possible", func(t *testing.T) {
		e, reg := newTestEngine(t, 0, Options{AllowBluff: true})
		require.NoError(t, e.ObserveNoResponse(1, s(reg)))
		for _, c := range s(reg).Cards() {
			assert.Equal(t, []Holder{1, Envelope}, e.PossibleHolders(c), c.Name())
		}
		assert.False(t, e.IsSolutionKnown())
	})
}

func TestAccusations(t *testing.T) {
	t.Run("a wrong accusation changes nothing", func(t *testing.T) {
		e, reg := newTestEngine(t, 0, Options{})
		s := suggestion(reg, "Mrs. White", "Lead Pipe", "Kitchen")
		require.NoError(t, e.ObserveAccusation(2, s, false))
		for _, c := range s.Cards() {
			assert.Equal(t, []Holder{0, 1, 2, Envelope}, e.PossibleHolders(c))
		}
		assert.Len(t, e.History(), 1)
	})

	t.Run("a correct accusation reveals the solution", func(t *testing.T) {
		e, reg := newTestEngine(t, 0, Options{})
		s := suggestion(reg, "Mrs. White", "Lead Pipe", "Kitchen")
		require.NoError(t, e.ObserveAccusation(2, s, true))
		got, ok := e.SolutionIfKnown()
		require.True(t, ok)
		assert.Equal(t, s, got)
	})
}

func TestObserveCard(t *testing.T) {
	e, reg := newTestEngine(t, 0, Options{})
	require.NoError(t, e.ObserveCard(2, reg.MustCard("Ballroom")))
	assert.Equal(t, []Holder{2}, e.PossibleHolders(reg.MustCard("Ballroom")))

	h := e.History()
	require.Len(t, h, 1)
	assert.Equal(t, ObservedCard, h[0].Kind)
	assert.Equal(t, "card revealed", h[0].Kind.String())
}

func TestSuggestionsAreValidated(t *testing.T) {
	e, reg := newTestEngine(t, 0, Options{})

	swapped := Suggestion{Suspect: reg.MustCard("Rope"), Weapon: reg.MustCard("Mr. Green"), Room: reg.MustCard("Hall")}
	assert.ErrorIs(t, e.ObserveNoResponse(1, swapped), ErrInvalidSuggestion)
	assert.ErrorIs(t, e.ObserveNoResponse(Envelope, suggestion(reg, "Mr. Green", "Rope", "Hall")), ErrInvalidHolder)
	assert.ErrorIs(t, e.ObserveHiddenResponse(0, Suggestion{}, 1), ErrInvalidCard)
	assert.Empty(t, e.History())
}

func TestInformationValue(t *testing.T) {
	e, reg := newTestEngine(t, 0, Options{})
	rope, hall, plum := reg.MustCard("Rope"), reg.MustCard("Hall"), reg.MustCard("Professor Plum")

	assert.Equal(t, 9, e.InformationValue([]Card{rope, hall, plum}))

	require.NoError(t, e.Assign(rope, 1))
	require.NoError(t, e.Eliminate(hall, 2))
	assert.Equal(t, 5, e.InformationValue([]Card{rope, hall, plum}))

	t.Run("rank puts the best-known suggestion first", func(t *testing.T) {
		open := suggestion(reg, "Mrs. White", "Dagger", "Study")
		known := Suggestion{Suspect: plum, Weapon: rope, Room: hall}
		ranked := e.RankSuggestions([]Suggestion{open, known})
		assert.Equal(t, []Suggestion{known, open}, ranked)
	})
}

func TestEnvelopeCandidatesByCategory(t *testing.T) {
	e, reg := newTestEngine(t, 0, Options{})
	require.NoError(t, e.Assign(reg.MustCard("Hall"), 1))

	cands := e.EnvelopeCandidates()
	assert.Len(t, cands.ForCategory(config.CategorySuspect), 6)
	assert.Len(t, cands.ForCategory(config.CategoryWeapon), 6)
	assert.Len(t, cands.ForCategory(config.CategoryRoom), 8)
}
