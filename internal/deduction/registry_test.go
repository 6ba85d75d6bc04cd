package deduction

import (
	"testing"

	"cluedo-toolbox/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookups(t *testing.T) {
	reg, err := RegistryFromConfig(loadTestConfig(t), testPlayers)
	require.NoError(t, err)

	t.Run("cards resolve by name", func(t *testing.T) {
		rope, err := reg.Card("Rope")
		require.NoError(t, err)
		assert.Equal(t, "Rope", rope.Name())
		assert.Equal(t, config.CategoryWeapon, rope.Category())
		assert.False(t, rope.IsZero())

		_, err = reg.Card("Banana")
		assert.ErrorIs(t, err, ErrInvalidCard)
		assert.Panics(t, func() { reg.MustCard("Banana") })
	})

	t.Run("holders resolve by name", func(t *testing.T) {
		h, err := reg.Holder("Colonel Mustard")
		require.NoError(t, err)
		assert.Equal(t, Holder(2), h)

		h, err = reg.Holder("Envelope")
		require.NoError(t, err)
		assert.Equal(t, Envelope, h)

		_, err = reg.Holder("Mrs. White")
		assert.ErrorIs(t, err, ErrInvalidHolder)

		assert.Equal(t, "Mr. Green", reg.HolderName(1))
		assert.Equal(t, "Envelope", reg.HolderName(Envelope))
		assert.Equal(t, []Holder{0, 1, 2, Envelope}, reg.Holders())
	})

	t.Run("cards are grouped by category", func(t *testing.T) {
		assert.Len(t, reg.Cards(), 21)
		assert.Len(t, reg.CardsIn(config.CategoryRoom), 9)
		assert.Equal(t, config.CategorySuspect, reg.Cards()[0].Category())
	})
}

func TestNewRegistryRejectsBadVocabulary(t *testing.T) {
	cases := map[string]struct {
		players                  []string
		suspects, weapons, rooms []string
		want                     error
	}{
		"no players":         {nil, []string{"S"}, []string{"W"}, []string{"R"}, ErrInvalidHolder},
		"duplicate player":   {[]string{"A", "A"}, []string{"S"}, []string{"W"}, []string{"R"}, ErrInvalidHolder},
		"reserved player":    {[]string{"A", "envelope"}, []string{"S"}, []string{"W"}, []string{"R"}, ErrInvalidHolder},
		"empty category":     {[]string{"A", "B"}, []string{"S"}, nil, []string{"R"}, ErrInvalidCard},
		"card in two places": {[]string{"A", "B"}, []string{"S"}, []string{"S"}, []string{"R"}, ErrInvalidCard},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewRegistry(tc.players, tc.suspects, tc.weapons, tc.rooms)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseSuggestion(t *testing.T) {
	reg, err := RegistryFromConfig(loadTestConfig(t), testPlayers)
	require.NoError(t, err)

	s, err := reg.ParseSuggestion(map[config.CardCategory]string{
		config.CategorySuspect: "Mrs. White",
		config.CategoryWeapon:  "Rope",
		config.CategoryRoom:    "Hall",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mrs. White, Rope, Hall", s.String())
	assert.True(t, s.Contains(reg.MustCard("Rope")))

	_, err = reg.ParseSuggestion(map[config.CardCategory]string{
		config.CategorySuspect: "Mrs. White",
		config.CategoryWeapon:  "Hall",
		config.CategoryRoom:    "Rope",
	})
	assert.ErrorIs(t, err, ErrInvalidSuggestion)

	_, err = reg.ParseSuggestion(map[config.CardCategory]string{config.CategorySuspect: "Mrs. White"})
	assert.ErrorIs(t, err, ErrInvalidSuggestion)
}
