package cli

import (
	"testing"

	"cluedo-toolbox/internal/config"
	"cluedo-toolbox/internal/deduction"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestFormatTripleUsesCategoryOrder(t *testing.T) {
	color.NoColor = true
	got := formatTriple(map[config.CardCategory]string{
		config.CategoryRoom:    "Hall",
		config.CategorySuspect: "Mrs. White",
		config.CategoryWeapon:  "Rope",
	})
	assert.Equal(t, "Mrs. White, Rope, Hall", got)
}

func TestStatusToSymbol(t *testing.T) {
	color.NoColor = true
	assert.Equal(t, "✔", statusToSymbol(deduction.StatusYes))
	assert.Equal(t, "✖", statusToSymbol(deduction.StatusNo))
	assert.Equal(t, "?", statusToSymbol(deduction.StatusMaybe))
}

func TestContainsIgnoresCase(t *testing.T) {
	assert.True(t, contains([]string{"Alice", "Bob"}, "bob"))
	assert.False(t, contains([]string{"Alice"}, "Carol"))
}
