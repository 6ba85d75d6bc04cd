package player

import (
	"cluedo-toolbox/internal/config"
	"cluedo-toolbox/internal/events"
)

// Table describes the game a player is seated at.
type Table struct {
	Config  *config.GameConfig
	Players []string // turn order
	Me      string
	// HandSizes is nil when the deal is not known.
	HandSizes  []int
	AllowBluff bool
}

// Player is the interface that all player types (human or AI) must implement.
// It also implements events.Listener to react to game events.
type Player interface {
	events.Listener // Embed the Listener interface

	Name() string
	IsHuman() bool
	Hand() []string
	Setup(table Table) error
	ReceiveHand(cards []string)
	MakeSuggestion() map[config.CardCategory]string
	ShouldAccuse() map[config.CardCategory]string
	ChooseCardToShow(suggestion map[config.CardCategory]string) string
	Notebook() *Notebook
}
