package player

import (
	"errors"

	"cluedo-toolbox/internal/config"
	"cluedo-toolbox/internal/events"

	"github.com/sirupsen/logrus"
)

// Prompter asks a person to take the decisions of a HumanPlayer.
type Prompter interface {
	PromptSuggestion(p *HumanPlayer) map[config.CardCategory]string
	// PromptAccusation returns nil when the player does not accuse.
	PromptAccusation(p *HumanPlayer) map[config.CardCategory]string
	PromptCardToShow(p *HumanPlayer, options []string) string
}

var ErrNoPrompter = errors.New("human player needs a prompter")

// HumanPlayer represents a player controlled by a person. The notebook keeps
// their notes up to date from the same events the AI players see.
type HumanPlayer struct {
	name         string
	cfg          *config.GameConfig
	notebook     *Notebook
	prompter     Prompter
	eventManager *events.Manager
	log          logrus.FieldLogger
}

// NewHumanPlayer accepts the event manager it will publish to and the prompter
// that asks the person for decisions.
func NewHumanPlayer(eventManager *events.Manager, prompter Prompter, log logrus.FieldLogger) (*HumanPlayer, error) {
	if prompter == nil {
		return nil, ErrNoPrompter
	}
	return &HumanPlayer{
		prompter:     prompter,
		eventManager: eventManager,
		log:          log,
	}, nil
}

func (h *HumanPlayer) Name() string               { return h.name }
func (h *HumanPlayer) IsHuman() bool              { return true }
func (h *HumanPlayer) Notebook() *Notebook        { return h.notebook }
func (h *HumanPlayer) Config() *config.GameConfig { return h.cfg }
func (h *HumanPlayer) Hand() []string             { return h.notebook.Hand() }

func (h *HumanPlayer) Setup(table Table) error {
	h.name = table.Me
	h.cfg = table.Config
	h.log = h.log.WithField("player", table.Me)
	nb, err := NewNotebook(table, h.log)
	if err != nil {
		return err
	}
	h.notebook = nb
	return nil
}

func (h *HumanPlayer) ReceiveHand(cards []string) {
	if err := h.notebook.ReceiveHand(cards); err != nil {
		h.log.Errorf("Could not record my hand: %v", err)
	}
	h.eventManager.Publish(events.HumanHandRevealedEvent{
		PlayerName: h.name,
		Hand:       h.Hand(),
	})
}

func (h *HumanPlayer) HandleEvent(e events.Event) {
	if err := h.notebook.Apply(e); err != nil {
		h.log.Errorf("My notes no longer add up: %v", err)
	}
}

func (h *HumanPlayer) ChooseCardToShow(suggestion map[config.CardCategory]string) string {
	var canShow []string
	for _, cat := range config.Categories {
		if card := suggestion[cat]; h.notebook.HasCard(card) {
			canShow = append(canShow, card)
		}
	}
	switch len(canShow) {
	case 0:
		return ""
	case 1:
		return canShow[0]
	}
	return h.prompter.PromptCardToShow(h, canShow)
}

func (h *HumanPlayer) MakeSuggestion() map[config.CardCategory]string {
	return h.prompter.PromptSuggestion(h)
}

func (h *HumanPlayer) ShouldAccuse() map[config.CardCategory]string {
	return h.prompter.PromptAccusation(h)
}
