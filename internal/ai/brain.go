package ai

import (
	"math/rand"

	"cluedo-toolbox/internal/config"
	"cluedo-toolbox/internal/deduction"
	"cluedo-toolbox/internal/events"
	"cluedo-toolbox/internal/player"

	"github.com/sirupsen/logrus"
)

// AdvancedAIBrain implements the Player interface on top of a deduction
// notebook. Its strategies only read the notebook; all knowledge comes from
// the events it is sent.
type AdvancedAIBrain struct {
	name                  string
	config                *config.GameConfig
	players               []string
	notebook              *player.Notebook
	recentSurgicalTargets *StringDeque
	strategies            []SuggestionStrategy
	log                   logrus.FieldLogger
	chooser               Chooser
	rand                  *rand.Rand
}

// --- Public Getters for CLI ---
func (ai *AdvancedAIBrain) Config() *config.GameConfig { return ai.config }
func (ai *AdvancedAIBrain) Players() []string          { return ai.players }
func (ai *AdvancedAIBrain) Notebook() *player.Notebook { return ai.notebook }

// NewAdvancedAIBrain is the constructor for the AI player. It injects dependencies.
func NewAdvancedAIBrain(logger logrus.FieldLogger, rand *rand.Rand, chooser Chooser) *AdvancedAIBrain {
	ai := &AdvancedAIBrain{
		log:     logger,
		rand:    rand,
		chooser: chooser,
	}

	ai.strategies = []SuggestionStrategy{
		&ExploitStrategy{},
		&SurgicalStrikeStrategy{},
		&ExploreStrategy{},
	}
	return ai
}

func (ai *AdvancedAIBrain) Name() string   { return ai.name }
func (ai *AdvancedAIBrain) IsHuman() bool  { return false }
func (ai *AdvancedAIBrain) Hand() []string { return ai.notebook.Hand() }

func (ai *AdvancedAIBrain) Setup(table player.Table) error {
	ai.name = table.Me
	ai.config = table.Config
	ai.players = table.Players
	ai.log = ai.log.WithField("player", ai.name)
	ai.recentSurgicalTargets = NewStringDeque(3)

	nb, err := player.NewNotebook(table, ai.log)
	if err != nil {
		return err
	}
	ai.notebook = nb
	ai.log.Debugf("Master deduction engine initialized.")
	return nil
}

func (ai *AdvancedAIBrain) ReceiveHand(cards []string) {
	if err := ai.notebook.ReceiveHand(cards); err != nil {
		ai.log.Errorf("Could not record my hand: %v", err)
	}
}

func (ai *AdvancedAIBrain) HandleEvent(e events.Event) {
	if err := ai.notebook.Apply(e); err != nil {
		ai.log.Errorf("Deduction failed: %v", err)
	}
}

func (ai *AdvancedAIBrain) ChooseCardToShow(suggestion map[config.CardCategory]string) string {
	var canShow []string
	for _, cat := range config.Categories {
		if card := suggestion[cat]; ai.notebook.HasCard(card) {
			canShow = append(canShow, card)
		}
	}
	return ai.chooser.Choose(canShow)
}

func (ai *AdvancedAIBrain) MakeSuggestion() map[config.CardCategory]string {
	ai.log.Debugf("Formulating a master-level suggestion...")
	for _, s := range ai.strategies {
		if suggestion, ok := s.BuildSuggestion(ai); ok {
			return suggestion
		}
	}
	return (&ExploreStrategy{}).mustBuild(ai)
}

// ShouldAccuse returns the solution once every category is pinned down, and
// nil before that or after the notes have contradicted themselves.
func (ai *AdvancedAIBrain) ShouldAccuse() map[config.CardCategory]string {
	if ai.engine().Err() != nil {
		return nil
	}
	solution, ok := ai.notebook.SolutionIfKnown()
	if !ok {
		return nil
	}
	ai.log.Debugf("Finalizing knowledge before accusing.")
	return solution
}

func (ai *AdvancedAIBrain) engine() *deduction.Engine { return ai.notebook.Engine() }

func (ai *AdvancedAIBrain) card(name string) deduction.Card {
	return ai.notebook.Registry().MustCard(name)
}
