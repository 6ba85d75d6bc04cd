package player

import (
	"fmt"
	"sort"

	"cluedo-toolbox/internal/config"
	"cluedo-toolbox/internal/deduction"
	"cluedo-toolbox/internal/events"

	"github.com/sirupsen/logrus"
)

// Notebook is a player's private detective notes: a deduction engine fed
// from the public game events the player witnesses. Names coming from events
// are resolved to cards and seats here, once.
type Notebook struct {
	name   string
	reg    *deduction.Registry
	engine *deduction.Engine
	hand   map[string]struct{}
	log    logrus.FieldLogger
}

// NewNotebook creates the notes of table.Me.
func NewNotebook(table Table, log logrus.FieldLogger) (*Notebook, error) {
	reg, err := deduction.RegistryFromConfig(table.Config, table.Players)
	if err != nil {
		return nil, err
	}
	self, err := reg.Holder(table.Me)
	if err != nil {
		return nil, err
	}
	engine, err := deduction.NewEngine(reg, self, log, deduction.Options{
		HandSizes:  table.HandSizes,
		AllowBluff: table.AllowBluff,
	})
	if err != nil {
		return nil, err
	}
	return &Notebook{
		name:   table.Me,
		reg:    reg,
		engine: engine,
		hand:   make(map[string]struct{}),
		log:    log,
	}, nil
}

func (n *Notebook) Owner() string                 { return n.name }
func (n *Notebook) Engine() *deduction.Engine     { return n.engine }
func (n *Notebook) Registry() *deduction.Registry { return n.reg }

// Hand returns the owner's cards, sorted.
func (n *Notebook) Hand() []string {
	cards := make([]string, 0, len(n.hand))
	for card := range n.hand {
		cards = append(cards, card)
	}
	sort.Strings(cards)
	return cards
}

// HasCard reports whether the owner holds card.
func (n *Notebook) HasCard(card string) bool {
	_, ok := n.hand[card]
	return ok
}

// ReceiveHand records the owner's complete hand.
func (n *Notebook) ReceiveHand(cards []string) error {
	resolved := make([]deduction.Card, 0, len(cards))
	for _, name := range cards {
		c, err := n.reg.Card(name)
		if err != nil {
			return err
		}
		resolved = append(resolved, c)
		n.hand[name] = struct{}{}
	}
	return n.engine.SeedHand(resolved)
}

// Apply feeds one game event into the engine. Events the notebook does not
// learn from are ignored.
func (n *Notebook) Apply(e events.Event) error {
	switch event := e.(type) {
	case events.TurnResolvedEvent:
		return n.applyTurn(event)
	case events.AccusationResolvedEvent:
		accuser, err := n.reg.Holder(event.AccuserName)
		if err != nil {
			return err
		}
		s, err := n.reg.ParseSuggestion(event.Accusation)
		if err != nil {
			return err
		}
		return n.engine.ObserveAccusation(accuser, s, event.IsCorrect)
	case events.CardRevealedEvent:
		holder, err := n.reg.Holder(event.HolderName)
		if err != nil {
			return err
		}
		card, err := n.reg.Card(event.Card)
		if err != nil {
			return err
		}
		return n.engine.ObserveCard(holder, card)
	}
	return nil
}

func (n *Notebook) applyTurn(event events.TurnResolvedEvent) error {
	suggester, err := n.reg.Holder(event.SuggesterName)
	if err != nil {
		return err
	}
	s, err := n.reg.ParseSuggestion(event.Suggestion)
	if err != nil {
		return err
	}
	if event.DisproverName == "" {
		if suggester == n.engine.Self() {
			n.log.Infof("My suggestion was not disproved! Making powerful deductions.")
		}
		return n.engine.ObserveNoResponse(suggester, s)
	}

	disprover, err := n.reg.Holder(event.DisproverName)
	if err != nil {
		return err
	}
	if event.RevealedCard != "" {
		shown, err := n.reg.Card(event.RevealedCard)
		if err != nil {
			return err
		}
		return n.engine.ObserveShownCard(suggester, s, disprover, shown)
	}
	return n.engine.ObserveHiddenResponse(suggester, s, disprover)
}

// Suggestion converts an engine suggestion to the name form used by events.
func Suggestion(s deduction.Suggestion) map[config.CardCategory]string {
	return map[config.CardCategory]string{
		config.CategorySuspect: s.Suspect.Name(),
		config.CategoryWeapon:  s.Weapon.Name(),
		config.CategoryRoom:    s.Room.Name(),
	}
}

// SolutionIfKnown returns the deduced solution in name form.
func (n *Notebook) SolutionIfKnown() (map[config.CardCategory]string, bool) {
	sol, ok := n.engine.SolutionIfKnown()
	if !ok {
		return nil, false
	}
	return Suggestion(sol), true
}

// Describe renders one observation for display.
func (n *Notebook) Describe(o deduction.Observation) string {
	who := n.reg.HolderName
	switch o.Kind {
	case deduction.ObservedNoResponse:
		return fmt.Sprintf("%s suggested %s; nobody could disprove it", who(o.Suggester), o.Suggestion)
	case deduction.ObservedShownCard:
		return fmt.Sprintf("%s suggested %s; %s showed %s", who(o.Suggester), o.Suggestion, who(o.Responder), o.Shown)
	case deduction.ObservedHiddenResponse:
		return fmt.Sprintf("%s suggested %s; %s showed a card", who(o.Suggester), o.Suggestion, who(o.Responder))
	case deduction.ObservedAccusation:
		verdict := "wrong"
		if o.Correct {
			verdict = "correct"
		}
		return fmt.Sprintf("%s accused %s (%s)", who(o.Suggester), o.Suggestion, verdict)
	default:
		return fmt.Sprintf("%s holds %s", who(o.Suggester), o.Shown)
	}
}
