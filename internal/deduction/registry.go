package deduction

import (
	"fmt"
	"sort"
	"strings"

	"cluedo-toolbox/internal/config"
)

// Card is a handle issued by a Registry. The zero Card is invalid.
type Card struct {
	id       int
	name     string
	category config.CardCategory
}

func (c Card) Name() string                  { return c.name }
func (c Card) Category() config.CardCategory { return c.category }
func (c Card) String() string                { return c.name }

// IsZero reports whether c was never resolved against a Registry.
func (c Card) IsZero() bool { return c == Card{} }

// Holder is a seat index in turn order, or Envelope.
type Holder int

// Envelope is the sentinel holder for the hidden solution.
const Envelope Holder = -1

// Suggestion names one card per category.
type Suggestion struct {
	Suspect Card
	Weapon  Card
	Room    Card
}

// Cards returns the suggestion in category order.
func (s Suggestion) Cards() []Card { return []Card{s.Suspect, s.Weapon, s.Room} }

// Contains reports whether c is one of the suggested cards.
func (s Suggestion) Contains(c Card) bool {
	return c == s.Suspect || c == s.Weapon || c == s.Room
}

func (s Suggestion) String() string {
	return fmt.Sprintf("%s, %s, %s", s.Suspect, s.Weapon, s.Room)
}

// Solution is the deduced content of the envelope.
type Solution = Suggestion

// Registry is the fixed vocabulary of one game: every card and every holder.
type Registry struct {
	cards      []Card
	byName     map[string]Card
	byCategory map[config.CardCategory][]Card
	players    []string
}

// NewRegistry builds the vocabulary. Players are listed in turn order; a
// player's position becomes its Holder.
func NewRegistry(players []string, suspects, weapons, rooms []string) (*Registry, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: no players", ErrInvalidHolder)
	}
	r := &Registry{
		byName:     make(map[string]Card),
		byCategory: make(map[config.CardCategory][]Card),
		players:    append([]string(nil), players...),
	}
	seen := make(map[string]struct{}, len(players))
	for _, p := range players {
		if strings.EqualFold(p, envelopeName) {
			return nil, fmt.Errorf("%w: %q is reserved", ErrInvalidHolder, p)
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: duplicate player %q", ErrInvalidHolder, p)
		}
		seen[p] = struct{}{}
	}

	lists := map[config.CardCategory][]string{
		config.CategorySuspect: suspects,
		config.CategoryWeapon:  weapons,
		config.CategoryRoom:    rooms,
	}
	for _, cat := range config.Categories {
		if len(lists[cat]) == 0 {
			return nil, fmt.Errorf("%w: no %s", ErrInvalidCard, cat)
		}
		for _, name := range lists[cat] {
			if _, dup := r.byName[name]; dup {
				return nil, fmt.Errorf("%w: duplicate card %q", ErrInvalidCard, name)
			}
			// ids start at 1 so the zero Card stays invalid
			c := Card{id: len(r.cards) + 1, name: name, category: cat}
			r.cards = append(r.cards, c)
			r.byName[name] = c
			r.byCategory[cat] = append(r.byCategory[cat], c)
		}
	}
	return r, nil
}

// RegistryFromConfig builds a Registry from a loaded deck.
func RegistryFromConfig(cfg *config.GameConfig, players []string) (*Registry, error) {
	return NewRegistry(players, cfg.Suspects, cfg.Weapons, cfg.Rooms)
}

const envelopeName = "Envelope"

// Card resolves a card name.
func (r *Registry) Card(name string) (Card, error) {
	c, ok := r.byName[name]
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, name)
	}
	return c, nil
}

// MustCard is Card for names known to be valid; it panics otherwise.
func (r *Registry) MustCard(name string) Card {
	c, err := r.Card(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Holder resolves a player name, or "Envelope".
func (r *Registry) Holder(name string) (Holder, error) {
	if name == envelopeName {
		return Envelope, nil
	}
	for i, p := range r.players {
		if p == name {
			return Holder(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidHolder, name)
}

// HolderName is the display name of h.
func (r *Registry) HolderName(h Holder) string {
	if h == Envelope {
		return envelopeName
	}
	if r.validPlayer(h) {
		return r.players[h]
	}
	return fmt.Sprintf("holder(%d)", int(h))
}

// Cards returns every card, suspects first, then weapons, then rooms.
func (r *Registry) Cards() []Card { return append([]Card(nil), r.cards...) }

// CardsIn returns the cards of one category.
func (r *Registry) CardsIn(cat config.CardCategory) []Card {
	return append([]Card(nil), r.byCategory[cat]...)
}

// Players returns the player names in turn order.
func (r *Registry) Players() []string { return append([]string(nil), r.players...) }

// Holders returns every player holder followed by Envelope.
func (r *Registry) Holders() []Holder {
	hs := make([]Holder, 0, len(r.players)+1)
	for i := range r.players {
		hs = append(hs, Holder(i))
	}
	return append(hs, Envelope)
}

// ParseSuggestion resolves one name per category.
func (r *Registry) ParseSuggestion(names map[config.CardCategory]string) (Suggestion, error) {
	var s Suggestion
	for _, cat := range config.Categories {
		name, ok := names[cat]
		if !ok {
			return s, fmt.Errorf("%w: missing %s", ErrInvalidSuggestion, cat)
		}
		c, err := r.Card(name)
		if err != nil {
			return s, err
		}
		if c.category != cat {
			return s, fmt.Errorf("%w: %q is not one of the %s", ErrInvalidSuggestion, name, cat)
		}
		switch cat {
		case config.CategorySuspect:
			s.Suspect = c
		case config.CategoryWeapon:
			s.Weapon = c
		case config.CategoryRoom:
			s.Room = c
		}
	}
	return s, nil
}

func (r *Registry) validCard(c Card) bool {
	return c.id >= 1 && c.id <= len(r.cards) && r.cards[c.id-1] == c
}

func (r *Registry) validPlayer(h Holder) bool {
	return h >= 0 && int(h) < len(r.players)
}

func (r *Registry) validHolder(h Holder) bool {
	return h == Envelope || r.validPlayer(h)
}

// column maps a holder to its matrix column; Envelope is the last one.
func (r *Registry) column(h Holder) int {
	if h == Envelope {
		return len(r.players)
	}
	return int(h)
}

func (r *Registry) holderAt(col int) Holder {
	if col == len(r.players) {
		return Envelope
	}
	return Holder(col)
}

func (r *Registry) validSuggestion(s Suggestion) error {
	want := []config.CardCategory{config.CategorySuspect, config.CategoryWeapon, config.CategoryRoom}
	for i, c := range s.Cards() {
		if !r.validCard(c) {
			return fmt.Errorf("%w: %v", ErrInvalidCard, c)
		}
		if c.category != want[i] {
			return fmt.Errorf("%w: %s is not one of the %s", ErrInvalidSuggestion, c, want[i])
		}
	}
	return nil
}

func sortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool { return cards[i].id < cards[j].id })
}
