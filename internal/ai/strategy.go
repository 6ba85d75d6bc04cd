package ai

import (
	"sort"

	"cluedo-toolbox/internal/config"
	"cluedo-toolbox/internal/deduction"
	"cluedo-toolbox/internal/player"
)

// SuggestionStrategy defines the interface for an AI's decision-making logic.
type SuggestionStrategy interface {
	BuildSuggestion(ai *AdvancedAIBrain) (map[config.CardCategory]string, bool)
}

// --- Strategy Implementations ---

// ExploitStrategy keeps the envelope cards already known and probes the rest.
type ExploitStrategy struct{}

func (s *ExploitStrategy) BuildSuggestion(ai *AdvancedAIBrain) (map[config.CardCategory]string, bool) {
	known := ai.knownEnvelopeCards()
	if len(known) == 0 || len(known) == len(config.Categories) {
		return nil, false
	}

	ai.log.Infof("Strategy: EXPLOIT. I know %d/3 of the solution.", len(known))
	suggestion := make(map[config.CardCategory]string)
	for _, cat := range config.Categories {
		if card, ok := known[cat]; ok {
			suggestion[cat] = card
		} else {
			suggestion[cat] = ai.pickUnknownCard(cat)
		}
	}
	return suggestion, true
}

// SurgicalStrikeStrategy targets the card that appears most often among the
// open "holds at least one of" constraints and pads the suggestion with cards
// from the AI's own hand so only the target can be shown.
type SurgicalStrikeStrategy struct{}

func (s *SurgicalStrikeStrategy) BuildSuggestion(ai *AdvancedAIBrain) (map[config.CardCategory]string, bool) {
	disjunctions := ai.engine().Disjunctions()
	if len(disjunctions) == 0 {
		return nil, false
	}

	cardFrequency := make(map[string]int)
	for _, d := range disjunctions {
		for _, card := range d.Cards {
			cardFrequency[card.Name()]++
		}
	}

	sortedTargets := sortByValue(cardFrequency)
	var patientTargets []string
	for _, card := range sortedTargets {
		if !ai.recentSurgicalTargets.Contains(card) {
			patientTargets = append(patientTargets, card)
		}
	}
	if len(patientTargets) == 0 {
		patientTargets = sortedTargets
	}
	targetCard := ai.chooser.Choose(patientTargets)
	ai.log.Infof("Strategy: SURGICAL STRIKE. Targeting '%s'.", targetCard)
	ai.recentSurgicalTargets.Push(targetCard)
	return ai.buildSuggestionAroundTarget(targetCard), true
}

// ExploreStrategy ranks every suggestion built from possible envelope cards
// and makes the one whose cards have the fewest possible holders.
type ExploreStrategy struct{}

func (s *ExploreStrategy) BuildSuggestion(ai *AdvancedAIBrain) (map[config.CardCategory]string, bool) {
	ai.log.Infof("Strategy: EXPLORE. Gathering new information.")
	return s.mustBuild(ai), true
}

func (s *ExploreStrategy) mustBuild(ai *AdvancedAIBrain) map[config.CardCategory]string {
	cands := ai.engine().EnvelopeCandidates()
	var options [3][]deduction.Card
	for i, cat := range config.Categories {
		for _, c := range cands.ForCategory(cat) {
			if !ai.notebook.HasCard(c.Name()) {
				options[i] = append(options[i], c)
			}
		}
		if len(options[i]) == 0 {
			// Only reachable once the notes are contradictory.
			return map[config.CardCategory]string{
				config.CategorySuspect: ai.pickUnknownCard(config.CategorySuspect),
				config.CategoryWeapon:  ai.pickUnknownCard(config.CategoryWeapon),
				config.CategoryRoom:    ai.pickUnknownCard(config.CategoryRoom),
			}
		}
	}

	var candidates []deduction.Suggestion
	for _, suspect := range options[0] {
		for _, weapon := range options[1] {
			for _, room := range options[2] {
				candidates = append(candidates, deduction.Suggestion{Suspect: suspect, Weapon: weapon, Room: room})
			}
		}
	}
	best := ai.engine().RankSuggestions(candidates)[0]
	return player.Suggestion(best)
}

// --- Strategy Helpers ---

// knownEnvelopeCards maps each solved category to its envelope card.
func (ai *AdvancedAIBrain) knownEnvelopeCards() map[config.CardCategory]string {
	known := make(map[config.CardCategory]string)
	reg := ai.notebook.Registry()
	for _, cat := range config.Categories {
		for _, c := range reg.CardsIn(cat) {
			if h, ok := ai.engine().Owner(c); ok && h == deduction.Envelope {
				known[cat] = c.Name()
				break
			}
		}
	}
	return known
}

// pickUnknownCard picks an unresolved envelope candidate of cat, preferring
// the ones with the fewest possible holders.
func (ai *AdvancedAIBrain) pickUnknownCard(cat config.CardCategory) string {
	e := ai.engine()
	best := -1
	var maybes []string
	for _, c := range e.EnvelopeCandidates().ForCategory(cat) {
		if _, resolved := e.Owner(c); resolved || ai.notebook.HasCard(c.Name()) {
			continue
		}
		value := e.InformationValue([]deduction.Card{c})
		switch {
		case best < 0 || value < best:
			best = value
			maybes = []string{c.Name()}
		case value == best:
			maybes = append(maybes, c.Name())
		}
	}
	if len(maybes) > 0 {
		return ai.chooser.Choose(maybes)
	}

	cardList := ai.config.CardListForCategory(cat)
	var notMyCards []string
	for _, card := range cardList {
		if !ai.notebook.HasCard(card) {
			notMyCards = append(notMyCards, card)
		}
	}
	if len(notMyCards) > 0 {
		return ai.chooser.Choose(notMyCards)
	}
	return ai.chooser.Choose(cardList)
}

func (ai *AdvancedAIBrain) buildSuggestionAroundTarget(targetCard string) map[config.CardCategory]string {
	suggestion := make(map[config.CardCategory]string)
	targetCategory := ai.card(targetCard).Category()
	suggestion[targetCategory] = targetCard

	myHandSlice := ai.Hand()
	ai.rand.Shuffle(len(myHandSlice), func(i, j int) { myHandSlice[i], myHandSlice[j] = myHandSlice[j], myHandSlice[i] })

	for _, card := range myHandSlice {
		if len(suggestion) == 3 {
			break
		}
		cat := ai.card(card).Category()
		if _, exists := suggestion[cat]; !exists {
			suggestion[cat] = card
		}
	}
	for _, cat := range config.Categories {
		if _, ok := suggestion[cat]; !ok {
			suggestion[cat] = ai.pickUnknownCard(cat)
		}
	}
	return suggestion
}

// --- Utility Types and Functions ---

// StringDeque remembers the last maxSize strings pushed.
type StringDeque struct {
	elements []string
	maxSize  int
}

func NewStringDeque(maxSize int) *StringDeque {
	return &StringDeque{maxSize: maxSize}
}
func (d *StringDeque) Push(s string) {
	d.elements = append(d.elements, s)
	if len(d.elements) > d.maxSize {
		d.elements = d.elements[1:]
	}
}
func (d *StringDeque) Contains(s string) bool {
	for _, e := range d.elements {
		if e == s {
			return true
		}
	}
	return false
}

// sortByValue orders keys by descending count, then by name.
func sortByValue(m map[string]int) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	sort.Slice(result, func(i, j int) bool {
		if m[result[i]] != m[result[j]] {
			return m[result[i]] > m[result[j]]
		}
		return result[i] < result[j]
	})
	return result
}
