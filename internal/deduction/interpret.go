package deduction

import "fmt"

// ObservationKind names the public event an observation came from.
type ObservationKind int

const (
	ObservedNoResponse ObservationKind = iota
	ObservedShownCard
	ObservedHiddenResponse
	ObservedAccusation
	ObservedCard
)

func (k ObservationKind) String() string {
	return []string{"no response", "shown card", "hidden response", "accusation", "card revealed"}[k]
}

// Observation is one entry of the engine's history.
type Observation struct {
	Kind       ObservationKind
	Suggester  Holder // the accuser for accusations, the holder for revealed cards
	Suggestion Suggestion
	Responder  Holder
	Shown      Card
	Correct    bool
}

// History returns every observation in the order it was recorded.
func (e *Engine) History() []Observation {
	return append([]Observation(nil), e.history...)
}

// ObserveNoResponse records a suggestion nobody could disprove. Every player
// but the suggester lacks all three cards, and each card not known to be in
// the suggester's hand goes to the envelope. With Options.AllowBluff set, the
// latter only holds for the observer's own suggestions.
func (e *Engine) ObserveNoResponse(suggester Holder, s Suggestion) error {
	if err := e.checkSuggestion(suggester, s); err != nil {
		return err
	}
	e.history = append(e.history, Observation{Kind: ObservedNoResponse, Suggester: suggester, Suggestion: s, Responder: Envelope})

	for _, c := range s.Cards() {
		for _, p := range e.reg.Holders() {
			if p == Envelope || p == suggester {
				continue
			}
			if err := e.strike(c, p); err != nil {
				return err
			}
		}
	}
	if suggester == e.self || !e.opts.AllowBluff {
		for _, c := range s.Cards() {
			if owner, ok := e.owner(c); ok && owner == suggester {
				continue
			}
			if err := e.narrowTo(c, Envelope); err != nil {
				return err
			}
		}
	}
	return e.propagate()
}

// ObserveShownCard records that responder showed card, and that the
// observer saw which one it was.
func (e *Engine) ObserveShownCard(suggester Holder, s Suggestion, responder Holder, card Card) error {
	if err := e.checkResponse(suggester, s, responder); err != nil {
		return err
	}
	if !s.Contains(card) {
		return fmt.Errorf("%w: %s was not suggested", ErrInvalidSuggestion, card)
	}
	e.history = append(e.history, Observation{Kind: ObservedShownCard, Suggester: suggester, Suggestion: s, Responder: responder, Shown: card})

	if err := e.strikePassed(suggester, responder, s); err != nil {
		return err
	}
	if err := e.narrowTo(card, responder); err != nil {
		return err
	}
	return e.propagate()
}

// ObserveHiddenResponse records that responder showed one of the suggested
// cards to somebody else.
func (e *Engine) ObserveHiddenResponse(suggester Holder, s Suggestion, responder Holder) error {
	if err := e.checkResponse(suggester, s, responder); err != nil {
		return err
	}
	e.history = append(e.history, Observation{Kind: ObservedHiddenResponse, Suggester: suggester, Suggestion: s, Responder: responder})

	if err := e.strikePassed(suggester, responder, s); err != nil {
		return err
	}
	e.addDisjunction(responder, s.Cards())
	return e.propagate()
}

// ObserveAccusation records the outcome of an accusation. Only a correct one
// narrows anything: a wrong accusation says some card in it is not in the
// envelope, without saying which.
func (e *Engine) ObserveAccusation(accuser Holder, s Suggestion, correct bool) error {
	if err := e.checkSuggestion(accuser, s); err != nil {
		return err
	}
	e.history = append(e.history, Observation{Kind: ObservedAccusation, Suggester: accuser, Suggestion: s, Responder: Envelope, Correct: correct})

	if !correct {
		e.log.Debugf("%s accused wrongly with %s; nothing to eliminate.", e.reg.HolderName(accuser), s)
		return nil
	}
	for _, c := range s.Cards() {
		if err := e.narrowTo(c, Envelope); err != nil {
			return err
		}
	}
	return e.propagate()
}

// ObserveCard records a card seen outside a suggestion.
func (e *Engine) ObserveCard(holder Holder, card Card) error {
	if err := e.check(card, holder); err != nil {
		return err
	}
	e.history = append(e.history, Observation{Kind: ObservedCard, Suggester: holder, Responder: holder, Shown: card})
	if err := e.narrowTo(card, holder); err != nil {
		return err
	}
	return e.propagate()
}

// Passed lists the players asked before responder, in asking order.
func (e *Engine) Passed(suggester, responder Holder) []Holder {
	if !e.reg.validPlayer(suggester) || !e.reg.validPlayer(responder) {
		return nil
	}
	n := len(e.reg.players)
	var out []Holder
	for i := (int(suggester) + 1) % n; i != int(responder) && i != int(suggester); i = (i + 1) % n {
		out = append(out, Holder(i))
	}
	return out
}

func (e *Engine) strikePassed(suggester, responder Holder, s Suggestion) error {
	for _, p := range e.Passed(suggester, responder) {
		for _, c := range s.Cards() {
			if err := e.strike(c, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Engine) checkSuggestion(suggester Holder, s Suggestion) error {
	if err := e.ready(); err != nil {
		return err
	}
	if !e.reg.validPlayer(suggester) {
		return fmt.Errorf("%w: %d", ErrInvalidHolder, int(suggester))
	}
	return e.reg.validSuggestion(s)
}

func (e *Engine) checkResponse(suggester Holder, s Suggestion, responder Holder) error {
	if err := e.checkSuggestion(suggester, s); err != nil {
		return err
	}
	if !e.reg.validPlayer(responder) {
		return fmt.Errorf("%w: responder %d", ErrInvalidHolder, int(responder))
	}
	if responder == suggester {
		return fmt.Errorf("%w: %s cannot answer their own suggestion", ErrInvalidHolder, e.reg.HolderName(responder))
	}
	return nil
}
