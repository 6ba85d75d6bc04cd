// Package deduction tracks one player's knowledge of where every card is.
//
// An Engine holds a card × holder possibility matrix and a store of
// "holder has at least one of these cards" constraints. Every mutator narrows
// the matrix and then runs propagation to a fixpoint before it returns, so
// callers never observe a half-propagated state. Narrowing is monotonic: a
// holder ruled out for a card is never possible again.
package deduction

import (
	"fmt"

	"cluedo-toolbox/internal/config"

	"github.com/sirupsen/logrus"
)

// Options tunes which facts the engine may assume beyond the observed events.
type Options struct {
	// HandSizes, when set, gives the number of cards dealt to each seat.
	HandSizes []int
	// AllowBluff lets other players suggest cards from their own hand. An
	// unanswered suggestion then only narrows its cards to the suggester or
	// the envelope.
	AllowBluff bool
}

// Engine is one observer's deduction state. It is not safe for concurrent use.
type Engine struct {
	reg  *Registry
	self Holder
	opts Options
	log  logrus.FieldLogger

	poss         [][]bool
	disjunctions []Disjunction
	pending      []Card
	queued       []bool
	solution     *Solution
	history      []Observation
	err          error
}

// NewEngine creates the knowledge base of the player seated at self.
func NewEngine(reg *Registry, self Holder, log logrus.FieldLogger, opts Options) (*Engine, error) {
	if !reg.validPlayer(self) {
		return nil, fmt.Errorf("%w: observer %d", ErrInvalidHolder, int(self))
	}
	if opts.HandSizes != nil {
		if len(opts.HandSizes) != len(reg.players) {
			return nil, fmt.Errorf("%w: %d hand sizes for %d players", ErrInvalidHolder, len(opts.HandSizes), len(reg.players))
		}
		total := 0
		for _, n := range opts.HandSizes {
			if n < 0 {
				return nil, fmt.Errorf("%w: negative hand size", ErrInvalidHolder)
			}
			total += n
		}
		if want := len(reg.cards) - len(config.Categories); total != want {
			return nil, fmt.Errorf("%w: hand sizes sum to %d, want %d", ErrInvalidHolder, total, want)
		}
		opts.HandSizes = append([]int(nil), opts.HandSizes...)
	}

	e := &Engine{
		reg:    reg,
		self:   self,
		opts:   opts,
		log:    log.WithField("observer", reg.HolderName(self)),
		poss:   make([][]bool, len(reg.cards)),
		queued: make([]bool, len(reg.cards)),
	}
	for i := range e.poss {
		row := make([]bool, len(reg.players)+1)
		for j := range row {
			row[j] = true
		}
		e.poss[i] = row
	}
	if err := e.propagate(); err != nil {
		return nil, err
	}
	e.log.Debugf("Deduction engine initialized with %d cards and %d players.", len(reg.cards), len(reg.players))
	return e, nil
}

// Options returns the options the engine was built with.
func (e *Engine) Options() Options {
	opts := e.opts
	opts.HandSizes = append([]int(nil), e.opts.HandSizes...)
	return opts
}

// Self is the observer's seat.
func (e *Engine) Self() Holder { return e.self }

// Registry is the vocabulary the engine was built with.
func (e *Engine) Registry() *Registry { return e.reg }

// Err returns the contradiction that stopped the engine, if any.
func (e *Engine) Err() error { return e.err }

// SeedHand records the observer's complete hand: every listed card is the
// observer's and no other card is.
func (e *Engine) SeedHand(cards []Card) error {
	if err := e.ready(); err != nil {
		return err
	}
	inHand := make(map[Card]bool, len(cards))
	for _, c := range cards {
		if !e.reg.validCard(c) {
			return fmt.Errorf("%w: %v", ErrInvalidCard, c)
		}
		inHand[c] = true
	}
	for _, c := range cards {
		if err := e.narrowTo(c, e.self); err != nil {
			return err
		}
	}
	for _, c := range e.reg.cards {
		if inHand[c] {
			continue
		}
		if err := e.strike(c, e.self); err != nil {
			return err
		}
	}
	return e.propagate()
}

// Assign records that holder definitely has card.
func (e *Engine) Assign(card Card, holder Holder) error {
	if err := e.check(card, holder); err != nil {
		return err
	}
	if err := e.narrowTo(card, holder); err != nil {
		return err
	}
	return e.propagate()
}

// Eliminate records that holder definitely does not have card.
func (e *Engine) Eliminate(card Card, holder Holder) error {
	if err := e.check(card, holder); err != nil {
		return err
	}
	if err := e.strike(card, holder); err != nil {
		return err
	}
	return e.propagate()
}

// RecordAtLeastOne records that holder has one or more of cards. Invalid
// and repeated cards are dropped; an empty remainder is a no-op.
func (e *Engine) RecordAtLeastOne(holder Holder, cards []Card) error {
	if err := e.ready(); err != nil {
		return err
	}
	if !e.reg.validHolder(holder) {
		return fmt.Errorf("%w: %d", ErrInvalidHolder, int(holder))
	}
	if !e.addDisjunction(holder, cards) {
		return nil
	}
	return e.propagate()
}

func (e *Engine) ready() error {
	return e.err
}

func (e *Engine) check(card Card, holder Holder) error {
	if err := e.ready(); err != nil {
		return err
	}
	if !e.reg.validCard(card) {
		return fmt.Errorf("%w: %v", ErrInvalidCard, card)
	}
	if !e.reg.validHolder(holder) {
		return fmt.Errorf("%w: %d", ErrInvalidHolder, int(holder))
	}
	return nil
}

// propagate applies every rule until a whole pass changes nothing.
func (e *Engine) propagate() error {
	for pass := 1; ; pass++ {
		e.drain()
		if err := e.dischargeDisjunctions(); err != nil {
			return err
		}
		if err := e.applyEnvelopeRules(); err != nil {
			return err
		}
		if err := e.applyHandCounts(); err != nil {
			return err
		}
		e.checkSolution()
		if len(e.pending) == 0 {
			if pass > 1 {
				e.log.Debugf("Propagation reached a fixpoint after %d passes.", pass)
			}
			return nil
		}
	}
}

func (e *Engine) drain() {
	for _, c := range e.pending {
		e.queued[c.id-1] = false
	}
	e.pending = e.pending[:0]
}

func (e *Engine) enqueue(c Card) {
	if e.queued[c.id-1] {
		return
	}
	e.queued[c.id-1] = true
	e.pending = append(e.pending, c)
}

// applyEnvelopeRules enforces that exactly one card per category is in the
// envelope.
func (e *Engine) applyEnvelopeRules() error {
	env := e.reg.column(Envelope)
	for _, cat := range config.Categories {
		var open []Card
		var known Card
		for _, c := range e.reg.byCategory[cat] {
			row := e.row(c)
			if !row[env] {
				continue
			}
			open = append(open, c)
			if countTrue(row) == 1 {
				if !known.IsZero() {
					return e.contradict(c, Envelope, fmt.Sprintf("%s is already the envelope's %s", known, cat))
				}
				known = c
			}
		}
		switch {
		case len(open) == 0:
			return e.fail(&ContradictionError{Holder: envelopeName, Reason: fmt.Sprintf("none of the %s can be in the envelope", cat)})
		case len(open) == 1:
			if known.IsZero() {
				e.log.Debugf("Every other %s is accounted for, so '%s' is in the envelope.", cat, open[0])
			}
			if err := e.narrowTo(open[0], Envelope); err != nil {
				return err
			}
		case !known.IsZero():
			for _, c := range open {
				if c == known {
					continue
				}
				if err := e.strike(c, Envelope); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// applyHandCounts uses known hand sizes: a full hand excludes every other
// card, and a hand with exactly as many candidates as cards owns them all.
func (e *Engine) applyHandCounts() error {
	for seat, size := range e.opts.HandSizes {
		h := Holder(seat)
		col := e.reg.column(h)
		var open, owned []Card
		for _, c := range e.reg.cards {
			row := e.row(c)
			if !row[col] {
				continue
			}
			open = append(open, c)
			if countTrue(row) == 1 {
				owned = append(owned, c)
			}
		}
		switch {
		case len(owned) > size:
			return e.fail(&ContradictionError{Holder: e.reg.HolderName(h), Reason: fmt.Sprintf("owns %d cards but was dealt %d", len(owned), size)})
		case len(open) < size:
			return e.fail(&ContradictionError{Holder: e.reg.HolderName(h), Reason: fmt.Sprintf("only %d possible cards for a hand of %d", len(open), size)})
		case len(owned) == size && len(open) > size:
			e.log.Debugf("%s's hand of %d is fully known.", e.reg.HolderName(h), size)
			for _, c := range open {
				if countTrue(e.row(c)) == 1 {
					continue
				}
				if err := e.strike(c, h); err != nil {
					return err
				}
			}
		case len(open) == size && len(owned) < size:
			e.log.Debugf("%s can only hold %d cards, so holds all of them.", e.reg.HolderName(h), size)
			for _, c := range open {
				if err := e.narrowTo(c, h); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (e *Engine) checkSolution() {
	if e.solution != nil {
		return
	}
	var sol Solution
	for _, cat := range config.Categories {
		var found []Card
		for _, c := range e.reg.byCategory[cat] {
			if owner, ok := e.owner(c); ok && owner == Envelope {
				found = append(found, c)
			}
		}
		if len(found) != 1 {
			return
		}
		switch cat {
		case config.CategorySuspect:
			sol.Suspect = found[0]
		case config.CategoryWeapon:
			sol.Weapon = found[0]
		case config.CategoryRoom:
			sol.Room = found[0]
		}
	}
	e.solution = &sol
	e.log.Infof("Solution deduced: %s.", sol)
}

func (e *Engine) contradict(c Card, h Holder, reason string) error {
	return e.fail(&ContradictionError{Card: c.name, Holder: e.reg.HolderName(h), Reason: reason})
}

func (e *Engine) fail(err *ContradictionError) error {
	e.err = err
	e.log.Errorf("%v", err)
	return err
}
