package deduction

import "strings"

// Disjunction records that Holder has at least one of Cards. Cards shrinks as
// alternatives are ruled out.
type Disjunction struct {
	Holder Holder
	Cards  []Card
}

func (d Disjunction) names() string {
	names := make([]string, len(d.Cards))
	for i, c := range d.Cards {
		names[i] = c.name
	}
	return strings.Join(names, ", ")
}

// Disjunctions returns a copy of the constraints still awaiting resolution.
func (e *Engine) Disjunctions() []Disjunction {
	out := make([]Disjunction, len(e.disjunctions))
	for i, d := range e.disjunctions {
		out[i] = Disjunction{Holder: d.Holder, Cards: append([]Card(nil), d.Cards...)}
	}
	return out
}

// addDisjunction stores a constraint and reports whether anything was added.
func (e *Engine) addDisjunction(h Holder, cards []Card) bool {
	seen := make(map[Card]bool, len(cards))
	var kept []Card
	for _, c := range cards {
		if !e.reg.validCard(c) {
			e.log.Warnf("Ignoring unknown card %q in a disjunction for %s.", c.name, e.reg.HolderName(h))
			continue
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		kept = append(kept, c)
	}
	if len(kept) == 0 {
		return false
	}
	sortCards(kept)
	d := Disjunction{Holder: h, Cards: kept}
	e.disjunctions = append(e.disjunctions, d)
	e.log.Infof("Noted that %s holds one of [%s].", e.reg.HolderName(h), d.names())
	return true
}

// dischargeDisjunctions resolves, prunes, or drops every stored constraint.
func (e *Engine) dischargeDisjunctions() error {
	kept := make([]Disjunction, 0, len(e.disjunctions))
	for _, d := range e.disjunctions {
		col := e.reg.column(d.Holder)
		var live []Card
		satisfied := false
		for _, c := range d.Cards {
			row := e.row(c)
			if !row[col] {
				continue
			}
			live = append(live, c)
			if countTrue(row) == 1 {
				satisfied = true
			}
		}

		switch {
		case len(live) == 0:
			return e.fail(&ContradictionError{
				Holder: e.reg.HolderName(d.Holder),
				Reason: "cannot hold any of [" + d.names() + "]",
			})
		case len(live) == 1:
			if !satisfied {
				e.log.Infof("Solved a disjunction! %s must have '%s'.", e.reg.HolderName(d.Holder), live[0])
			}
			if err := e.narrowTo(live[0], d.Holder); err != nil {
				return err
			}
		case satisfied:
			e.log.Debugf("Dropping satisfied disjunction for %s: [%s].", e.reg.HolderName(d.Holder), d.names())
		default:
			if len(live) < len(d.Cards) {
				e.log.Debugf("Pruning disjunction: %s's options narrowed to %d cards.", e.reg.HolderName(d.Holder), len(live))
			}
			kept = append(kept, Disjunction{Holder: d.Holder, Cards: live})
		}
	}
	e.disjunctions = kept
	return nil
}
