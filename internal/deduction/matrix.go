package deduction

// CardStatus is what the observer knows about one (card, holder) pair.
type CardStatus int

const (
	StatusMaybe CardStatus = iota
	StatusYes
	StatusNo
)

func (s CardStatus) String() string {
	return []string{"maybe", "yes", "no"}[s]
}

func (e *Engine) row(c Card) []bool { return e.poss[c.id-1] }

func countTrue(row []bool) int {
	n := 0
	for _, ok := range row {
		if ok {
			n++
		}
	}
	return n
}

// narrowTo makes h the only possible holder of c.
func (e *Engine) narrowTo(c Card, h Holder) error {
	row := e.row(c)
	col := e.reg.column(h)
	if !row[col] {
		return e.contradict(c, h, "holder was already ruled out")
	}
	if countTrue(row) == 1 {
		return nil
	}
	for i := range row {
		row[i] = i == col
	}
	e.log.Debugf("Learned that '%s' is with %s.", c, e.reg.HolderName(h))
	e.enqueue(c)
	return nil
}

// strike rules h out for c. Removing the last possible holder is a
// contradiction; leaving a single one makes it the owner.
func (e *Engine) strike(c Card, h Holder) error {
	row := e.row(c)
	col := e.reg.column(h)
	if !row[col] {
		return nil
	}
	if countTrue(row) == 1 {
		return e.contradict(c, h, "it is the only remaining holder")
	}
	row[col] = false
	e.enqueue(c)
	if countTrue(row) == 1 {
		owner, _ := e.owner(c)
		e.log.Debugf("Learned that '%s' is with %s, the only holder left.", c, e.reg.HolderName(owner))
	}
	return nil
}

func (e *Engine) owner(c Card) (Holder, bool) {
	row := e.row(c)
	if countTrue(row) != 1 {
		return 0, false
	}
	for col, ok := range row {
		if ok {
			return e.reg.holderAt(col), true
		}
	}
	return 0, false
}

func (e *Engine) mustCard(c Card) {
	if !e.reg.validCard(c) {
		panic(ErrInvalidCard.Error() + ": " + c.String())
	}
}

// PossibleHolders returns every holder that might have card, players in
// seat order followed by Envelope. It panics if card did not come from the
// engine's Registry.
func (e *Engine) PossibleHolders(card Card) []Holder {
	e.mustCard(card)
	var hs []Holder
	for col, ok := range e.row(card) {
		if ok {
			hs = append(hs, e.reg.holderAt(col))
		}
	}
	return hs
}

// Owner returns the definite holder of card, if there is only one left.
func (e *Engine) Owner(card Card) (Holder, bool) {
	e.mustCard(card)
	return e.owner(card)
}

// Status classifies a single matrix cell.
func (e *Engine) Status(card Card, holder Holder) CardStatus {
	e.mustCard(card)
	if !e.reg.validHolder(holder) {
		panic(ErrInvalidHolder.Error())
	}
	row := e.row(card)
	switch {
	case !row[e.reg.column(holder)]:
		return StatusNo
	case countTrue(row) == 1:
		return StatusYes
	default:
		return StatusMaybe
	}
}
