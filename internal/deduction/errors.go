package deduction

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCard       = errors.New("invalid card")
	ErrInvalidHolder     = errors.New("invalid holder")
	ErrInvalidSuggestion = errors.New("invalid suggestion")
	ErrContradiction     = errors.New("knowledge base is contradictory")
)

// ContradictionError describes the fact that could not be reconciled with
// what the engine already knew.
type ContradictionError struct {
	Card   string
	Holder string
	Reason string
}

func (e *ContradictionError) Error() string {
	switch {
	case e.Card != "" && e.Holder != "":
		return fmt.Sprintf("%v: %s / %s: %s", ErrContradiction, e.Card, e.Holder, e.Reason)
	case e.Card != "":
		return fmt.Sprintf("%v: %s: %s", ErrContradiction, e.Card, e.Reason)
	case e.Holder != "":
		return fmt.Sprintf("%v: %s: %s", ErrContradiction, e.Holder, e.Reason)
	}
	return fmt.Sprintf("%v: %s", ErrContradiction, e.Reason)
}

func (e *ContradictionError) Unwrap() error { return ErrContradiction }
