package minimizer

import "errors"

var (
	// ErrUnknownVariant is returned when a variant name is neither moore nor mealy.
	ErrUnknownVariant = errors.New("unknown machine variant")

	// ErrUnknownState is returned when a label does not name a state of the machine.
	ErrUnknownState = errors.New("unknown state")

	// ErrUnknownSymbol is returned when an input is not part of the alphabet.
	ErrUnknownSymbol = errors.New("unknown input symbol")

	ErrDuplicateLabel = errors.New("duplicate label")
	ErrInvalidSymbol  = errors.New("invalid symbol")
	ErrEmptyCell      = errors.New("empty transition table cell")
	ErrRowCount       = errors.New("transition table row count mismatch")
	ErrRowWidth       = errors.New("transition table row width mismatch")

	// ErrMissingInitial is returned when the initial state is not one of the declared states.
	ErrMissingInitial = errors.New("initial state not declared")
)
