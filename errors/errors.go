package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrEmptyCorpus      = fmt.Errorf("training corpus is empty")
	ErrInsufficientData = fmt.Errorf("insufficient training data")
	ErrUnknownLabel     = fmt.Errorf("unknown intent label")
	ErrInvalidExample   = fmt.Errorf("invalid training example")
	ErrFetch            = fmt.Errorf("content fetch failed")
	ErrNotTwoPart       = fmt.Errorf("content is not a two-part riddle")
	ErrJokesExhausted   = fmt.Errorf("no new joke after max attempts")
	ErrDivideByZero     = fmt.Errorf("cannot divide by zero")
	ErrOutOfRange       = fmt.Errorf("value out of range")
	ErrInvalidChoice    = fmt.Errorf("invalid choice")
	ErrEmptyWords       = fmt.Errorf("no words have been found")
	ErrInvalidConfig    = fmt.Errorf("invalid configuration")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
