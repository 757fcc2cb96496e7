package match

import (
	"errors"

	"github.com/davecgh/go-spew/spew"
)

// ErrNoMatch is matched by errors.Is for every MatchError.
var ErrNoMatch = errors.New("no case matched")

// MatchError is returned by strict executions if no case matched the input.
type MatchError struct {
	Input any
}

func (e *MatchError) Error() string {
	return spew.Sprintf("match: no case matched input %v", e.Input)
}

// Unwrap makes MatchError match ErrNoMatch with errors.Is.
func (e *MatchError) Unwrap() error {
	return ErrNoMatch
}

func newMatchError(input any) *MatchError {
	tracer().Debugf("match: no case matched input %v", input)
	return &MatchError{Input: input}
}
