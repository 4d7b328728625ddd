package geometry

import "github.com/pkg/errors"

// ErrUnsupported reports a pairwise operation that is declared by the query
// surface but has no implemented algorithm. It is distinct from "no
// intersection": callers must check for it with errors.Is rather than
// treating a nil geometry as the answer.
var ErrUnsupported = errors.New("unsupported operation")

// NewUnsupportedError wraps ErrUnsupported with the operation and operand
// kinds that triggered it.
func NewUnsupportedError(op string, a, b Kind) error {
	return errors.Wrapf(ErrUnsupported, "%s(%s, %s)", op, a, b)
}

func newEmptyPointsError(what string) error {
	return errors.Errorf("cannot construct %s from an empty point collection", what)
}

func newZeroDirectionError(what string) error {
	return errors.Errorf("cannot construct %s with a zero direction vector", what)
}

func newDegenerateError(what, why string) error {
	return errors.Errorf("cannot construct %s: %s", what, why)
}
