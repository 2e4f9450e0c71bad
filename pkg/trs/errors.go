package trs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the TRS mutation error taxonomy of SPEC_FULL.md §7.
type Kind int

const (
	// NotInTRS means the queried LHS or rule is absent.
	NotInTRS Kind = iota
	// AlreadyInTRS means an alpha-equivalent LHS is already present.
	AlreadyInTRS
	// NondeterministicRule means a multi-clause rule was rejected by a
	// deterministic TRS.
	NondeterministicRule
	// InvalidIndex means an out-of-bounds index was given to an
	// insert/remove/move operation.
	InvalidIndex
)

func (k Kind) String() string {
	switch k {
	case NotInTRS:
		return "NotInTRS"
	case AlreadyInTRS:
		return "AlreadyInTRS"
	case NondeterministicRule:
		return "NondeterministicRule"
	case InvalidIndex:
		return "InvalidIndex"
	default:
		return "UnknownKind"
	}
}

// Error is the single error type returned by every failing TRS mutation.
// It carries enough context (Idx/Len for InvalidIndex) to be actionable and
// is wrapped with github.com/pkg/errors so a stack trace travels with it,
// the convention kanso-lang-kanso and purpleidea-mgmt use for this library.
type Error struct {
	Kind Kind
	Idx  int
	Len  int
	err  error
}

func newError(k Kind) error {
	return errors.WithStack(&Error{Kind: k, err: fmt.Errorf("trs: %s", k)})
}

func newInvalidIndex(idx, length int) error {
	return errors.WithStack(&Error{
		Kind: InvalidIndex,
		Idx:  idx,
		Len:  length,
		err:  fmt.Errorf("trs: invalid index %d (len=%d)", idx, length),
	})
}

func (e *Error) Error() string {
	if e.err == nil {
		return fmt.Sprintf("trs: %s", e.Kind)
	}
	return e.err.Error()
}

func (e *Error) Unwrap() error { return e.err }

// Is supports errors.Is(err, trs.Sentinel(trs.NotInTRS)) etc. by comparing
// Kind against a bare Kind sentinel wrapped in an *Error with no message.
func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == te.Kind
}

// Sentinel returns a comparison target for errors.Is(err, trs.Sentinel(k)).
func Sentinel(k Kind) error { return &Error{Kind: k} }
