// Package mutate - the Iterator protocol and its sentinel errors.
package mutate

import "errors"

var (
	// ErrNilVector indicates a nil candidate passed to a constructor.
	ErrNilVector = errors.New("mutate: candidate vector must be non-nil")

	// ErrMaxBitsRange indicates maxBits outside [1, candidate length].
	ErrMaxBitsRange = errors.New("mutate: maxBits out of range")

	// ErrIteratorDone indicates NextMutant called after exhaustion or after
	// Rollback. A protocol violation in the caller, not a transient state.
	ErrIteratorDone = errors.New("mutate: iterator exhausted or rolled back")
)

// Iterator lazily enumerates the neighbors of one fixed candidate object by
// mutating it in place.
//
// Contract:
//   - HasNext reports false once the enumeration is exhausted or once
//     Rollback has been called.
//   - NextMutant mutates the shared candidate to the next neighbor in the
//     enumeration order; it returns ErrIteratorDone when HasNext is false.
//   - SetSavepoint records the present mutated state as the rollback
//     target without touching the candidate. It may be called any number
//     of times; only the most recent call matters. Calling it before any
//     NextMutant marks "rollback to original".
//   - Rollback restores the candidate to the most recent savepoint (or its
//     original pre-iteration state if none was set) and permanently ends
//     the iterator. A second call is a no-op.
//
// Implementations are single-goroutine: calls on one instance must never
// be interleaved from different goroutines.
type Iterator interface {
	HasNext() bool
	NextMutant() error
	SetSavepoint()
	Rollback()
}
