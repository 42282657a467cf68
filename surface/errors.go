package surface

import (
	"errors"
	"fmt"
)

// Kind classifies an error the way spec.md §7 does: by taxonomy, not by Go
// type. The code constructors, Table lookups, the decoder and threshold.Run
// report through one of these four kinds so callers can branch with
// Is(err, surface.KindX) regardless of which package raised the underlying
// sentinel; threshold.LoadConfig and Report.WriteJSON return untagged errors.
type Kind string

const (
	// KindConfiguration marks invalid construction parameters (spec.md
	// §7 ConfigurationError). Never recoverable; reported at construction.
	KindConfiguration Kind = "configuration"
	// KindInvalidArgument marks an API-boundary misuse: unknown stabilizer
	// type, out-of-range index (spec.md §7 InvalidArgumentError).
	KindInvalidArgument Kind = "invalid_argument"
	// KindIllFormedSyndrome marks a syndrome whose parity is inconsistent
	// with the code's topology (spec.md §7 IllFormedSyndromeError).
	KindIllFormedSyndrome Kind = "ill_formed_syndrome"
	// KindInternalInvariant marks a violation of the §3 invariants that
	// should be unreachable in correct code (spec.md §7 InternalInvariantError).
	KindInternalInvariant Kind = "internal_invariant"
)

// KindError tags an error with its taxonomy Kind while preserving the
// original error chain for errors.Is/errors.As and %w formatting.
type KindError struct {
	Kind Kind
	Err  error
}

// NewKindError wraps err with the given taxonomy Kind.
func NewKindError(kind Kind, err error) error {
	return &KindError{Kind: kind, Err: err}
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap exposes the wrapped error to errors.Is/errors.As.
func (e *KindError) Unwrap() error {
	return e.Err
}

// Is reports whether err carries the given taxonomy Kind anywhere in its
// wrap chain.
func Is(err error, kind Kind) bool {
	var ke *KindError
	if errors.As(err, &ke) {
		return ke.Kind == kind
	}

	return false
}

// Sentinel errors raised directly by Table; concrete codes (toric,
// rotatedplanar) define their own ConfigurationError sentinels for
// dimension validation.
var (
	// ErrUnknownStabilizerType is returned by Stabilizer when passed a Type
	// other than X or Z (Stabilizers returns nil instead).
	ErrUnknownStabilizerType = errors.New("surface: unknown stabilizer type")

	// ErrStabilizerIndexOutOfRange is returned by Stabilizer when the index
	// falls outside [0, NumStabilizers(t)).
	ErrStabilizerIndexOutOfRange = errors.New("surface: stabilizer index out of range")
)
