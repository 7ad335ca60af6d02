package scorer

import (
	"context"
	"errors"
	"fmt"
)

// ErrSizeMismatch is returned (wrapped) when a Scorer produces arrays
// whose length disagrees with the number of prefixes queried, or whose
// vocabulary width disagrees across the batch.
var ErrSizeMismatch = errors.New("scorer: result size mismatch")

// Scorer is the single operation the decoder needs from an acoustic
// model: given the shared encoder output and one prefix + opaque state
// per surviving hypothesis, return one log-score vector and one updated
// state per hypothesis, aligned by index.
//
// Implementations must be deterministic given their inputs (spec §8,
// Determinism) and must not retain references to prefixes/states after
// returning (spec §4.H) — the decoder treats states as value-semantic and
// may alias a state across sibling tokens forked from the same parent.
type Scorer interface {
	Score(ctx context.Context, encoderOutputs any, prefixes [][]int32, states []any) (logScores [][]float64, newStates []any, err error)
}

// Func adapts a plain function to the Scorer interface, mirroring the
// teacher's preference for small functional adapters (lvlath/dijkstra's
// Option/functional-options idiom) over heavyweight mock types.
type Func func(ctx context.Context, encoderOutputs any, prefixes [][]int32, states []any) ([][]float64, []any, error)

// Score implements Scorer.
func (f Func) Score(ctx context.Context, encoderOutputs any, prefixes [][]int32, states []any) ([][]float64, []any, error) {
	return f(ctx, encoderOutputs, prefixes, states)
}

// ValidateResult checks a Scorer's return against the batch it was given,
// surfacing the malformed-array case of spec §7's ScorerFailure.
func ValidateResult(prefixes [][]int32, logScores [][]float64, newStates []any) error {
	if len(logScores) != len(prefixes) {
		return fmt.Errorf("%w: got %d log-score rows for %d prefixes", ErrSizeMismatch, len(logScores), len(prefixes))
	}
	if len(newStates) != len(prefixes) {
		return fmt.Errorf("%w: got %d states for %d prefixes", ErrSizeMismatch, len(newStates), len(prefixes))
	}
	if len(logScores) == 0 {
		return nil
	}
	width := len(logScores[0])
	for i, row := range logScores {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has width %d, want %d", ErrSizeMismatch, i, len(row), width)
		}
	}

	return nil
}
