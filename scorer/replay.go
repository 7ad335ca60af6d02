package scorer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// ReplayScript is the on-disk (JSON) form consumed by Replay: one
// log-score vector per emitting step, applied identically to every
// surviving prefix queried during that step. There being no trained
// acoustic model in scope (spec §1 Non-goals), this is the simplest
// scriptable stand-in that still exercises the real emitting-step/EOS
// machinery end-to-end, e.g. from the CLI or from decoder_test.go's
// end-to-end scenarios.
type ReplayScript struct {
	Steps [][]float64 `json:"steps"`
}

// LoadReplayScript reads a ReplayScript from r.
func LoadReplayScript(r io.Reader) (ReplayScript, error) {
	var script ReplayScript
	if err := json.NewDecoder(r).Decode(&script); err != nil {
		return ReplayScript{}, fmt.Errorf("scorer: decoding replay script: %w", err)
	}

	return script, nil
}

// Replay is a deterministic Scorer that serves one pre-recorded log-score
// vector per call, identically to every prefix in that call's batch, and
// passes scorer states through unchanged (it has no internal state of its
// own to thread).
type Replay struct {
	mu     sync.Mutex
	script ReplayScript
	calls  int
}

// NewReplay constructs a Replay scorer from a script.
func NewReplay(script ReplayScript) *Replay {
	return &Replay{script: script}
}

// Score implements Scorer.
func (r *Replay) Score(_ context.Context, _ any, prefixes [][]int32, states []any) ([][]float64, []any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.calls >= len(r.script.Steps) {
		return nil, nil, fmt.Errorf("%w: replay script exhausted after %d steps", ErrSizeMismatch, r.calls)
	}
	row := r.script.Steps[r.calls]
	r.calls++

	logScores := make([][]float64, len(prefixes))
	newStates := make([]any, len(prefixes))
	for i := range prefixes {
		cp := make([]float64, len(row))
		copy(cp, row)
		logScores[i] = cp
		newStates[i] = states[i]
	}

	return logScores, newStates, nil
}
