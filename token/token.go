package token

import "github.com/katalvlaran/wfstdecode/wfst"

// Token is one hypothesis whose frontier sits at some WFST state.
//
// RescaledCost is meaningful only once the token has been placed in a
// completion pool (spec §3); it is left at zero otherwise and must not be
// compared until then.
type Token struct {
	Prev         *Token
	Arc          wfst.Arc
	Cost         float64
	LabelSeq     []int32
	ScorerState  any
	RescaledCost float64
}

// New constructs a token reached by traversing arc from prev at the given
// acoustic cost. prev == nil seeds the tree (its own cost is then just the
// arc's weight, matching the dummy-arc seed of spec §4.F).
//
// labelSeq and scorerState are recorded as given: non-emitting expansion
// passes its parent's values through unchanged (spec §4.D); emitting
// expansion passes an extended sequence and a fresh scorer state (spec
// §4.E). New never mutates labelSeq or scorerState itself.
func New(arc wfst.Arc, acousticCost float64, prev *Token, labelSeq []int32, scorerState any) *Token {
	t := &Token{
		Prev:        prev,
		ScorerState: scorerState,
	}
	t.Arc = wfst.Arc{
		ILabel:    arc.ILabel,
		OLabel:    arc.OLabel,
		NextState: arc.NextState,
		Weight:    wfst.Weight{Graph: arc.Weight.Graph, Acoustic: acousticCost},
	}
	if prev != nil {
		t.Cost = prev.Cost + arc.Weight.Graph + acousticCost
	} else {
		t.Cost = arc.Weight.Graph + acousticCost
	}
	t.LabelSeq = labelSeq

	return t
}

// Extend returns a copy of seq with label appended, without mutating seq's
// backing array — callers share LabelSeq slices across sibling tokens
// (spec §4.H), so in-place append would corrupt a sibling's view.
func Extend(seq []int32, label int32) []int32 {
	out := make([]int32, len(seq)+1)
	copy(out, seq)
	out[len(seq)] = label

	return out
}
