package wfst

import "math"

// State identifies a WFST state. OpenFST convention: non-negative,
// dense from 0. NoState marks "absent" (e.g. an unset start state).
type State int32

// NoState is the sentinel value of a State that does not exist.
const NoState State = -1

// Infinity is the tropical-semiring zero: an unreachable / non-final cost.
const Infinity = math.MaxFloat64

// Weight splits an arc's cost into its graph (language/pronunciation
// model) and acoustic components. Only their sum participates in the
// tropical-semiring search; the split exists so the backtrace can recover
// either contribution along the best path (see spec §3, Arc record).
type Weight struct {
	Graph    float64
	Acoustic float64
}

// Sum returns Graph + Acoustic, the value search actually compares.
func (w Weight) Sum() float64 { return w.Graph + w.Acoustic }

// Arc is one transition out of a state.
//
// ILabel == 0 denotes an epsilon (non-emitting) input: traversing it costs
// no acoustic step. OLabel == 0 denotes an epsilon output: it contributes
// nothing to the decoded symbol sequence.
type Arc struct {
	ILabel    int32
	OLabel    int32
	Weight    Weight
	NextState State
}

// IsEmitting reports whether the arc consumes an acoustic frame.
func (a Arc) IsEmitting() bool { return a.ILabel != 0 }
