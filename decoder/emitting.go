package decoder

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/wfstdecode/cutoff"
	"github.com/katalvlaran/wfstdecode/scorer"
	"github.com/katalvlaran/wfstdecode/token"
	"github.com/katalvlaran/wfstdecode/wfst"
)

// emittingStep queries the scorer once for every token in prevToks,
// expands emitting arcs into curToks (or routes a token into the
// completion pool if the scorer's argmax is EOS), and returns the cutoff
// bound to use for the following non-emitting closure (spec §4.E).
func (d *Decoder) emittingStep(ctx context.Context, encoderOutputs any) (float64, error) {
	states := make([]wfst.State, 0, len(d.prevToks))
	for s := range d.prevToks {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

	prefixes := make([][]int32, len(states))
	scorerStates := make([]any, len(states))
	for i, s := range states {
		t := d.prevToks[s]
		prefixes[i] = t.LabelSeq
		scorerStates[i] = t.ScorerState
	}

	logScores, newScorerStates, err := d.scorer.Score(ctx, encoderOutputs, prefixes, scorerStates)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrScorerFailure, err)
	}
	if err := scorer.ValidateResult(prefixes, logScores, newScorerStates); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrScorerFailure, err)
	}

	stateIdx := make(map[wfst.State]int, len(states))
	for i, s := range states {
		stateIdx[s] = i
	}

	cutoffVal, adaptiveBeam, best := cutoff.Compute(d.prevToks, d.opts.cutoffConfig())

	nextCutoff := wfst.Infinity
	if best != nil {
		if idx, ok := stateIdx[best.Arc.NextState]; ok {
			for _, arc := range d.fst.Arcs(best.Arc.NextState) {
				if !arc.IsEmitting() {
					continue
				}
				vocabIdx := int(arc.ILabel - 1)
				if vocabIdx < 0 || vocabIdx >= len(logScores[idx]) {
					continue
				}
				acCost := -logScores[idx][vocabIdx] * d.opts.AcousticScale
				candidate := arc.Weight.Graph + best.Cost + acCost
				if candidate+adaptiveBeam < nextCutoff {
					nextCutoff = candidate + adaptiveBeam
				}
			}
		}
	}

	for i, s := range states {
		tok := d.prevToks[s]
		if tok.Cost >= cutoffVal {
			continue
		}

		row := logScores[i]
		if argmax(row) == int(d.opts.EOS) {
			d.completeToken(s, row[d.opts.EOS])
			continue
		}

		for _, arc := range d.fst.Arcs(s) {
			if !arc.IsEmitting() {
				continue
			}
			vocabIdx := int(arc.ILabel - 1)
			if vocabIdx < 0 || vocabIdx >= len(row) {
				continue
			}
			acCost := -row[vocabIdx] * d.opts.AcousticScale
			candidate := arc.Weight.Graph + tok.Cost + acCost
			if candidate > nextCutoff {
				continue
			}

			newTok := token.New(arc, acCost, tok, token.Extend(tok.LabelSeq, int32(vocabIdx)), newScorerStates[i])
			if candidate+adaptiveBeam < nextCutoff {
				nextCutoff = candidate + adaptiveBeam
			}
			if existing, ok := d.curToks[arc.NextState]; !ok || existing.Cost > newTok.Cost {
				d.curToks[arc.NextState] = newTok
			}
		}
	}

	d.steps++

	return nextCutoff, nil
}

// argmax returns the index of the largest value in row. Assumes len(row) > 0.
func argmax(row []float64) int {
	best := 0
	for i, v := range row[1:] {
		if v > row[best] {
			best = i + 1
		}
	}

	return best
}
