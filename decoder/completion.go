package decoder

import (
	"fmt"

	"github.com/katalvlaran/wfstdecode/internal/obslog"
	"github.com/katalvlaran/wfstdecode/token"
	"github.com/katalvlaran/wfstdecode/wfst"
)

// completeToken handles a token whose scorer argmax was EOS (spec §4.G).
//
// The divisor used for RescaledCost is d.steps as it stands at the
// moment of the call — i.e. before this step's counter increment at the
// end of emittingStep, mirroring the original decoder's
// num_steps_decoded (incremented only after the full per-step loop
// completes). The epsilon-tail walk below chains from the *original*
// triggering token (not a copy carrying the EOS acoustic cost), again
// matching the original: only the direct completion at state s folds in
// eosAcoustic, tail completions reachable via a further epsilon walk do
// not carry it forward into their own Cost. This looks asymmetric but is
// the original's actual behavior (spec §9, EOS handling ambiguity) and is
// preserved rather than "fixed", per the Open Question decision in
// DESIGN.md.
func (d *Decoder) completeToken(s wfst.State, eosLogScore float64) {
	tok := d.prevToks[s]
	eosAcoustic := -eosLogScore * d.opts.AcousticScale
	steps := float64(d.steps)

	if finalWeight := d.fst.FinalWeight(s); finalWeight != wfst.Infinity {
		completed := *tok
		completed.RescaledCost = (tok.Cost + eosAcoustic + finalWeight) / steps
		d.completed = append(d.completed, &completed)
	}

	type frame struct {
		state wfst.State
		tok   *token.Token
	}
	queue := []frame{{s, tok}}
	for len(queue) > 0 {
		f := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		for _, arc := range d.fst.Arcs(f.state) {
			if arc.IsEmitting() {
				continue
			}
			newTok := token.New(arc, 0, f.tok, f.tok.LabelSeq, f.tok.ScorerState)
			if finalWeight := d.fst.FinalWeight(arc.NextState); finalWeight != wfst.Infinity {
				newTok.RescaledCost = (newTok.Cost + finalWeight) / steps
				d.completed = append(d.completed, newTok)
			} else {
				queue = append(queue, frame{arc.NextState, newTok})
			}
		}
	}
}

// backtrace selects the completion-pool entry with minimum RescaledCost,
// walks its back-pointer chain to the seed, and emits the non-zero
// OLabels of arcs along the path in forward order (spec §4.G).
func (d *Decoder) backtrace(requestID string) ([]int32, error) {
	if len(d.completed) == 0 {
		return nil, ErrNoCompletion
	}

	best := d.completed[0]
	for _, t := range d.completed[1:] {
		if t.RescaledCost < best.RescaledCost {
			best = t
		}
	}

	var arcsReverse []wfst.Arc
	for t := best; t != nil; t = t.Prev {
		arcsReverse = append(arcsReverse, t.Arc)
	}
	seedArc := arcsReverse[len(arcsReverse)-1]
	if seedArc.NextState != d.fst.Start() {
		return nil, fmt.Errorf("%w: back-pointer chain did not terminate at the start state", ErrInvalidGraph)
	}
	arcsReverse = arcsReverse[:len(arcsReverse)-1]

	out := make([]int32, 0, len(arcsReverse))
	for i := len(arcsReverse) - 1; i >= 0; i-- {
		if arc := arcsReverse[i]; arc.OLabel != 0 {
			out = append(out, arc.OLabel)
		}
	}

	obslog.Log.Info("decode completed",
		"request_id", requestID,
		"rescaled_cost", best.RescaledCost,
		"num_labels", len(out),
	)

	return out, nil
}
