package decoder

import (
	"github.com/katalvlaran/wfstdecode/token"
	"github.com/katalvlaran/wfstdecode/wfst"
)

// nonEmittingClosure repeatedly expands epsilon-input arcs out of tokens
// currently in curToks until no further improvement is possible (spec
// §4.D). It is a work-queue traversal in the style of graph.BFS's
// queue-of-pending-states loop, except re-improving a state re-enqueues
// it rather than marking it permanently visited: termination is
// guaranteed because each re-enqueue strictly decreases that state's
// stored cost, which is bounded below for non-negative arc weights.
// Candidates whose cost exceeds cutoff are never stored.
func (d *Decoder) nonEmittingClosure(cutoffBound float64) {
	queue := make([]wfst.State, 0, len(d.curToks))
	for s := range d.curToks {
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		tok, ok := d.curToks[s]
		if !ok {
			continue
		}

		for _, arc := range d.fst.Arcs(s) {
			if arc.IsEmitting() {
				continue
			}

			newCost := tok.Cost + arc.Weight.Graph
			if newCost > cutoffBound {
				continue
			}

			existing, present := d.curToks[arc.NextState]
			if present && existing.Cost <= newCost {
				continue
			}

			newTok := token.New(arc, 0, tok, tok.LabelSeq, tok.ScorerState)
			d.curToks[arc.NextState] = newTok
			queue = append(queue, arc.NextState)
		}
	}
}
