package cutoff

import (
	"math"
	"sort"

	"github.com/katalvlaran/wfstdecode/token"
	"github.com/katalvlaran/wfstdecode/wfst"
)

// NoLimit marks an unbounded MaxActive ("∞ disables", spec §6).
const NoLimit = math.MaxInt32

// Config carries the pruning knobs consulted on every step.
type Config struct {
	Beam      float64
	MinActive int
	MaxActive int
	BeamDelta float64
}

// Compute implements the cutoff policy of spec §4.C exactly:
//
//  1. best_cost/best_token over toks; default cutoff = best_cost+Beam,
//     adaptiveBeam = Beam.
//  2. If MaxActive == NoLimit and MinActive == 0, return the defaults.
//  3. If len(toks) > MaxActive and the MaxActive-th smallest cost would
//     tighten the default cutoff, tighten to it.
//  4. Else if len(toks) > MinActive and the MinActive-th smallest cost
//     would loosen the default cutoff, loosen to it.
//  5. Otherwise return the defaults.
func Compute(toks map[wfst.State]*token.Token, cfg Config) (float64, float64, *token.Token) {
	bestCost := wfst.Infinity
	var best *token.Token
	for _, t := range toks {
		if t.Cost < bestCost {
			bestCost = t.Cost
			best = t
		}
	}

	cutoff := bestCost + cfg.Beam
	adaptiveBeam := cfg.Beam

	if cfg.MaxActive >= NoLimit && cfg.MinActive == 0 {
		return cutoff, adaptiveBeam, best
	}

	if len(toks) > cfg.MaxActive {
		maxCut := kthSmallestCost(toks, cfg.MaxActive)
		if maxCut < cutoff {
			return maxCut, maxCut - bestCost + cfg.BeamDelta, best
		}
	}

	if len(toks) > cfg.MinActive {
		var minCut float64
		if cfg.MinActive == 0 {
			minCut = bestCost
		} else {
			minCut = kthSmallestCost(toks, cfg.MinActive)
		}
		if minCut > cutoff {
			return minCut, minCut - bestCost + cfg.BeamDelta, best
		}
	}

	return cutoff, adaptiveBeam, best
}

// kthSmallestCost returns the k-th smallest Token.Cost among toks (1-indexed).
// Precondition: k >= 1 and k <= len(toks).
func kthSmallestCost(toks map[wfst.State]*token.Token, k int) float64 {
	costs := make([]float64, 0, len(toks))
	for _, t := range toks {
		costs = append(costs, t.Cost)
	}
	sort.Float64s(costs)

	return costs[k-1]
}
