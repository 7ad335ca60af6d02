package cutoff_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfstdecode/cutoff"
	"github.com/katalvlaran/wfstdecode/token"
	"github.com/katalvlaran/wfstdecode/wfst"
)

func tokAt(cost float64) *token.Token {
	return &token.Token{Cost: cost}
}

func TestCompute_DefaultsWhenUnbounded(t *testing.T) {
	require := require.New(t)
	toks := map[wfst.State]*token.Token{
		0: tokAt(1.0),
		1: tokAt(3.0),
	}
	cfg := cutoff.Config{Beam: 5, MaxActive: cutoff.NoLimit, MinActive: 0, BeamDelta: 0.5}

	c, adaptive, best := cutoff.Compute(toks, cfg)

	require.Equal(6.0, c)
	require.Equal(5.0, adaptive)
	require.Equal(1.0, best.Cost)
}

func TestCompute_MaxActiveTightens(t *testing.T) {
	require := require.New(t)
	toks := map[wfst.State]*token.Token{}
	for i, cost := range []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9} {
		toks[wfst.State(i)] = tokAt(cost)
	}
	// beam alone (0+50=50) would admit all 10; max_active=3 should tighten.
	cfg := cutoff.Config{Beam: 50, MaxActive: 3, MinActive: 0, BeamDelta: 0.5}

	c, adaptive, best := cutoff.Compute(toks, cfg)

	require.Equal(0.0, best.Cost)
	require.Equal(2.0, c, "3rd smallest cost among 0..9 is 2")
	require.Equal(2.0-0.0+0.5, adaptive)
}

func TestCompute_MinActiveLoosens(t *testing.T) {
	require := require.New(t)
	toks := map[wfst.State]*token.Token{
		0: tokAt(0),
		1: tokAt(1),
		2: tokAt(50),
	}
	// beam alone (0+0.5=0.5) admits only state 0; min_active=2 should loosen.
	cfg := cutoff.Config{Beam: 0.5, MaxActive: cutoff.NoLimit, MinActive: 2, BeamDelta: 0.5}

	c, adaptive, _ := cutoff.Compute(toks, cfg)

	require.Equal(1.0, c, "2nd smallest cost among 0,1,50 is 1")
	require.Equal(1.0-0.0+0.5, adaptive)
}

func TestCompute_MinActiveZeroUsesBestCost(t *testing.T) {
	require := require.New(t)
	toks := map[wfst.State]*token.Token{
		0: tokAt(0),
		1: tokAt(100),
	}
	cfg := cutoff.Config{Beam: -10, MaxActive: 5, MinActive: 0, BeamDelta: 0.5}

	// beam cutoff = -10 (tighter than best_cost); since min_active==0 and
	// len(toks) > 0, min_cut == best_cost == 0, which loosens -10 → 0.
	c, adaptive, _ := cutoff.Compute(toks, cfg)

	require.Equal(0.0, c)
	require.Equal(0.5, adaptive)
}

func TestCompute_EmptyTokenSet(t *testing.T) {
	require := require.New(t)
	cfg := cutoff.Config{Beam: 5, MaxActive: cutoff.NoLimit, MinActive: 0, BeamDelta: 0.5}

	c, adaptive, best := cutoff.Compute(map[wfst.State]*token.Token{}, cfg)

	require.Nil(best)
	require.Equal(wfst.Infinity+5, c)
	require.Equal(5.0, adaptive)
}
