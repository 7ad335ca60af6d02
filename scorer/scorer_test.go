package scorer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfstdecode/scorer"
)

func TestValidateResult_RowCountMismatch(t *testing.T) {
	require := require.New(t)
	err := scorer.ValidateResult([][]int32{{0}, {1}}, [][]float64{{0.1}}, []any{nil, nil})
	require.ErrorIs(err, scorer.ErrSizeMismatch)
}

func TestValidateResult_WidthMismatch(t *testing.T) {
	require := require.New(t)
	err := scorer.ValidateResult(
		[][]int32{{0}, {1}},
		[][]float64{{0.1, 0.2}, {0.1}},
		[]any{nil, nil},
	)
	require.ErrorIs(err, scorer.ErrSizeMismatch)
}

func TestValidateResult_OK(t *testing.T) {
	require := require.New(t)
	err := scorer.ValidateResult(
		[][]int32{{0}, {1}},
		[][]float64{{0.1, 0.2}, {0.3, 0.4}},
		[]any{nil, nil},
	)
	require.NoError(err)
}

func TestFunc_Adapts(t *testing.T) {
	require := require.New(t)
	var s scorer.Scorer = scorer.Func(func(_ context.Context, _ any, prefixes [][]int32, states []any) ([][]float64, []any, error) {
		return make([][]float64, len(prefixes)), states, nil
	})
	scores, states, err := s.Score(context.Background(), nil, [][]int32{{0}}, []any{"s0"})
	require.NoError(err)
	require.Len(scores, 1)
	require.Equal([]any{"s0"}, states)
}

func TestReplay_ServesScriptedRowsThenExhausts(t *testing.T) {
	require := require.New(t)
	script, err := scorer.LoadReplayScript(strings.NewReader(`{"steps":[[0.0,-5.0],[-5.0,0.0]]}`))
	require.NoError(err)

	r := scorer.NewReplay(script)

	scores, states, err := r.Score(context.Background(), nil, [][]int32{{0}, {0}}, []any{nil, nil})
	require.NoError(err)
	require.Len(scores, 2)
	require.Equal([]float64{0.0, -5.0}, scores[0])
	require.Equal([]any{nil, nil}, states)

	_, _, err = r.Score(context.Background(), nil, [][]int32{{0}}, []any{nil})
	require.NoError(err)

	_, _, err = r.Score(context.Background(), nil, [][]int32{{0}}, []any{nil})
	require.ErrorIs(err, scorer.ErrSizeMismatch)
}
