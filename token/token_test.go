package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfstdecode/token"
	"github.com/katalvlaran/wfstdecode/wfst"
)

func TestNew_SeedToken(t *testing.T) {
	require := require.New(t)
	arc := wfst.Arc{ILabel: 0, OLabel: 0, Weight: wfst.Weight{Graph: 0}, NextState: 0}
	seed := token.New(arc, 0, nil, []int32{3650}, "initial-state")

	require.Nil(seed.Prev)
	require.Equal(float64(0), seed.Cost)
	require.Equal([]int32{3650}, seed.LabelSeq)
	require.Equal("initial-state", seed.ScorerState)
}

func TestNew_AccumulatesCostFromParent(t *testing.T) {
	require := require.New(t)
	seed := token.New(wfst.Arc{}, 0, nil, []int32{0}, nil)
	arc := wfst.Arc{ILabel: 1, OLabel: 7, Weight: wfst.Weight{Graph: 2.5}, NextState: 1}

	child := token.New(arc, 1.5, seed, token.Extend(seed.LabelSeq, 0), "next-state")

	require.Equal(4.0, child.Cost)
	require.Equal(2.5, child.Arc.Weight.Graph)
	require.Equal(1.5, child.Arc.Weight.Acoustic)
	require.Same(seed, child.Prev)
}

func TestExtend_DoesNotMutateSharedParentSlice(t *testing.T) {
	require := require.New(t)
	parentSeq := []int32{3650}

	childA := token.Extend(parentSeq, 1)
	childB := token.Extend(parentSeq, 2)

	require.Equal([]int32{3650}, parentSeq, "parent slice must be untouched")
	require.Equal([]int32{3650, 1}, childA)
	require.Equal([]int32{3650, 2}, childB)
}
