package attfsm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfstdecode/wfst"
	"github.com/katalvlaran/wfstdecode/wfst/attfsm"
)

func TestLoad_SingleEmittingArc(t *testing.T) {
	require := require.New(t)
	src := "0 1 1 7 0\n1 0\n"

	g, err := attfsm.Load(strings.NewReader(src))
	require.NoError(err)
	require.Equal(wfst.State(0), g.Start())
	require.Equal(float64(0), g.FinalWeight(1))

	arcs := g.Arcs(0)
	require.Len(arcs, 1)
	require.Equal(int32(1), arcs[0].ILabel)
	require.Equal(int32(7), arcs[0].OLabel)
	require.Equal(wfst.State(1), arcs[0].NextState)
}

func TestLoad_MissingFinalIsNonFinal(t *testing.T) {
	require := require.New(t)
	g, err := attfsm.Load(strings.NewReader("0 1 1 1 0\n"))
	require.NoError(err)
	require.Equal(wfst.Infinity, g.FinalWeight(1))
}

func TestLoad_EmptyInputHasNoStart(t *testing.T) {
	require := require.New(t)
	_, err := attfsm.Load(strings.NewReader(""))
	require.ErrorIs(err, wfst.ErrNoStartState)
}

func TestLoad_BadStateIsRejected(t *testing.T) {
	require := require.New(t)
	_, err := attfsm.Load(strings.NewReader("x 1 1 1 0\n"))
	require.Error(err)
}

func TestLoad_CommentsAndBlankLinesSkipped(t *testing.T) {
	require := require.New(t)
	src := "# start\n\n0 1 1 1 0\n# final\n1 0\n"
	g, err := attfsm.Load(strings.NewReader(src))
	require.NoError(err)
	require.Equal(2, g.NumStates())
}
