package parameters

import (
	"github.com/janpfeifer/mouseGo/internal/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParams(t *testing.T) {
	params := NewFromConfigString("mode=shortest,ratio=0.5,verbose,goal=7X8,,")
	assert.Len(t, params, 4)

	mode, err := PopParamOr(params, "mode", "search")
	require.NoError(t, err)
	assert.Equal(t, "shortest", mode)
	ratio, err := GetParamOr(params, "ratio", "1")
	require.NoError(t, err)
	assert.Equal(t, "0.5", ratio)
	verbose, err := PopParamOr(params, "verbose", false)
	require.NoError(t, err)
	assert.True(t, verbose)
	missing, err := PopParamOr(params, "missing", true)
	require.NoError(t, err)
	assert.True(t, missing)

	goal, found, err := PopPositionOr(params, "goal", maze.Position{})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, maze.Position{X: 7, Y: 8}, goal)
	_, found, err = PopPositionOr(params, "goal", maze.Position{})
	require.NoError(t, err)
	assert.False(t, found)

	// "ratio" was only read, not popped.
	err = CheckAllUsed(params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ratio")
	delete(params, "ratio")
	assert.NoError(t, CheckAllUsed(params))
}

func TestParseErrors(t *testing.T) {
	params := NewFromConfigString("flag=maybe,off=0,pos=1x")
	off, err := GetParamOr(params, "off", true)
	require.NoError(t, err)
	assert.False(t, off)
	_, err = GetParamOr(params, "flag", true)
	assert.Error(t, err)
	_, _, err = PopPositionOr(params, "pos", maze.Position{})
	assert.Error(t, err)
	_, err = ParsePosition("1x2x3")
	assert.Error(t, err)
	assert.Len(t, NewFromConfigString(""), 0)
}
