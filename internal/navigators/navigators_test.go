package navigators_test

import (
	"github.com/janpfeifer/mouseGo/internal/maze"
	. "github.com/janpfeifer/mouseGo/internal/navigators"
	"github.com/janpfeifer/mouseGo/internal/navigators/adachi"
	_ "github.com/janpfeifer/mouseGo/internal/navigators/default"
	"github.com/janpfeifer/mouseGo/internal/navigators/lefthand"
	"github.com/janpfeifer/mouseGo/internal/stepmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestModules(t *testing.T) {
	assert.Equal(t, []string{"adachi", "lefthand"}, Modules())
}

func TestNew(t *testing.T) {
	m := maze.New(16, 16)
	nav, err := New(m, "")
	require.NoError(t, err)
	a, ok := nav.(*adachi.Navigator)
	require.True(t, ok)
	assert.Equal(t, stepmap.UnexploredAsAbsent, a.Mode())
	assert.Same(t, m, a.Maze())
	assert.Equal(t, maze.StartLocation, nav.Location())
	_, isModeSetter := nav.(ModeSetter)
	assert.True(t, isModeSetter)

	nav, err = New(m, "adachi:mode=shortest, goal=3x4")
	require.NoError(t, err)
	assert.Equal(t, stepmap.UnexploredAsPresent, nav.(*adachi.Navigator).Mode())
	assert.Equal(t, maze.Position{X: 3, Y: 4}, m.Goal())

	nav, err = New(m, "lefthand")
	require.NoError(t, err)
	_, ok = nav.(*lefthand.Navigator)
	assert.True(t, ok)
	_, isModeSetter = nav.(ModeSetter)
	assert.False(t, isModeSetter)
}

func TestNewErrors(t *testing.T) {
	m := maze.New(16, 16)
	_, err := New(m, "dijkstra")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dijkstra")

	_, err = New(m, "adachi:mode=shortest,max_depth=3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_depth")

	_, err = New(m, "lefthand:mode=search")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mode")

	_, err = New(m, "adachi:mode=fastest")
	require.Error(t, err)
}
