package stepmap

import (
	"github.com/janpfeifer/mouseGo/internal/maze"
	"github.com/janpfeifer/mouseGo/internal/maze/mazetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
	"math/rand/v2"
	"testing"
)

func init() {
	klog.InitFlags(nil)
}

// bfs returns the distances of every cell to target, with -1 for cells that can't reach it.
func bfs(m *maze.Maze, target maze.Position, mode Mode) [][]int {
	dist := make([][]int, m.Height())
	for y := range dist {
		dist[y] = make([]int, m.Width())
		for x := range dist[y] {
			dist[y][x] = -1
		}
	}
	dist[target.Y][target.X] = 0
	queue := []maze.Position{target}
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		for _, c := range maze.Compasses {
			next, ok := m.Neighbor(pos, c)
			if !ok || !mode.Passable(m.Get(pos, c)) || dist[next.Y][next.X] != -1 {
				continue
			}
			dist[next.Y][next.X] = dist[pos.Y][pos.X] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

// forgetWalls sets a fraction of the inner walls to Unexplored.
func forgetWalls(m *maze.Maze, rng *rand.Rand, fraction float64) {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			pos := maze.Position{X: x, Y: y}
			for _, c := range []maze.Compass{maze.North, maze.East} {
				if !m.IsBoundary(pos, c) && rng.Float64() < fraction {
					m.Set(pos, c, maze.Unexplored)
				}
			}
		}
	}
}

// braid removes a fraction of the inner walls, so mazes have loops.
func braid(m *maze.Maze, rng *rand.Rand, fraction float64) {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			pos := maze.Position{X: x, Y: y}
			for _, c := range []maze.Compass{maze.North, maze.East} {
				if !m.IsBoundary(pos, c) && rng.Float64() < fraction {
					m.Set(pos, c, maze.Absent)
				}
			}
		}
	}
}

func TestModes(t *testing.T) {
	assert.True(t, UnexploredAsAbsent.Passable(maze.Absent))
	assert.True(t, UnexploredAsAbsent.Passable(maze.Unexplored))
	assert.False(t, UnexploredAsAbsent.Passable(maze.Present))
	assert.True(t, UnexploredAsPresent.Passable(maze.Absent))
	assert.False(t, UnexploredAsPresent.Passable(maze.Unexplored))
	assert.False(t, UnexploredAsPresent.Passable(maze.Present))

	for _, mode := range []Mode{UnexploredAsAbsent, UnexploredAsPresent} {
		parsed, err := ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}
	mode, err := ParseMode("Unexplored_As_Present")
	require.NoError(t, err)
	assert.Equal(t, UnexploredAsPresent, mode)
	mode, err = ParseMode("Search")
	require.NoError(t, err)
	assert.Equal(t, UnexploredAsAbsent, mode)
	assert.Equal(t, "unexplored_as_present", UnexploredAsPresent.String())
	assert.Equal(t, []Mode{UnexploredAsAbsent, UnexploredAsPresent}, ModeValues())
	_, err = ParseMode("fastest")
	require.Error(t, err)
}

func TestTwoByTwo(t *testing.T) {
	m := maze.New(2, 2)
	mazetest.SetAll(m, maze.Absent)
	m.SetGoal(maze.Position{X: 1, Y: 1})
	sm := New()
	sm.Compute(m, m.Goal(), UnexploredAsAbsent)
	for _, tc := range []struct {
		pos   maze.Position
		steps int
	}{
		{maze.Position{X: 1, Y: 1}, 0},
		{maze.Position{X: 1, Y: 0}, 1},
		{maze.Position{X: 0, Y: 1}, 1},
		{maze.Position{X: 0, Y: 0}, 2},
	} {
		steps, reached := sm.At(tc.pos)
		assert.True(t, reached)
		assert.Equalf(t, tc.steps, steps, "steps at %s", tc.pos)
	}
	assert.Equal(t, 2, sm.Width())
	assert.Equal(t, 2, sm.Height())
}

func TestDisconnected(t *testing.T) {
	m := maze.New(3, 1)
	mazetest.SetAll(m, maze.Absent)
	m.Set(maze.Position{X: 1, Y: 0}, maze.East, maze.Present)
	sm := New()
	sm.Compute(m, maze.Position{X: 0, Y: 0}, UnexploredAsAbsent)
	_, reached := sm.At(maze.Position{X: 2, Y: 0})
	assert.False(t, reached)
	steps, reached := sm.At(maze.Position{X: 1, Y: 0})
	assert.True(t, reached)
	assert.Equal(t, 1, steps)

	// Unexplored walls only block in the conservative mode.
	m.Set(maze.Position{X: 1, Y: 0}, maze.East, maze.Unexplored)
	sm.Compute(m, maze.Position{X: 0, Y: 0}, UnexploredAsAbsent)
	steps, reached = sm.At(maze.Position{X: 2, Y: 0})
	assert.True(t, reached)
	assert.Equal(t, 2, steps)
	sm.Compute(m, maze.Position{X: 0, Y: 0}, UnexploredAsPresent)
	_, reached = sm.At(maze.Position{X: 2, Y: 0})
	assert.False(t, reached)
}

func TestCompareWithBFS(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 13))
	for ii := range 40 {
		width, height := 1+rng.IntN(12), 1+rng.IntN(12)
		m := maze.Generate(width, height, rng)
		braid(m, rng, 0.15)
		forgetWalls(m, rng, 0.3)
		target := maze.Position{X: rng.IntN(width), Y: rng.IntN(height)}

		optimistic, conservative := New(), New()
		optimistic.Compute(m, target, UnexploredAsAbsent)
		conservative.Compute(m, target, UnexploredAsPresent)
		wantOptimistic := bfs(m, target, UnexploredAsAbsent)
		wantConservative := bfs(m, target, UnexploredAsPresent)

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				pos := maze.Position{X: x, Y: y}
				steps, reached := optimistic.At(pos)
				assert.Equalf(t, wantOptimistic[y][x] >= 0, reached, "maze #%d, optimistic reached at %s", ii, pos)
				if reached {
					assert.Equalf(t, wantOptimistic[y][x], steps, "maze #%d, optimistic steps at %s", ii, pos)
				}
				cSteps, cReached := conservative.At(pos)
				assert.Equalf(t, wantConservative[y][x] >= 0, cReached, "maze #%d, conservative reached at %s", ii, pos)
				if cReached {
					assert.Equalf(t, wantConservative[y][x], cSteps, "maze #%d, conservative steps at %s", ii, pos)
					// Conservative distances are never smaller, and reachable cells are a subset.
					require.True(t, reached)
					assert.GreaterOrEqual(t, cSteps, steps)
				}
			}
		}
		steps, reached := optimistic.At(target)
		assert.True(t, reached)
		assert.Zero(t, steps)
	}
}

func TestIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 8))
	m := maze.Generate(16, 16, rng)
	forgetWalls(m, rng, 0.5)
	sm := New()
	passes := sm.Compute(m, m.Goal(), UnexploredAsAbsent)
	assert.Greater(t, passes, 1)
	first := sm.Clone()
	assert.True(t, first.Equal(sm))
	sm.Compute(m, m.Goal(), UnexploredAsAbsent)
	assert.True(t, first.Equal(sm))

	// A different target changes the map, and resizing reallocates it.
	sm.Compute(m, maze.Position{X: 0, Y: 0}, UnexploredAsAbsent)
	assert.False(t, first.Equal(sm))
	sm.Compute(maze.New(3, 2), maze.Position{X: 0, Y: 0}, UnexploredAsAbsent)
	assert.Equal(t, 3, sm.Width())
	assert.Equal(t, 2, sm.Height())
	assert.False(t, first.Equal(sm))
}
