// Package mazetest provides helper functions to create tests using mazes.
package mazetest

import (
	"github.com/janpfeifer/mouseGo/internal/maze"
	"github.com/janpfeifer/must"
	"strings"
)

// FromText parses a maze in the maze.FileGlyphs format, detecting its size. It panics on errors.
func FromText(text string) *maze.Maze {
	width, height := must.M2(maze.DetectSize(text))
	return must.M1(maze.Parse(strings.NewReader(text), width, height))
}

// SetAll sets every inner wall of the maze to the given value.
func SetAll(m *maze.Maze, wall maze.Wall) {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			pos := maze.Position{X: x, Y: y}
			for _, c := range []maze.Compass{maze.North, maze.East} {
				if !m.IsBoundary(pos, c) {
					m.Set(pos, c, wall)
				}
			}
		}
	}
}

// Open returns a maze with no inner walls.
func Open(width, height int) *maze.Maze {
	m := maze.New(width, height)
	SetAll(m, maze.Absent)
	return m
}
