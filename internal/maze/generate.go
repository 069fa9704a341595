package maze

import (
	"github.com/zyedidia/generic/mapset"
	"math/rand/v2"
)

// Generate a random perfect maze (exactly one path between any two cells) with every wall known, using
// Wilson's algorithm: loop-erased random walks from unvisited cells until they hit the visited tree.
//
// The goal is the center cell.
func Generate(width, height int, rng *rand.Rand) *Maze {
	m := New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width-1 {
				m.verticalWalls[y][x+1] = Present
			}
			if y < height-1 {
				m.horizontalWalls[y+1][x] = Present
			}
		}
	}

	randomCell := func() Position {
		return Position{X: rng.IntN(width), Y: rng.IntN(height)}
	}
	visited := mapset.New[Position]()
	visited.Put(randomCell())
	total := width * height
	for visited.Size() < total {
		start := randomCell()
		for visited.Has(start) {
			start = randomCell()
		}

		// Random walk, only the last exit of each cell is kept, which erases the loops.
		exits := make(map[Position]Compass)
		for cell := start; !visited.Has(cell); {
			var next Position
			var c Compass
			for {
				c = Compasses[rng.IntN(len(Compasses))]
				var ok bool
				if next, ok = m.Neighbor(cell, c); ok {
					break
				}
			}
			exits[cell] = c
			cell = next
		}

		// Carve the loop-erased path.
		for cell := start; !visited.Has(cell); {
			c := exits[cell]
			m.Set(cell, c, Absent)
			visited.Put(cell)
			cell = cell.Step(c)
		}
	}
	return m
}
