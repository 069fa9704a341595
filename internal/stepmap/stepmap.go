// Package stepmap computes the "step map" of a maze: for every cell, the minimum number of moves
// through open walls needed to reach a target cell.
//
// Unexplored walls are either considered open (UnexploredAsAbsent, used while searching, so the
// robot is attracted to unknown areas) or closed (UnexploredAsPresent, used for a run through only
// known paths).
//
// The map is computed by relaxation to a fixpoint: full passes over every cell update its steps from
// its neighbors, until a pass makes no update. For unit cost edges this converges to the graph
// distance, independently of the scan order. It is O(D·W·H) for a maze of diameter D, worse than a
// breadth-first search, but simple, and the number of passes is bounded, which keeps the time of a
// decision predictable for the small mazes of the competitions.
package stepmap

import (
	"github.com/janpfeifer/mouseGo/internal/maze"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"strings"
)

// Mode defines how unexplored walls are treated.
type Mode uint8

const (
	// UnexploredAsAbsent considers unexplored walls open: optimistic, used to search.
	UnexploredAsAbsent Mode = iota

	// UnexploredAsPresent considers unexplored walls closed: only paths through known open walls are
	// used, for a shortest run after the search.
	UnexploredAsPresent
)

//go:generate go tool enumer -type=Mode -transform=snake -values -text -json -yaml stepmap.go

// ParseMode converts "search" and "shortest", or any of the Mode names ("unexplored_as_absent" and
// "unexplored_as_present"), case-insensitive, to the corresponding Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "search":
		return UnexploredAsAbsent, nil
	case "shortest":
		return UnexploredAsPresent, nil
	}
	mode, err := ModeString(s)
	if err != nil {
		return 0, errors.Errorf("unknown step map mode %q, valid values are \"search\", \"shortest\" or one of %q",
			s, ModeStrings())
	}
	return mode, nil
}

// Passable returns whether the robot may go through a wall in the given state, in this mode.
func (mode Mode) Passable(wall maze.Wall) bool {
	if mode == UnexploredAsPresent {
		return wall == maze.Absent
	}
	return wall == maze.Absent || wall == maze.Unexplored
}

// Unreached is stored for cells with no known path to the target. It is never used in arithmetic,
// see Map.At.
const Unreached = -1

// Map holds the steps from every cell to the last target computed.
//
// The zero value is an empty map, allocated on the first call to Compute.
type Map struct {
	width, height int
	steps         [][]int
}

// New returns an empty Map.
func New() *Map {
	return &Map{}
}

// Width of the map, or 0 if it was never computed.
func (sm *Map) Width() int { return sm.width }

// Height of the map, or 0 if it was never computed.
func (sm *Map) Height() int { return sm.height }

// At returns the steps from pos to the target, and whether the target can be reached at all.
func (sm *Map) At(pos maze.Position) (steps int, reached bool) {
	steps = sm.steps[pos.Y][pos.X]
	return steps, steps != Unreached
}

// resize reallocates the steps matrix if the maze dimensions changed.
func (sm *Map) resize(width, height int) {
	if sm.width == width && sm.height == height && sm.steps != nil {
		return
	}
	sm.width, sm.height = width, height
	sm.steps = make([][]int, height)
	for y := range sm.steps {
		sm.steps[y] = make([]int, width)
	}
}

// Compute the steps of every cell of m to target, with the given mode for unexplored walls.
// It always recomputes the whole map, and returns the number of passes it took.
func (sm *Map) Compute(m *maze.Maze, target maze.Position, mode Mode) (passes int) {
	sm.resize(m.Width(), m.Height())
	for _, row := range sm.steps {
		for x := range row {
			row[x] = Unreached
		}
	}
	sm.steps[target.Y][target.X] = 0

	for updated := true; updated; {
		updated = false
		passes++
		for y := 0; y < sm.height; y++ {
			for x := 0; x < sm.width; x++ {
				pos := maze.Position{X: x, Y: y}
				for _, c := range maze.Compasses {
					next, ok := m.Neighbor(pos, c)
					if !ok || !mode.Passable(m.Get(pos, c)) {
						continue
					}
					nextSteps := sm.steps[next.Y][next.X]
					if nextSteps == Unreached {
						continue
					}
					if current := sm.steps[y][x]; current == Unreached || nextSteps+1 < current {
						sm.steps[y][x] = nextSteps + 1
						updated = true
					}
				}
			}
		}
	}
	if klog.V(3).Enabled() {
		klog.Infof("Step map to %s (mode=%s) computed in %d passes", target, mode, passes)
	}
	return passes
}

// Clone returns a deep copy of the map.
func (sm *Map) Clone() *Map {
	newSM := &Map{width: sm.width, height: sm.height}
	newSM.steps = make([][]int, len(sm.steps))
	for y, row := range sm.steps {
		newSM.steps[y] = append([]int(nil), row...)
	}
	return newSM
}

// Equal returns whether both maps have the same dimensions and values.
func (sm *Map) Equal(sm2 *Map) bool {
	if sm.width != sm2.width || sm.height != sm2.height {
		return false
	}
	for y, row := range sm.steps {
		for x, steps := range row {
			if sm2.steps[y][x] != steps {
				return false
			}
		}
	}
	return true
}
