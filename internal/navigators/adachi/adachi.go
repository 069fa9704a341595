// Package adachi implements the Adachi method: at every cell the robot records the walls it senses,
// recomputes the step map to the goal and moves to the open neighbor with the fewest steps.
//
// While searching, unexplored walls are considered open, so the robot is drawn to unknown areas that
// may offer a shorter path. After the maze is (partially) explored, the mode can be switched to
// consider unexplored walls closed, for a run through known paths only.
//
// It registers itself as the navigator module "adachi", with the parameters:
//
//   - mode=search|shortest: how unexplored walls are treated, see stepmap.ParseMode. Default is search.
//   - goal=<x>x<y>: overrides the goal of the maze.
package adachi

import (
	"github.com/janpfeifer/mouseGo/internal/maze"
	"github.com/janpfeifer/mouseGo/internal/navigators"
	"github.com/janpfeifer/mouseGo/internal/parameters"
	"github.com/janpfeifer/mouseGo/internal/stepmap"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Navigator implements navigators.Navigator using the Adachi method.
type Navigator struct {
	location maze.Location
	maze     *maze.Maze
	stepMap  *stepmap.Map
	mode     stepmap.Mode
}

var (
	// Assert Navigator implements navigators.Navigator and navigators.ModeSetter.
	_ navigators.Navigator  = (*Navigator)(nil)
	_ navigators.ModeSetter = (*Navigator)(nil)
)

func init() {
	navigators.RegisterModule("adachi", navigators.ModuleFunc(NewFromParams))
}

// New creates a Navigator that owns m, the robot's map of the maze: it is updated with the walls
// sensed. The robot starts at maze.StartLocation, in the search mode (stepmap.UnexploredAsAbsent).
func New(m *maze.Maze) *Navigator {
	return &Navigator{
		location: maze.StartLocation,
		maze:     m,
		stepMap:  stepmap.New(),
		mode:     stepmap.UnexploredAsAbsent,
	}
}

// NewFromParams creates a Navigator configured by params, see package documentation.
func NewFromParams(m *maze.Maze, params parameters.Params) (navigators.Navigator, error) {
	nav := New(m)
	modeStr, err := parameters.PopParamOr(params, "mode", nav.mode.String())
	if err != nil {
		return nil, err
	}
	mode, err := stepmap.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}
	nav.SetMode(mode)

	goal, found, err := parameters.PopPositionOr(params, "goal", m.Goal())
	if err != nil {
		return nil, err
	}
	if found {
		if !m.Contains(goal) {
			return nil, errors.Errorf("goal %s outside of the %dx%d maze", goal, m.Width(), m.Height())
		}
		m.SetGoal(goal)
	}
	return nav, nil
}

// WithMode sets the mode and returns the Navigator, for chaining with New.
func (nav *Navigator) WithMode(mode stepmap.Mode) *Navigator {
	nav.mode = mode
	return nav
}

// SetMode implements navigators.ModeSetter.
func (nav *Navigator) SetMode(mode stepmap.Mode) {
	klog.V(1).Infof("Step map mode set to %s", mode)
	nav.mode = mode
}

// Mode returns the current mode.
func (nav *Navigator) Mode() stepmap.Mode { return nav.mode }

// Maze returns the robot's map of the maze, with the walls sensed so far.
func (nav *Navigator) Maze() *maze.Maze { return nav.maze }

// StepMap as computed in the last call to Navigate. It is empty before the first call.
func (nav *Navigator) StepMap() *stepmap.Map { return nav.stepMap }

// Goal returns the goal of the maze.
func (nav *Navigator) Goal() maze.Position { return nav.maze.Goal() }

// Location implements navigators.Navigator.
func (nav *Navigator) Location() maze.Location { return nav.location }

// SetLocation implements navigators.Navigator.
func (nav *Navigator) SetLocation(loc maze.Location) { nav.location = loc }

// Navigate implements navigators.Navigator.
//
// The walls sensed are recorded in the maze before the step map is recomputed. Ties among the open
// neighbors are broken in the order North, East, South, West.
func (nav *Navigator) Navigate(front, left, right maze.Wall, goal maze.Position) (maze.Direction, error) {
	pos, heading := nav.location.Pos, nav.location.Heading
	if pos == goal {
		klog.V(1).Info("Goal reached")
		return maze.Forward, navigators.ErrGoalReached
	}

	// Record walls: there is no sensor looking backward.
	nav.maze.Set(pos, heading.Turn(maze.Forward), front)
	nav.maze.Set(pos, heading.Turn(maze.Left), left)
	nav.maze.Set(pos, heading.Turn(maze.Right), right)

	nav.stepMap.Compute(nav.maze, goal, nav.mode)

	best, bestSteps, found := maze.North, 0, false
	for _, c := range maze.Compasses {
		if nav.maze.Get(pos, c) != maze.Absent {
			continue
		}
		next, ok := nav.maze.Neighbor(pos, c)
		if !ok {
			continue
		}
		steps, reached := nav.stepMap.At(next)
		if reached && (!found || steps < bestSteps) {
			best, bestSteps, found = c, steps, true
		}
	}
	if !found {
		klog.Errorf("No path to go: %s, Wall:%s", nav.location, maze.WallsString(left, front, right))
		return maze.Forward, navigators.ErrNoPath
	}

	dir := heading.DirectionTo(best)
	klog.V(1).Infof("%s, Wall:%s, Go:%s", nav.location, maze.WallsString(left, front, right), dir.LogString())
	return dir, nil
}
