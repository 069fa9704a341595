// Package lefthand implements a wall follower: keep the left hand on the wall.
//
// It needs no map of the maze and finds the goal only if it is connected to the outer walls (it
// always is in a perfect maze). It is registered as the navigator module "lefthand", with the
// parameter:
//
//   - right: follow the wall on the right hand side instead.
package lefthand

import (
	"github.com/janpfeifer/mouseGo/internal/maze"
	"github.com/janpfeifer/mouseGo/internal/navigators"
	"github.com/janpfeifer/mouseGo/internal/parameters"
	"k8s.io/klog/v2"
)

// Navigator implements navigators.Navigator following the left-hand rule.
type Navigator struct {
	location  maze.Location
	rightHand bool
}

// Assert Navigator implements navigators.Navigator.
var _ navigators.Navigator = (*Navigator)(nil)

func init() {
	navigators.RegisterModule("lefthand", navigators.ModuleFunc(
		func(_ *maze.Maze, params parameters.Params) (navigators.Navigator, error) {
			rightHand, err := parameters.PopParamOr(params, "right", false)
			if err != nil {
				return nil, err
			}
			return New().WithRightHand(rightHand), nil
		}))
}

// New returns a left-hand Navigator at maze.StartLocation.
func New() *Navigator {
	return &Navigator{location: maze.StartLocation}
}

// WithRightHand makes the Navigator follow the wall on its right instead, if rightHand is true.
func (nav *Navigator) WithRightHand(rightHand bool) *Navigator {
	nav.rightHand = rightHand
	return nav
}

// Location implements navigators.Navigator.
func (nav *Navigator) Location() maze.Location { return nav.location }

// SetLocation implements navigators.Navigator.
func (nav *Navigator) SetLocation(loc maze.Location) { nav.location = loc }

// Navigate implements navigators.Navigator. Only Absent walls are considered open: it turns left if
// it can, otherwise goes forward, otherwise right, and turns back in a dead end. Left and right are
// swapped when following the right hand wall.
func (nav *Navigator) Navigate(front, left, right maze.Wall, goal maze.Position) (maze.Direction, error) {
	if nav.location.Pos == goal {
		klog.V(1).Info("Goal reached")
		return maze.Forward, navigators.ErrGoalReached
	}
	first, firstDir, last, lastDir := left, maze.Left, right, maze.Right
	if nav.rightHand {
		first, firstDir, last, lastDir = right, maze.Right, left, maze.Left
	}
	var dir maze.Direction
	switch {
	case first == maze.Absent:
		dir = firstDir
	case front == maze.Absent:
		dir = maze.Forward
	case last == maze.Absent:
		dir = lastDir
	default:
		dir = maze.Backward
	}
	klog.V(1).Infof("%s, Wall:%s, Go:%s", nav.location, maze.WallsString(left, front, right), dir.LogString())
	return dir, nil
}
