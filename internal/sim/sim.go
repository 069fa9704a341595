// Package sim drives a navigators.Navigator through a maze whose walls are all known (the "truth"),
// playing the part of the robot hardware: it senses the walls around the robot, executes the moves and
// reports the robot location back to the navigator.
package sim

import (
	"context"
	"github.com/janpfeifer/mouseGo/internal/maze"
	"github.com/janpfeifer/mouseGo/internal/navigators"
	"github.com/janpfeifer/mouseGo/internal/stepmap"
	"github.com/pkg/errors"
	"github.com/zyedidia/generic/mapset"
	"k8s.io/klog/v2"
)

var (
	// ErrStepLimit is returned when the goal was not reached within Options.MaxSteps moves.
	ErrStepLimit = errors.New("step limit exceeded")

	// ErrCollision is returned when the navigator chooses to move through a wall.
	ErrCollision = errors.New("robot moved into a wall")
)

// Options for Run and Mission.
type Options struct {
	// MaxSteps is the maximum number of moves in a leg. If 0, DefaultMaxSteps is used.
	MaxSteps int

	// OnStep, if set, is called after every move with the new location.
	OnStep func(step int, loc maze.Location)

	// SkipFinal disables the final run of a Mission.
	SkipFinal bool
}

// DefaultMaxSteps for a maze of the given dimensions.
func DefaultMaxSteps(width, height int) int {
	return 4 * width * height * 4
}

// Result of one leg, from the location of the navigator to a goal.
type Result struct {
	// Steps is the number of moves (cells) taken.
	Steps int

	// Turns counts the moves that were not Forward.
	Turns int

	// Reached is true if the goal was reached.
	Reached bool

	// Visited holds the cells the robot has been on, including the initial cell.
	Visited mapset.Set[maze.Position]

	// Path with the locations of the robot, starting with its initial location.
	Path []maze.Location
}

// Sense returns the walls around the robot at loc, as its sensors would read them from the truth maze.
func Sense(truth *maze.Maze, loc maze.Location) (front, left, right maze.Wall) {
	h := loc.Heading
	front = truth.Get(loc.Pos, h.Turn(maze.Forward))
	left = truth.Get(loc.Pos, h.Turn(maze.Left))
	right = truth.Get(loc.Pos, h.Turn(maze.Right))
	return
}

// Run moves the robot until the navigator reports the goal was reached.
//
// It returns the navigator errors (like navigators.ErrNoPath), ErrCollision, ErrStepLimit or the
// context error if it is cancelled. The Result is valid, with the partial path, also on errors.
func Run(ctx context.Context, nav navigators.Navigator, truth *maze.Maze, goal maze.Position, opts Options) (Result, error) {
	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps(truth.Width(), truth.Height())
	}
	loc := nav.Location()
	result := Result{
		Visited: mapset.New[maze.Position](),
		Path:    []maze.Location{loc},
	}
	result.Visited.Put(loc.Pos)
	for {
		if err := ctx.Err(); err != nil {
			return result, errors.WithMessagef(err, "run interrupted at %s after %d steps", loc, result.Steps)
		}
		front, left, right := Sense(truth, loc)
		dir, err := nav.Navigate(front, left, right, goal)
		if errors.Is(err, navigators.ErrGoalReached) {
			result.Reached = true
			klog.V(1).Infof("Goal %s reached in %d steps (%d turns)", goal, result.Steps, result.Turns)
			return result, nil
		}
		if err != nil {
			return result, errors.WithMessagef(err, "at %s after %d steps", loc, result.Steps)
		}
		if result.Steps >= maxSteps {
			return result, errors.Wrapf(ErrStepLimit, "goal %s not reached in %d steps", goal, maxSteps)
		}

		loc.Turn(dir)
		if truth.Get(loc.Pos, loc.Heading) != maze.Absent {
			return result, errors.Wrapf(ErrCollision, "moving %s from %s", dir, loc)
		}
		loc.Forward()
		nav.SetLocation(loc)
		result.Steps++
		if dir != maze.Forward {
			result.Turns++
		}
		result.Visited.Put(loc.Pos)
		result.Path = append(result.Path, loc)
		if opts.OnStep != nil {
			opts.OnStep(result.Steps, loc)
		}
	}
}

// GoalProvider is implemented by navigators that keep their own goal.
type GoalProvider interface {
	Goal() maze.Position
}

// MissionResult holds the results of each leg of a Mission.
type MissionResult struct {
	// Search leg, from the start to the goal.
	Search Result

	// Return leg, from the goal back to the start.
	Return Result

	// Final is the run through known paths only, from the start to the goal. It is only set if
	// HasFinal is true.
	Final    Result
	HasFinal bool
}

// TotalSteps of all legs.
func (mr *MissionResult) TotalSteps() int {
	return mr.Search.Steps + mr.Return.Steps + mr.Final.Steps
}

// Mission runs a competition: the robot searches its way from the start to the goal, then
// returns to the start cell. The goal is the one of the navigator if it implements GoalProvider,
// otherwise the goal of the truth maze. Finally, if the navigator implements navigators.ModeSetter and
// Options.SkipFinal is false, it runs once more to the goal considering unexplored walls closed, so
// only known paths are used.
//
// The navigator should be at maze.StartLocation. The step limit applies to each leg.
func Mission(ctx context.Context, nav navigators.Navigator, truth *maze.Maze, opts Options) (mr MissionResult, err error) {
	start := nav.Location().Pos
	goal := truth.Goal()
	if gp, ok := nav.(GoalProvider); ok {
		goal = gp.Goal()
	}
	mr.Search, err = Run(ctx, nav, truth, goal, opts)
	if err != nil {
		return mr, errors.WithMessage(err, "search leg")
	}
	mr.Return, err = Run(ctx, nav, truth, start, opts)
	if err != nil {
		return mr, errors.WithMessage(err, "return leg")
	}
	setter, ok := nav.(navigators.ModeSetter)
	if !ok || opts.SkipFinal {
		return mr, nil
	}
	setter.SetMode(stepmap.UnexploredAsPresent)
	mr.HasFinal = true
	mr.Final, err = Run(ctx, nav, truth, goal, opts)
	if err != nil {
		return mr, errors.WithMessage(err, "final leg")
	}
	klog.V(1).Infof("Mission completed: search=%d, return=%d, final=%d steps",
		mr.Search.Steps, mr.Return.Steps, mr.Final.Steps)
	return mr, nil
}
