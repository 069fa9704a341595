// Package navigators defines the Navigator interface used by the driving loop, and a factory of
// navigators from configuration strings. Navigator implementations register themselves with
// RegisterModule.
package navigators

import (
	"github.com/janpfeifer/mouseGo/internal/maze"
	"github.com/janpfeifer/mouseGo/internal/parameters"
	"github.com/janpfeifer/mouseGo/internal/stepmap"
	"github.com/pkg/errors"
	"slices"
	"strings"
)

var (
	// ErrGoalReached is returned by Navigator.Navigate when the robot is already at the goal.
	ErrGoalReached = errors.New("goal reached")

	// ErrNoPath is returned by Navigator.Navigate when, given the walls known so far, there is no
	// way towards the goal.
	ErrNoPath = errors.New("no path to goal")
)

// Navigator decides the next move of the robot, one cell at a time.
//
// The Navigator doesn't move the robot: after executing the returned direction the caller (the
// driving layer) updates the robot location with SetLocation.
type Navigator interface {
	// Navigate returns the direction to move, relative to the current heading, given the walls sensed
	// in front, to the left and to the right of the robot.
	//
	// It returns ErrGoalReached if the robot is already at goal, and ErrNoPath if it is stuck.
	// Both are terminal.
	Navigate(front, left, right maze.Wall, goal maze.Position) (maze.Direction, error)

	// Location returns the current location of the robot, as last set.
	Location() maze.Location

	// SetLocation updates the location of the robot, after a move.
	SetLocation(loc maze.Location)
}

// ModeSetter is implemented by navigators that can switch how unexplored walls are treated: used to
// make a fast run through known paths only, after the maze was searched.
type ModeSetter interface {
	SetMode(mode stepmap.Mode)
}

// Module creates a Navigator for the given maze (the robot's own map, usually fresh) and configuration
// parameters.
//
// The Module should pop the parameters it uses: any parameter left is reported as an error.
type Module interface {
	NewNavigator(m *maze.Maze, params parameters.Params) (Navigator, error)
}

// ModuleFunc adapts a function to a Module.
type ModuleFunc func(m *maze.Maze, params parameters.Params) (Navigator, error)

// NewNavigator implements Module.
func (fn ModuleFunc) NewNavigator(m *maze.Maze, params parameters.Params) (Navigator, error) {
	return fn(m, params)
}

var (
	// Registered modules.
	keywordToModules = make(map[string]Module)
)

// RegisterModule so it can be used by any of the front-ends.
func RegisterModule(name string, module Module) {
	keywordToModules[name] = module
}

// Modules returns the names of the registered modules, sorted.
func Modules() []string {
	names := make([]string, 0, len(keywordToModules))
	for name := range keywordToModules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var (
	// DefaultConfig is used if no configuration was given. The value may be changed by the program.
	DefaultConfig = "adachi"
)

// New creates a new Navigator given the configuration string.
//
// Args:
//
//	m: the robot's map of the maze, updated by the navigator as walls are sensed.
//	config: the module name, optionally followed by a colon (":") and a comma-separated list of
//		parameters with optional values, e.g. "adachi:mode=shortest,goal=7x7".
//		If empty, DefaultConfig is used.
func New(m *maze.Maze, config string) (Navigator, error) {
	if config == "" {
		config = DefaultConfig
	}

	// Find moduleName.
	moduleName := config
	if moduleSplit := strings.Index(config, ":"); moduleSplit != -1 {
		moduleName = config[:moduleSplit]
		config = config[moduleSplit+1:]
	} else {
		config = ""
	}
	module, ok := keywordToModules[moduleName]
	if !ok {
		return nil, errors.Errorf("unknown navigator %q, registered navigators: %q", moduleName, Modules())
	}

	params := parameters.NewFromConfigString(config)
	nav, err := module.NewNavigator(m, params)
	if err == nil {
		err = parameters.CheckAllUsed(params)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create navigator %q", moduleName)
	}
	return nav, nil
}
