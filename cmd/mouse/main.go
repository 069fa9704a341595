// mouse runs a micromouse competition on a maze file: a search run from the start to the goal, a run
// back to the start, and a final run through the known paths only.
//
// Defaults for some flags can be set with environment variables, or in a ".env" file in the current
// directory: MOUSE_NAVIGATOR, MOUSE_MAZE and MOUSE_MAX_STEPS.
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/janpfeifer/mouseGo/internal/envs"
	"github.com/janpfeifer/mouseGo/internal/maze"
	"github.com/janpfeifer/mouseGo/internal/navigators"
	_ "github.com/janpfeifer/mouseGo/internal/navigators/default"
	"github.com/janpfeifer/mouseGo/internal/sim"
	"github.com/janpfeifer/mouseGo/internal/stepmap"
	"github.com/janpfeifer/mouseGo/internal/ui/cli"
	"github.com/janpfeifer/mouseGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
	"math/rand/v2"
	"time"
)

var (
	flagMaze = flag.String("maze", envs.GetOr(envs.Maze, ""),
		"Maze file to run. If empty, a random maze of size -width x -height is generated.")
	flagWidth     = flag.Int("width", 0, "Width of the maze. If 0, it is detected from the maze file, or 16 for a random maze.")
	flagHeight    = flag.Int("height", 0, "Height of the maze. If 0, it is detected from the maze file, or 16 for a random maze.")
	flagSeed      = flag.Uint64("seed", 0, "Seed for the random maze. If 0, a random seed is used.")
	flagNavigator = flag.String("navigator", envs.GetOr(envs.Navigator, navigators.DefaultConfig),
		fmt.Sprintf("Navigator configuration, one of %q optionally followed by parameters, e.g.: \"adachi:mode=search\".",
			navigators.Modules()))
	flagMaxSteps = flag.Int("max_steps", envs.GetIntOr(envs.MaxSteps, 0),
		"Maximum number of steps per run. If 0, it is set proportional to the size of the maze.")
	flagPrintSteps = flag.Bool("print_steps", false, "Print the robot's map after each step.")
	flagNoFinalRun = flag.Bool("no_final_run", false, "Skip the final run through known paths only.")
	flagColor      = flag.Bool("color", true, "Use colors in the output.")
	flagSave       = flag.String("save", "", "If set, saves the robot's map of the maze, after the mission, to this file.")

	globalCtx = context.Background()
)

// mappedNavigator is implemented by navigators that keep a map of the maze and its step map.
type mappedNavigator interface {
	Maze() *maze.Maze
	StepMap() *stepmap.Map
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if err := envs.LoadError(); err != nil {
		klog.Warningf("%+v", err)
	}
	if *flagMaxSteps < 0 {
		klog.Fatalf("Invalid -max_steps=%d, it must be >= 0", *flagMaxSteps)
	}

	// Capture Control+C
	var cancel func()
	globalCtx, cancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	truth := loadMaze()
	robotMaze := maze.New(truth.Width(), truth.Height())
	robotMaze.SetGoal(truth.Goal())
	nav, err := navigators.New(robotMaze, *flagNavigator)
	if err != nil {
		klog.Exitf("Failed to create navigator: %+v", err)
	}

	ui := cli.New(*flagColor)
	fmt.Printf("Maze %dx%d, goal at %s:\n", truth.Width(), truth.Height(), truth.Goal())
	cli.PrintCentered(ui.MazeString(truth))

	opts := sim.Options{
		MaxSteps:  *flagMaxSteps,
		SkipFinal: *flagNoFinalRun,
	}
	mapped, hasMap := nav.(mappedNavigator)
	if *flagPrintSteps {
		opts.OnStep = func(step int, loc maze.Location) {
			fmt.Printf("\nStep #%d: %s\n", step, loc)
			if hasMap {
				cli.PrintCentered(ui.StepMapString(mapped.Maze(), mapped.StepMap(), &loc))
			}
		}
	}
	mr, err := sim.Mission(globalCtx, nav, truth, opts)
	if hasMap {
		fmt.Println("\nRobot's map of the maze and last step map:")
		robotLoc := nav.Location()
		cli.PrintCentered(ui.StepMapString(mapped.Maze(), mapped.StepMap(), &robotLoc))
		if *flagSave != "" {
			must.M(mapped.Maze().WriteFile(*flagSave))
			fmt.Printf("Robot's map saved to %q\n", *flagSave)
		}
	}
	ui.PrintResult(*flagNavigator, &mr, err)
	if err != nil {
		klog.Exitf("Mission failed: %+v", err)
	}
}

// loadMaze reads the maze file given by -maze, or generates a random one.
func loadMaze() *maze.Maze {
	if *flagMaze != "" {
		m, err := maze.ReadFile(*flagMaze, *flagWidth, *flagHeight)
		if err != nil {
			klog.Exitf("%+v", err)
		}
		return m
	}
	width, height := *flagWidth, *flagHeight
	if width == 0 {
		width = 16
	}
	if height == 0 {
		height = 16
	}
	seed := *flagSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	klog.Infof("Generating random %dx%d maze with -seed=%d", width, height, seed)
	return maze.Generate(width, height, rand.New(rand.NewPCG(seed, 0)))
}
