// compare runs the missions of two navigator configurations on a set of mazes, in parallel, and reports
// the number of steps of each.
//
// Mazes are the files given as arguments, or -random mazes generated with -seed.
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/janpfeifer/mouseGo/internal/envs"
	"github.com/janpfeifer/mouseGo/internal/maze"
	"github.com/janpfeifer/mouseGo/internal/navigators"
	_ "github.com/janpfeifer/mouseGo/internal/navigators/default"
	"github.com/janpfeifer/mouseGo/internal/profilers"
	"github.com/janpfeifer/mouseGo/internal/sim"
	"github.com/janpfeifer/mouseGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
	"math/rand/v2"
	"runtime"
	"time"
)

var (
	flagNav1Config  = flag.String("nav1", envs.GetOr(envs.Navigator, navigators.DefaultConfig), "1st navigator configuration.")
	flagNav2Config  = flag.String("nav2", "lefthand", "2nd navigator configuration.")
	flagRandom      = flag.Int("random", 0, "Number of random mazes to generate, if no maze files are given.")
	flagSize        = flag.Int("size", 16, "Width and height of the random mazes.")
	flagSeed        = flag.Uint64("seed", 1, "Seed used to generate the random mazes.")
	flagParallelism = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and run "+
		"these many missions simultaneously.")
	flagMaxSteps = flag.Int("max_steps", envs.GetIntOr(envs.MaxSteps, 0),
		"Maximum number of steps per run. If 0, it is set proportional to the size of the maze.")
	flagVerbose = flag.Bool("verbose", false, "Print the results of each maze.")
)

// Globals
var (
	// globalCtx used everywhere. It is cancelled when the program is about to exit either by
	// an interrupt (ctrl+C) or by reaching the end.
	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if err := envs.LoadError(); err != nil {
		klog.Warningf("%+v", err)
	}

	// Capture Control+C
	var globalCancel func()
	globalCtx, globalCancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(globalCancel, 5*time.Second)
	defer globalCancel()

	// Profilers: CPU and heap profiles.
	must.M(profilers.Setup())
	defer profilers.OnQuit()

	mazes := must.M1(loadMazes())
	if len(mazes) == 0 {
		klog.Exitf("No mazes to compare: give maze files as arguments, or set -random")
	}
	configs := [2]string{*flagNav1Config, *flagNav2Config}
	for _, config := range configs {
		// Fail early on invalid configurations.
		_, err := navigators.New(maze.New(mazes[0].truth.Width(), mazes[0].truth.Height()), config)
		if err != nil {
			klog.Exitf("Invalid navigator: %+v", err)
		}
	}
	must.M(runMissions(globalCtx, configs, mazes))
}

// namedMaze is a maze and where it came from.
type namedMaze struct {
	name  string
	truth *maze.Maze
}

func loadMazes() (mazes []namedMaze, err error) {
	for _, filename := range flag.Args() {
		var m *maze.Maze
		m, err = maze.ReadFile(filename, 0, 0)
		if err != nil {
			return
		}
		mazes = append(mazes, namedMaze{name: filename, truth: m})
	}
	rng := rand.New(rand.NewPCG(*flagSeed, 0))
	for ii := range *flagRandom {
		mazes = append(mazes, namedMaze{
			name:  fmt.Sprintf("random-%d-%05d", *flagSeed, ii),
			truth: maze.Generate(*flagSize, *flagSize, rng),
		})
	}
	return
}

func runMissions(ctx context.Context, configs [2]string, mazes []namedMaze) error {
	r := &Results{
		start: time.Now(),
		total: len(mazes),
	}
	var wg errgroup.Group
	wg.SetLimit(getParallelism())
	var s *spinning.Spinning
	if !*flagVerbose {
		s = spinning.New(ctx, r.String)
	}

	for _, nm := range mazes {
		wg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			var results [2]*sim.MissionResult
			for navIdx, config := range configs {
				mr, err := runMission(ctx, config, nm.truth)
				if ctx.Err() != nil {
					return nil
				}
				if err != nil {
					klog.Warningf("Nav-%d %q failed on maze %s: %v", navIdx+1, config, nm.name, err)
					continue
				}
				results[navIdx] = mr
				if *flagVerbose {
					fmt.Printf("%s: Nav-%d search=%d, return=%d, final=%d\n",
						nm.name, navIdx+1, mr.Search.Steps, mr.Return.Steps, mr.Final.Steps)
				}
			}
			r.record(results)
			return nil
		})
	}
	err := wg.Wait()
	if s != nil {
		s.Done()
	}
	fmt.Println(r.Report(configs))
	if ctx.Err() != nil {
		fmt.Printf("Interrupted: %s\n", ctx.Err())
		return nil
	}
	return err
}

// runMission creates a new navigator from config and runs it through truth.
func runMission(ctx context.Context, config string, truth *maze.Maze) (*sim.MissionResult, error) {
	robotMaze := maze.New(truth.Width(), truth.Height())
	robotMaze.SetGoal(truth.Goal())
	nav, err := navigators.New(robotMaze, config)
	if err != nil {
		return nil, err
	}
	mr, err := sim.Mission(ctx, nav, truth, sim.Options{MaxSteps: *flagMaxSteps})
	if err != nil {
		return nil, errors.WithMessagef(err, "navigator %q", config)
	}
	return &mr, nil
}

// getParallelism returns the parallelism.
func getParallelism() (parallelism int) {
	parallelism = runtime.GOMAXPROCS(0)
	if *flagParallelism > 0 {
		parallelism = *flagParallelism
	}
	return
}
