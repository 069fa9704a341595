// Package profilers implement helper functions to set up profiling for the various programs.
//
// If linked, it will install the profiler flags -cpu_profile and -mem_profile.
package profilers

import (
	"flag"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"os"
	"runtime"
	"runtime/pprof"
)

var (
	flagCPUProfile = flag.String("cpu_profile", "", "write cpu profile to `file`")
	flagMemProfile = flag.String("mem_profile", "", "write heap profile to `file` at the end of the program")
)

// Setup starts the CPU profiler (flag -cpu_profile), if it was configured.
// You should follow with a deferred call to OnQuit.
func Setup() error {
	return StartCPUProfile(*flagCPUProfile)
}

// OnQuit should be called before the exit of the main() function, typically this is setup as a deferred call
// just after Setup.
func OnQuit() {
	if *flagCPUProfile != "" {
		pprof.StopCPUProfile()
		klog.Infof("CPU profile written to %q", *flagCPUProfile)
	}
	if *flagMemProfile != "" {
		if err := WriteHeapProfile(*flagMemProfile); err != nil {
			klog.Errorf("%+v", err)
			return
		}
		klog.Infof("Heap profile written to %q", *flagMemProfile)
	}
}

// StartCPUProfile creates filename and starts the CPU profiling there. It is a no-op if filename is empty.
func StartCPUProfile(filename string) error {
	if filename == "" {
		return nil
	}
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "could not create CPU profile %q", filename)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "could not start CPU profile %q", filename)
	}
	return nil
}

// WriteHeapProfile garbage collects and writes the heap profile to filename.
func WriteHeapProfile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "could not create heap profile %q", filename)
	}
	defer func() { _ = f.Close() }()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return errors.Wrapf(err, "could not write heap profile %q", filename)
	}
	return nil
}
