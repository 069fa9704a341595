// Package envs loads the optional ".env" file of the working directory into the environment when the
// program starts, and provides typed accessors to environment variables, used as default values of
// command-line flags.
//
// Variables already set in the environment take precedence over the ones in the ".env" file.
package envs

import (
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"os"
	"strconv"
)

const (
	// Navigator configuration, see navigators.New.
	Navigator = "MOUSE_NAVIGATOR"

	// Maze file name.
	Maze = "MOUSE_MAZE"

	// MaxSteps per leg of a mission.
	MaxSteps = "MOUSE_MAX_STEPS"
)

// loadErr is set when the package is initialized, before any flags are defined.
var loadErr = Load()

// LoadError returns the error loading the ".env" file when the program started, if any.
// A missing file is not an error.
func LoadError() error { return loadErr }

// Load the given files (".env" if none given) into the environment. Missing files are ignored.
func Load(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	var existing []string
	for _, filename := range filenames {
		if _, err := os.Stat(filename); err == nil {
			existing = append(existing, filename)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return errors.Wrapf(err, "failed to load environment from %q", existing)
	}
	return nil
}

// GetOr returns the value of the environment variable key, or defaultValue if it is not set.
func GetOr(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetIntOr returns the value of the environment variable key parsed as an int, or defaultValue if it
// is not set or can't be parsed. Parsing errors are logged.
func GetIntOr(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		klog.Warningf("Environment variable %s=%q must be an integer, using %d instead", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
