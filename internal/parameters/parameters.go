// Package parameters handles generic configuration Params, a map[string]string that the
// user can set with a configuration string like "mode=shortest,goal=7x7,verbose".
package parameters

import (
	"github.com/janpfeifer/mouseGo/internal/maze"
	"github.com/pkg/errors"
	"slices"
	"strconv"
	"strings"
)

// Params represent generic configuration parameters.
type Params map[string]string

// NewFromConfigString create params from user's configuration string.
// Empty parts are ignored.
// See GetParamOr and PopParamOr to parse values from this map.
func NewFromConfigString(config string) Params {
	params := make(Params)
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		subParts := strings.SplitN(part, "=", 2) // Split into up to 2 parts to handle '=' in values
		if len(subParts) == 1 {
			params[subParts[0]] = ""
		} else {
			params[subParts[0]] = subParts[1]
		}
	}
	return params
}

// PopParamOr is like GetParamOr, but it also deletes from the params map the retrieved parameter.
func PopParamOr[T interface {
	bool | string
}](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// GetParamOr attempts to parse a parameter to the given type if the key is present, or returns the defaultValue
// if not.
//
// For bool types, a key without a value is interpreted as true.
func GetParamOr[T interface {
	bool | string
}](params Params, key string, defaultValue T) (T, error) {
	vAny := (any)(defaultValue)
	var t T
	toT := func(v any) T { return v.(T) }
	switch vAny.(type) {
	case string:
		if value, exists := params[key]; exists {
			return toT(value), nil
		}
	case bool:
		if value, exists := params[key]; exists {
			if value == "" || strings.ToLower(value) == "true" || value == "1" { // Empty value is considered "true"
				return toT(true), nil
			}
			if strings.ToLower(value) == "false" || value == "0" {
				return toT(false), nil
			}
			return defaultValue, errors.Errorf("failed to parse configuration %s=%q to bool", key, value)
		}
	}
	return defaultValue, nil
}

// ParsePosition parses a cell position in the format "<x>x<y>", e.g. "7x8".
func ParsePosition(value string) (maze.Position, error) {
	parts := strings.Split(strings.ToLower(value), "x")
	if len(parts) != 2 {
		return maze.Position{}, errors.Errorf("invalid position %q, expected \"<x>x<y>\"", value)
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return maze.Position{}, errors.Wrapf(err, "invalid x in position %q", value)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return maze.Position{}, errors.Wrapf(err, "invalid y in position %q", value)
	}
	return maze.Position{X: x, Y: y}, nil
}

// PopPositionOr parses and deletes the position under key (see ParsePosition), or returns
// defaultValue if key is not set. The second value returned tells whether the key was set.
func PopPositionOr(params Params, key string, defaultValue maze.Position) (maze.Position, bool, error) {
	value, found := params[key]
	if !found {
		return defaultValue, false, nil
	}
	pos, err := ParsePosition(value)
	if err != nil {
		return defaultValue, true, errors.WithMessagef(err, "configuration %s=%q", key, value)
	}
	delete(params, key)
	return pos, true, nil
}

// CheckAllUsed returns an error listing the keys still in params. Use it after popping all known
// parameters, to report typos.
func CheckAllUsed(params Params) error {
	if len(params) == 0 {
		return nil
	}
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return errors.Errorf("unknown configuration parameter(s): %q", keys)
}
