package loader

import (
	"fmt"
	"os"
	"strings"
)

// LookupFunc looks up an environment variable.
type LookupFunc func(name string) (string, bool)

// EnvLoader reads prefixed environment variables.
type EnvLoader struct {
	prefix string // Environment variable prefix (e.g., "LINESTORM_")
	lookup LookupFunc
}

// NewEnvLoader creates a loader reading the process environment.
// The prefix should include the trailing underscore (e.g., "LINESTORM_").
func NewEnvLoader(prefix string) *EnvLoader {
	return NewEnvLoaderWithLookup(prefix, os.LookupEnv)
}

// NewEnvLoaderWithLookup creates a loader with a custom lookup function.
func NewEnvLoaderWithLookup(prefix string, lookup LookupFunc) *EnvLoader {
	return &EnvLoader{prefix: prefix, lookup: lookup}
}

// Name returns the full variable name for a suffix such as "LOG_LEVEL".
func (l *EnvLoader) Name(suffix string) string {
	return l.prefix + suffix
}

// String returns the value of the prefixed variable, if set.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) String(suffix string) (string, bool) {
	return l.lookup(l.Name(suffix))
}

// Bool returns the prefixed variable parsed as a boolean, if set.
func (l *EnvLoader) Bool(suffix string) (value, ok bool, err error) {
	s, ok := l.String(suffix)
	if !ok {
		return false, false, nil
	}
	v, err := ParseBool(s)
	if err != nil {
		return false, true, fmt.Errorf("%s: %w", l.Name(suffix), err)
	}
	return v, true, nil
}

// ParseBool parses true/yes/on/1 and false/no/off/0, ignoring case.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}
