package output

import (
	"fmt"
	"sort"
)

// Settings carries the parameters a sink constructor may need.
type Settings struct {
	FilePath    string
	FileMaxSize int64
}

// Constructor creates a new Output from settings.
type Constructor func(s Settings) (Output, error)

var registry = map[string]Constructor{}

// Register adds a sink constructor under the given name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Get returns the sink constructor for the given name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown output sink: %s", name)
	}
	return ctor, nil
}

// Sinks returns the names of all registered sinks, sorted.
func Sinks() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
