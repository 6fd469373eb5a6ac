package instance

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Table is the YAML form of a flow graph.
type Table struct {
	// Version is the table format version ("major.minor"). Empty means
	// the current version.
	Version string `yaml:"version,omitempty"`

	// Name is an optional label for the graph.
	Name string `yaml:"name,omitempty"`

	// Objects are instantiated in document order.
	Objects []ObjectSpec `yaml:"objects"`
}

// ObjectSpec describes one object and its resources.
type ObjectSpec struct {
	Type      uint16         `yaml:"type"`
	Instance  uint16         `yaml:"instance"`
	Resources []ResourceSpec `yaml:"resources"`
}

// ResourceSpec describes one resource. Value is decoded according to Kind;
// a missing value leaves the kind's zero value.
type ResourceSpec struct {
	Type     uint16    `yaml:"type"`
	Instance uint16    `yaml:"instance"`
	Kind     string    `yaml:"kind"`
	Value    yaml.Node `yaml:"value"`
}

// LoadError represents an error loading a table.
type LoadError struct {
	File    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.File != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s: %v", e.File, e.Message, e.Cause)
		}
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
