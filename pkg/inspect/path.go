// Package inspect provides registry inspection and value manipulation utilities.
//
// The inspect package offers a unified interface for:
//   - Parsing path expressions (e.g., "43000/0/InputValue")
//   - Resolving names to numeric IDs
//   - Reading and writing resource values
//   - Formatting output for display
package inspect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Path errors.
var (
	ErrEmptyPath     = errors.New("empty path")
	ErrInvalidPath   = errors.New("invalid path format")
	ErrInvalidNumber = errors.New("invalid numeric value in path")
)

// Path represents a parsed inspection path.
// Format: objectType/objectInstance[/resourceType[/resourceInstance]]
type Path struct {
	ObjectType     uint16
	ObjectInstance uint16

	ResourceType     uint16
	ResourceInstance uint16

	// IsPartial indicates the path names an object but no resource.
	IsPartial bool

	// Raw stores the original input string.
	Raw string
}

// ParsePath parses a path string into a Path struct.
//
// Supported formats:
//   - "43000/0" - an object (partial)
//   - "43000/0/27002" - a resource, instance 0
//   - "43000/0/27002/1" - a resource
//   - "Relay/0/InputValue" - names in place of numbers
//
// Numeric values can be decimal or hex (0x prefix).
func ParsePath(input string) (*Path, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyPath
	}

	if strings.HasPrefix(input, "/") || strings.HasSuffix(input, "/") || strings.Contains(input, "//") {
		return nil, ErrInvalidPath
	}

	parts := strings.Split(input, "/")
	if len(parts) < 2 || len(parts) > 4 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, input)
	}

	p := &Path{Raw: input}

	var err error
	if p.ObjectType, err = parseObjectType(parts[0]); err != nil {
		return nil, fmt.Errorf("object type: %w", err)
	}
	if p.ObjectInstance, err = parseUint16(parts[1]); err != nil {
		return nil, fmt.Errorf("object instance: %w: %s", ErrInvalidNumber, parts[1])
	}

	if len(parts) == 2 {
		p.IsPartial = true
		return p, nil
	}

	if p.ResourceType, err = parseResourceType(parts[2]); err != nil {
		return nil, fmt.Errorf("resource type: %w", err)
	}
	if len(parts) == 4 {
		if p.ResourceInstance, err = parseUint16(parts[3]); err != nil {
			return nil, fmt.Errorf("resource instance: %w: %s", ErrInvalidNumber, parts[3])
		}
	}

	return p, nil
}

// String returns the path in numeric form.
func (p *Path) String() string {
	if p.IsPartial {
		return fmt.Sprintf("%d/%d", p.ObjectType, p.ObjectInstance)
	}
	return fmt.Sprintf("%d/%d/%d/%d", p.ObjectType, p.ObjectInstance, p.ResourceType, p.ResourceInstance)
}

func parseObjectType(s string) (uint16, error) {
	if id, err := parseUint16(s); err == nil {
		return id, nil
	}
	if id, ok := ResolveObjectName(s); ok {
		return id, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
}

func parseResourceType(s string) (uint16, error) {
	if id, err := parseUint16(s); err == nil {
		return id, nil
	}
	if id, ok := ResolveResourceName(s); ok {
		return id, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
}

// parseUint16 parses a uint16 from decimal or hex string.
func parseUint16(s string) (uint16, error) {
	var v uint64
	var err error

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err = strconv.ParseUint(s[2:], 16, 16)
	} else {
		v, err = strconv.ParseUint(s, 10, 16)
	}
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
