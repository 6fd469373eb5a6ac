package log

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// ErrNoEncodedValue is returned by ValueData.Decode when the event was
// recorded without the value's encoding.
var ErrNoEncodedValue = errors.New("value has no encoded form")

// Event represents a flow event captured by a registry.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RegistryID identifies the registry that produced the event (UUID).
	RegistryID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Object is the object the operation ran on.
	Object ObjectRef `cbor:"4,keyasint"`

	// Resource is the resource touched, if any.
	Resource *ResourceRef `cbor:"5,keyasint,omitempty"`

	// Value is the value stored or transferred, if any.
	Value *ValueData `cbor:"6,keyasint,omitempty"`

	// Peer is the other end of a pull or push.
	Peer *ObjectRef `cbor:"7,keyasint,omitempty"`

	// Interval carries timer details for interval events.
	Interval *IntervalData `cbor:"8,keyasint,omitempty"`

	// Error carries failure details for error events.
	Error *ErrorEventData `cbor:"9,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryValue indicates a resource value write.
	CategoryValue Category = 0
	// CategoryDefault indicates a default value write.
	CategoryDefault Category = 1
	// CategoryPull indicates an input link pull.
	CategoryPull Category = 2
	// CategoryPush indicates an output link push.
	CategoryPush Category = 3
	// CategoryInterval indicates an interval activation.
	CategoryInterval Category = 4
	// CategoryError indicates a failed operation.
	CategoryError Category = 5
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryValue:
		return "VALUE"
	case CategoryDefault:
		return "DEFAULT"
	case CategoryPull:
		return "PULL"
	case CategoryPush:
		return "PUSH"
	case CategoryInterval:
		return "INTERVAL"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category name (case-insensitive).
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "value":
		return CategoryValue, nil
	case "default":
		return CategoryDefault, nil
	case "pull":
		return CategoryPull, nil
	case "push":
		return CategoryPush, nil
	case "interval":
		return CategoryInterval, nil
	case "error":
		return CategoryError, nil
	default:
		return 0, fmt.Errorf("unknown category %q (valid: value, default, pull, push, interval, error)", s)
	}
}

// ObjectRef identifies an object.
type ObjectRef struct {
	Type     uint16 `cbor:"1,keyasint"`
	Instance uint16 `cbor:"2,keyasint"`
}

// String returns the reference as "type/instance".
func (r ObjectRef) String() string {
	return fmt.Sprintf("%d/%d", r.Type, r.Instance)
}

// ResourceRef identifies a resource within an object.
type ResourceRef struct {
	Type     uint16 `cbor:"1,keyasint"`
	Instance uint16 `cbor:"2,keyasint"`
}

// String returns the reference as "type/instance".
func (r ResourceRef) String() string {
	return fmt.Sprintf("%d/%d", r.Type, r.Instance)
}

// ValueData captures a stored or transferred value.
type ValueData struct {
	// Kind is the value kind name.
	Kind string `cbor:"1,keyasint"`

	// Text is the formatted payload.
	Text string `cbor:"2,keyasint"`

	// Raw is the value's own CBOR encoding.
	Raw cbor.RawMessage `cbor:"3,keyasint,omitempty"`
}

// Decode unmarshals the encoded value into v, usually a *model.Value.
func (d *ValueData) Decode(v any) error {
	if len(d.Raw) == 0 {
		return ErrNoEncodedValue
	}
	return Unmarshal(d.Raw, v)
}

// IntervalData captures one interval evaluation.
type IntervalData struct {
	Now      uint32 `cbor:"1,keyasint"`
	Elapsed  uint32 `cbor:"2,keyasint"`
	Interval uint32 `cbor:"3,keyasint"`
}

// ErrorEventData captures a failed operation.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
