package model

import "fmt"

// Resource is a single typed value slot owned by an Object.
// Resources have no lifecycle of their own; they live as long as their owner.
type Resource struct {
	typeID     uint16
	instanceID uint16
	kind       ValueKind
	value      Value
}

// newResource creates a resource holding the zero value of kind.
func newResource(typeID, instanceID uint16, kind ValueKind) *Resource {
	return &Resource{
		typeID:     typeID,
		instanceID: instanceID,
		kind:       kind,
		value:      ZeroValue(kind),
	}
}

// TypeID returns the resource type ID.
func (r *Resource) TypeID() uint16 {
	return r.typeID
}

// InstanceID returns the resource instance ID.
func (r *Resource) InstanceID() uint16 {
	return r.instanceID
}

// Kind returns the declared value kind.
func (r *Resource) Kind() ValueKind {
	return r.kind
}

// Value returns the stored value.
func (r *Resource) Value() Value {
	return r.value
}

// matches returns true if the resource has the given identity.
func (r *Resource) matches(typeID, instanceID uint16) bool {
	return r.typeID == typeID && r.instanceID == instanceID
}

// set stores v if it matches the declared kind.
// It does not invoke any hooks.
func (r *Resource) set(v Value) error {
	if v.Kind() != r.kind {
		return fmt.Errorf("%w: resource %d/%d is %s, got %s",
			ErrValueKind, r.typeID, r.instanceID, r.kind, v.Kind())
	}
	r.value = v
	return nil
}
