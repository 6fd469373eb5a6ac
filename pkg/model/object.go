package model

import (
	"fmt"

	"github.com/objectflow/objectflow-go/pkg/log"
)

// Object is an entity owning an ordered collection of Resources.
// Every object belongs to exactly one Registry, which it uses to find
// the objects its links point at.
type Object struct {
	typeID     uint16
	instanceID uint16
	handle     Handle

	// registry is the owning registry (not owned by the object).
	registry *Registry

	behavior  Behavior
	resources []*Resource
}

// TypeID returns the object type ID.
func (o *Object) TypeID() uint16 {
	return o.typeID
}

// InstanceID returns the object instance ID.
func (o *Object) InstanceID() uint16 {
	return o.instanceID
}

// Handle returns the object's position in its registry.
func (o *Object) Handle() Handle {
	return o.handle
}

// Ref returns a link value addressing this object.
func (o *Object) Ref() Link {
	return Link{Type: o.typeID, Instance: o.instanceID}
}

// Registry returns the owning registry.
func (o *Object) Registry() *Registry {
	return o.registry
}

// Behavior returns the behavior selected by the registry's factory.
func (o *Object) Behavior() Behavior {
	return o.behavior
}

// String returns the object identity as "type/instance".
func (o *Object) String() string {
	return o.Ref().String()
}

// NewResource appends a zero-valued resource. Duplicate identities are
// allowed; lookups return the earliest one.
func (o *Object) NewResource(typeID, instanceID uint16, kind ValueKind) *Resource {
	r := newResource(typeID, instanceID, kind)
	o.resources = append(o.resources, r)
	return r
}

// Resource returns the first resource with the given identity.
func (o *Object) Resource(typeID, instanceID uint16) (*Resource, bool) {
	for _, r := range o.resources {
		if r.matches(typeID, instanceID) {
			return r, true
		}
	}
	return nil, false
}

// HasResource returns true if the object has a resource with the given identity.
func (o *Object) HasResource(typeID, instanceID uint16) bool {
	_, ok := o.Resource(typeID, instanceID)
	return ok
}

// Resources returns all resources in creation order.
func (o *Object) Resources() []*Resource {
	result := make([]*Resource, len(o.resources))
	copy(result, o.resources)
	return result
}

// Lookup finds another object in the same registry.
func (o *Object) Lookup(typeID, instanceID uint16) (*Object, bool) {
	return o.registry.Object(typeID, instanceID)
}

// ReadValue returns the value of the first matching resource.
func (o *Object) ReadValue(typeID, instanceID uint16) (Value, error) {
	r, ok := o.Resource(typeID, instanceID)
	if !ok {
		return Value{}, fmt.Errorf("%w: resource %d/%d on object %s", ErrNotFound, typeID, instanceID, o)
	}
	return r.value, nil
}

// WriteValue stores v in the first matching resource and then calls the
// behavior's OnValueUpdate hook. The value must match the resource kind.
func (o *Object) WriteValue(typeID, instanceID uint16, v Value) error {
	r, ok := o.Resource(typeID, instanceID)
	if !ok {
		return fmt.Errorf("%w: resource %d/%d on object %s", ErrNotFound, typeID, instanceID, o)
	}
	if err := r.set(v); err != nil {
		return err
	}

	o.registry.trace(log.Event{
		Category: log.CategoryValue,
		Object:   o.logRef(),
		Resource: r.logRef(),
		Value:    valueData(v),
	})

	o.behavior.OnValueUpdate(o, typeID, instanceID, v)
	return nil
}
