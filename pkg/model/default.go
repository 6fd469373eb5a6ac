package model

import (
	"fmt"

	"github.com/objectflow/objectflow-go/pkg/log"
)

// Default value resolution.
//
// When object state is synchronized, the value is copied from a default
// resource of the source to a default resource of the destination. The
// highest priority resource type present is chosen at each end:
//
//	Source (read)        Destination (write)
//	1. OutputValue       1. InputValue
//	2. CurrentValue      2. CurrentValue
//	3. InputValue        3. OutputValue
//
// An object with all three behaves as Input -> processing -> Output.
// An object with a single slot uses it for both directions.
var (
	readPriority  = [...]uint16{OutputValueType, CurrentValueType, InputValueType}
	writePriority = [...]uint16{InputValueType, CurrentValueType, OutputValueType}
)

// DefaultReadResource returns the resource ReadDefaultValue would use.
func (o *Object) DefaultReadResource() (*Resource, bool) {
	for _, t := range readPriority {
		if r, ok := o.Resource(t, defaultInstance); ok {
			return r, true
		}
	}
	return nil, false
}

// DefaultWriteResource returns the resource WriteDefaultValue would use.
func (o *Object) DefaultWriteResource() (*Resource, bool) {
	for _, t := range writePriority {
		if r, ok := o.Resource(t, defaultInstance); ok {
			return r, true
		}
	}
	return nil, false
}

// ReadDefaultValue returns the value of the highest priority of
// OutputValue, CurrentValue and InputValue present on the object.
func (o *Object) ReadDefaultValue() (Value, error) {
	r, ok := o.DefaultReadResource()
	if !ok {
		return Value{}, fmt.Errorf("%w: object %s", ErrNoDefaultResource, o)
	}
	return r.value, nil
}

// WriteDefaultValue stores v in the highest priority of InputValue,
// CurrentValue and OutputValue present on the object, then calls the
// behavior's OnDefaultValueUpdate hook.
func (o *Object) WriteDefaultValue(v Value) error {
	r, ok := o.DefaultWriteResource()
	if !ok {
		return fmt.Errorf("%w: object %s", ErrNoDefaultResource, o)
	}
	if err := r.set(v); err != nil {
		return err
	}

	o.registry.trace(log.Event{
		Category: log.CategoryDefault,
		Object:   o.logRef(),
		Resource: r.logRef(),
		Value:    valueData(v),
	})

	o.behavior.OnDefaultValueUpdate(o)
	return nil
}
