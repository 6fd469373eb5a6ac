package model

// Behavior is the set of hooks through which application object variants
// customize an Object. The registry's Factory picks a Behavior per object type.
type Behavior interface {
	// OnValueUpdate is called after WriteValue stores a value.
	OnValueUpdate(o *Object, typeID, instanceID uint16, v Value)

	// OnDefaultValueUpdate is called after WriteDefaultValue stores a value,
	// whether it came from an input pull or an output push.
	OnDefaultValueUpdate(o *Object)

	// OnInterval is called when the interval evaluator fires.
	OnInterval(o *Object)

	// OnInputSync returns the value another object pulls from o.
	OnInputSync(o *Object) (Value, error)
}

// DefaultBehavior is the behavior of a plain Object.
// Variants embed it and override the hooks they need.
type DefaultBehavior struct{}

// OnValueUpdate does nothing.
func (DefaultBehavior) OnValueUpdate(*Object, uint16, uint16, Value) {}

// OnDefaultValueUpdate does nothing.
func (DefaultBehavior) OnDefaultValueUpdate(*Object) {}

// OnInterval does nothing.
func (DefaultBehavior) OnInterval(*Object) {}

// OnInputSync returns the object's default value.
func (DefaultBehavior) OnInputSync(o *Object) (Value, error) {
	return o.ReadDefaultValue()
}

// Compile-time interface satisfaction check.
var _ Behavior = DefaultBehavior{}

// Factory selects the behavior for a new object.
type Factory interface {
	// NewBehavior returns the behavior for an object of the given type.
	// A nil result selects DefaultBehavior.
	NewBehavior(typeID, instanceID uint16) Behavior
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(typeID, instanceID uint16) Behavior

// NewBehavior calls f.
func (f FactoryFunc) NewBehavior(typeID, instanceID uint16) Behavior {
	return f(typeID, instanceID)
}

// defaultFactory creates plain objects only.
var defaultFactory = FactoryFunc(func(uint16, uint16) Behavior { return DefaultBehavior{} })
