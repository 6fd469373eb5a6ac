package handlers

import (
	"slices"

	"github.com/objectflow/objectflow-go/pkg/model"
)

// Object types of the built-in variants.
const (
	RelayType      uint16 = 43000
	CounterType    uint16 = 43001
	TickerType     uint16 = 43002
	ExpressionType uint16 = 43003
)

// ExpressionSourceType is the string resource holding an Expression
// object's source text.
const ExpressionSourceType uint16 = 27100

// Constructor creates the behavior for one object instance.
type Constructor func(instanceID uint16) model.Behavior

// Factory maps object types to behavior constructors.
// Types without a constructor get model.DefaultBehavior.
type Factory struct {
	constructors map[uint16]Constructor
}

// NewFactory creates a factory with the built-in variants registered.
func NewFactory() *Factory {
	f := &Factory{constructors: make(map[uint16]Constructor)}
	f.Register(RelayType, func(uint16) model.Behavior { return &Relay{} })
	f.Register(CounterType, func(uint16) model.Behavior { return &Counter{} })
	f.Register(TickerType, func(uint16) model.Behavior { return &Ticker{} })
	f.Register(ExpressionType, func(uint16) model.Behavior { return &Expression{} })
	return f
}

// Register sets the constructor for an object type, replacing any
// existing one.
func (f *Factory) Register(typeID uint16, c Constructor) {
	f.constructors[typeID] = c
}

// NewBehavior implements model.Factory.
func (f *Factory) NewBehavior(typeID, instanceID uint16) model.Behavior {
	c, ok := f.constructors[typeID]
	if !ok {
		return nil
	}
	return c(instanceID)
}

// Types returns the registered object types in ascending order.
func (f *Factory) Types() []uint16 {
	types := make([]uint16, 0, len(f.constructors))
	for t := range f.constructors {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// TypeName returns the variant name for a built-in object type.
func TypeName(typeID uint16) (string, bool) {
	switch typeID {
	case RelayType:
		return "Relay", true
	case CounterType:
		return "Counter", true
	case TickerType:
		return "Ticker", true
	case ExpressionType:
		return "Expression", true
	}
	return "", false
}

var _ model.Factory = (*Factory)(nil)

func warn(o *model.Object, hook string, err error) {
	o.Registry().Logger().Warn("hook failed",
		"object", o.String(),
		"hook", hook,
		"error", err)
}
