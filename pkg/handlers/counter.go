package handlers

import (
	"fmt"

	"github.com/objectflow/objectflow-go/pkg/model"
)

// Counter stands in for a live sensor. Each pull increments its integer
// CurrentValue and returns the new count.
type Counter struct {
	model.DefaultBehavior
}

func (c *Counter) OnInputSync(o *model.Object) (model.Value, error) {
	v, err := o.ReadValue(model.CurrentValueType, 0)
	if err != nil {
		return model.Value{}, fmt.Errorf("counter %s: %w", o, err)
	}
	n, err := v.AsInteger()
	if err != nil {
		return model.Value{}, fmt.Errorf("counter %s: %w", o, err)
	}

	next := model.Integer(n + 1)
	if err := o.WriteValue(model.CurrentValueType, 0, next); err != nil {
		return model.Value{}, err
	}
	return next, nil
}
