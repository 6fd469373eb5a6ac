package handlers

import "github.com/objectflow/objectflow-go/pkg/model"

// Relay forwards its default value to every output link whenever the
// default value changes. Chains of relays propagate a push end to end.
type Relay struct {
	model.DefaultBehavior
}

func (r *Relay) OnDefaultValueUpdate(o *model.Object) {
	if err := o.PushToOutputLinks(); err != nil {
		warn(o, "OnDefaultValueUpdate", err)
	}
}
