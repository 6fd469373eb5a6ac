package handlers

import "github.com/objectflow/objectflow-go/pkg/model"

// Ticker samples its input link and forwards the result on every interval.
type Ticker struct {
	model.DefaultBehavior
}

func (t *Ticker) OnInterval(o *model.Object) {
	if err := o.PullFromInputLink(); err != nil {
		warn(o, "OnInterval", err)
		return
	}
	if err := o.PushToOutputLinks(); err != nil {
		warn(o, "OnInterval", err)
	}
}
