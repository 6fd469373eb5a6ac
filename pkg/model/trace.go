package model

import (
	"time"

	"github.com/objectflow/objectflow-go/pkg/log"
)

func (r *Registry) trace(e log.Event) {
	e.Timestamp = time.Now()
	e.RegistryID = r.id
	r.tracer.Log(e)
}

func (r *Registry) traceError(o *Object, context string, err error) {
	r.trace(log.Event{
		Category: log.CategoryError,
		Object:   o.logRef(),
		Error: &log.ErrorEventData{
			Message: err.Error(),
			Context: context,
		},
	})
}

func (o *Object) logRef() log.ObjectRef {
	return log.ObjectRef{Type: o.typeID, Instance: o.instanceID}
}

func (r *Resource) logRef() *log.ResourceRef {
	return &log.ResourceRef{Type: r.typeID, Instance: r.instanceID}
}

func valueData(v Value) *log.ValueData {
	d := &log.ValueData{Kind: v.Kind().String(), Text: v.String()}
	if raw, err := v.MarshalCBOR(); err == nil {
		d.Raw = raw
	}
	return d
}
