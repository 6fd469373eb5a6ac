package instance

import (
	"fmt"

	"github.com/objectflow/objectflow-go/pkg/model"
)

// Record describes one resource to instantiate. A zero Value stands for
// the zero value of Kind, so records only need Value for non-zero
// initial state.
type Record struct {
	ObjectType       uint16
	ObjectInstance   uint16
	ResourceType     uint16
	ResourceInstance uint16
	Kind             model.ValueKind
	Value            model.Value
}

// Build applies records to reg in order. The object for a record is the
// first existing object with the record's identity, or a new one. Every
// record creates a new resource, so applying the same records twice
// duplicates resources. Initial values are written through WriteValue and
// reach the object's OnValueUpdate hook.
func Build(reg *model.Registry, records []Record) error {
	for i, rec := range records {
		obj, ok := reg.Object(rec.ObjectType, rec.ObjectInstance)
		if !ok {
			obj = reg.NewObject(rec.ObjectType, rec.ObjectInstance)
		}

		v := rec.Value
		if v == (model.Value{}) {
			v = model.ZeroValue(rec.Kind)
		}

		obj.NewResource(rec.ResourceType, rec.ResourceInstance, rec.Kind)
		if err := obj.WriteValue(rec.ResourceType, rec.ResourceInstance, v); err != nil {
			return fmt.Errorf("record %d (%d/%d/%d/%d): %w", i,
				rec.ObjectType, rec.ObjectInstance, rec.ResourceType, rec.ResourceInstance, err)
		}
	}
	return nil
}
