package inspect

import (
	"testing"

	"github.com/objectflow/objectflow-go/pkg/handlers"
	"github.com/objectflow/objectflow-go/pkg/model"
)

func TestResourceNames(t *testing.T) {
	tests := []struct {
		id   uint16
		name string
	}{
		{model.InputLinkType, "InputLink"},
		{model.OutputLinkType, "OutputLink"},
		{model.InputValueType, "InputValue"},
		{model.CurrentValueType, "CurrentValue"},
		{model.OutputValueType, "OutputValue"},
		{model.CurrentTimeType, "CurrentTime"},
		{model.IntervalTimeType, "IntervalTime"},
		{model.LastActivationTimeType, "LastActivationTime"},
		{handlers.ExpressionSourceType, "Expression"},
	}

	for _, tt := range tests {
		if got := ResourceTypeName(tt.id); got != tt.name {
			t.Errorf("ResourceTypeName(%d) = %q, want %q", tt.id, got, tt.name)
		}
		id, ok := ResolveResourceName(tt.name)
		if !ok || id != tt.id {
			t.Errorf("ResolveResourceName(%q) = %d, %v", tt.name, id, ok)
		}
	}

	if id, ok := ResolveResourceName("inputvalue"); !ok || id != model.InputValueType {
		t.Error("resource names should resolve case-insensitively")
	}
	if _, ok := ResolveResourceName("nope"); ok {
		t.Error("unknown name should not resolve")
	}
	if ResourceTypeName(1) != "" {
		t.Error("unnamed type should return empty name")
	}
}

func TestObjectNames(t *testing.T) {
	for _, typ := range handlers.NewFactory().Types() {
		name := ObjectTypeName(typ)
		if name == "" {
			t.Errorf("ObjectTypeName(%d) is empty", typ)
			continue
		}
		id, ok := ResolveObjectName(name)
		if !ok || id != typ {
			t.Errorf("ResolveObjectName(%q) = %d, %v", name, id, ok)
		}
	}
	if id, ok := ResolveObjectName("EXPRESSION"); !ok || id != handlers.ExpressionType {
		t.Error("object names should resolve case-insensitively")
	}
}
