package inspect

import (
	"strings"

	"github.com/objectflow/objectflow-go/pkg/handlers"
	"github.com/objectflow/objectflow-go/pkg/model"
)

// resourceNames maps reserved resource types to display names.
var resourceNames = map[uint16]string{
	model.InputLinkType:           "InputLink",
	model.OutputLinkType:          "OutputLink",
	model.InputValueType:          "InputValue",
	model.CurrentValueType:        "CurrentValue",
	model.OutputValueType:         "OutputValue",
	model.CurrentTimeType:         "CurrentTime",
	model.IntervalTimeType:        "IntervalTime",
	model.LastActivationTimeType:  "LastActivationTime",
	handlers.ExpressionSourceType: "Expression",
}

// objectNames maps built-in object types to variant names.
var objectNames = map[string]uint16{}

func init() {
	for _, t := range handlers.NewFactory().Types() {
		if name, ok := handlers.TypeName(t); ok {
			objectNames[strings.ToLower(name)] = t
		}
	}
}

// ResourceTypeName returns the display name of a resource type, or "" for
// types without one.
func ResourceTypeName(typeID uint16) string {
	return resourceNames[typeID]
}

// ResolveResourceName resolves a resource name to its type (case-insensitive).
func ResolveResourceName(name string) (uint16, bool) {
	for id, n := range resourceNames {
		if strings.EqualFold(n, name) {
			return id, true
		}
	}
	return 0, false
}

// ObjectTypeName returns the variant name of an object type, or "".
func ObjectTypeName(typeID uint16) string {
	name, _ := handlers.TypeName(typeID)
	return name
}

// ResolveObjectName resolves a variant name to its object type (case-insensitive).
func ResolveObjectName(name string) (uint16, bool) {
	id, ok := objectNames[strings.ToLower(name)]
	return id, ok
}
