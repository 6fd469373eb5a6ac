package instance

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/objectflow/objectflow-go/pkg/model"
	"github.com/objectflow/objectflow-go/pkg/version"
)

// Parse parses a table from YAML bytes.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	if _, err := version.Check(t.Version); err != nil {
		return nil, &LoadError{
			Message: "unsupported table",
			Cause:   err,
		}
	}

	if len(t.Objects) == 0 {
		return nil, &LoadError{
			Message: "table must have at least one object",
		}
	}

	// Decode values now so errors carry the table, not the later build.
	if _, err := t.Records(); err != nil {
		return nil, &LoadError{
			Message: "invalid resource",
			Cause:   err,
		}
	}

	return &t, nil
}

// Load loads a table from a file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	t, err := Parse(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{
			File:    path,
			Message: err.Error(),
		}
	}

	return t, nil
}

// Records flattens the table into instantiation records in document order.
func (t *Table) Records() ([]Record, error) {
	var records []Record
	for _, o := range t.Objects {
		for _, r := range o.Resources {
			kind, err := model.ParseValueKind(r.Kind)
			if err != nil {
				return nil, fmt.Errorf("object %d/%d resource %d/%d: %w", o.Type, o.Instance, r.Type, r.Instance, err)
			}
			v, err := decodeValue(kind, &r.Value)
			if err != nil {
				return nil, fmt.Errorf("object %d/%d resource %d/%d: %w", o.Type, o.Instance, r.Type, r.Instance, err)
			}
			records = append(records, Record{
				ObjectType:       o.Type,
				ObjectInstance:   o.Instance,
				ResourceType:     r.Type,
				ResourceInstance: r.Instance,
				Kind:             kind,
				Value:            v,
			})
		}
	}
	return records, nil
}

// Build instantiates the table into reg.
func (t *Table) Build(reg *model.Registry) error {
	records, err := t.Records()
	if err != nil {
		return err
	}
	return Build(reg, records)
}

func decodeValue(kind model.ValueKind, node *yaml.Node) (model.Value, error) {
	if node.Kind == 0 {
		return model.ZeroValue(kind), nil
	}

	switch kind {
	case model.KindBool:
		var b bool
		if err := node.Decode(&b); err != nil {
			return model.Value{}, err
		}
		return model.Bool(b), nil
	case model.KindInteger:
		var i int64
		if err := node.Decode(&i); err != nil {
			return model.Value{}, err
		}
		return model.Integer(i), nil
	case model.KindFloat:
		var f float64
		if err := node.Decode(&f); err != nil {
			return model.Value{}, err
		}
		return model.Float(f), nil
	case model.KindString:
		var s string
		if err := node.Decode(&s); err != nil {
			return model.Value{}, err
		}
		return model.String(s), nil
	case model.KindTime:
		var t uint32
		if err := node.Decode(&t); err != nil {
			return model.Value{}, err
		}
		return model.TimeValue(model.Time(t)), nil
	case model.KindLink:
		return decodeLink(node)
	}
	return model.Value{}, fmt.Errorf("%w: %s", model.ErrValueKind, kind)
}

// decodeLink accepts {type: T, instance: I} or "T/I".
func decodeLink(node *yaml.Node) (model.Value, error) {
	if node.Kind == yaml.ScalarNode {
		typ, inst, ok := strings.Cut(node.Value, "/")
		if !ok {
			return model.Value{}, fmt.Errorf("line %d: link %q must be type/instance", node.Line, node.Value)
		}
		t, err := strconv.ParseUint(typ, 10, 16)
		if err != nil {
			return model.Value{}, fmt.Errorf("line %d: link type: %w", node.Line, err)
		}
		i, err := strconv.ParseUint(inst, 10, 16)
		if err != nil {
			return model.Value{}, fmt.Errorf("line %d: link instance: %w", node.Line, err)
		}
		return model.LinkValue(uint16(t), uint16(i)), nil
	}

	var l struct {
		Type     uint16 `yaml:"type"`
		Instance uint16 `yaml:"instance"`
	}
	if err := node.Decode(&l); err != nil {
		return model.Value{}, err
	}
	return model.LinkValue(l.Type, l.Instance), nil
}
