package inspect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/objectflow/objectflow-go/pkg/model"
)

// Inspector errors. The not-found errors also match model.ErrNotFound.
var (
	ErrObjectNotFound   = errors.New("object not found")
	ErrResourceNotFound = errors.New("resource not found")
	ErrPartialPath      = errors.New("path does not name a resource")
)

// Inspector provides inspection and mutation capabilities for a registry.
// It does not lock; callers serialize access like any other registry user.
type Inspector struct {
	registry *model.Registry
}

// NewInspector creates a new Inspector for the given registry.
func NewInspector(reg *model.Registry) *Inspector {
	return &Inspector{registry: reg}
}

// Registry returns the underlying registry.
func (i *Inspector) Registry() *model.Registry {
	return i.registry
}

// Tree represents the complete registry structure for display.
type Tree struct {
	RegistryID string
	Objects    []ObjectInfo
}

// ObjectInfo represents object information for display.
type ObjectInfo struct {
	Type      uint16
	Instance  uint16
	Handle    model.Handle
	Resources []ResourceInfo
}

// ResourceInfo represents resource information for display.
type ResourceInfo struct {
	Type     uint16
	Instance uint16
	Kind     model.ValueKind
	Value    model.Value
}

// Walk calls fn for every resource of every object, objects in creation
// order and resources in insertion order. Objects without resources are
// not visited.
func (i *Inspector) Walk(fn func(o *model.Object, r *model.Resource)) {
	for _, o := range i.registry.Objects() {
		for _, r := range o.Resources() {
			fn(o, r)
		}
	}
}

// Tree returns a snapshot of the whole registry.
func (i *Inspector) Tree() *Tree {
	tree := &Tree{RegistryID: i.registry.ID()}
	for _, o := range i.registry.Objects() {
		tree.Objects = append(tree.Objects, objectInfo(o))
	}
	return tree
}

// InspectObject returns information about the first object matching path.
func (i *Inspector) InspectObject(path *Path) (*ObjectInfo, error) {
	o, err := i.object(path)
	if err != nil {
		return nil, err
	}
	info := objectInfo(o)
	return &info, nil
}

func objectInfo(o *model.Object) ObjectInfo {
	info := ObjectInfo{
		Type:     o.TypeID(),
		Instance: o.InstanceID(),
		Handle:   o.Handle(),
	}
	for _, r := range o.Resources() {
		info.Resources = append(info.Resources, ResourceInfo{
			Type:     r.TypeID(),
			Instance: r.InstanceID(),
			Kind:     r.Kind(),
			Value:    r.Value(),
		})
	}
	return info
}

func (i *Inspector) object(path *Path) (*model.Object, error) {
	o, ok := i.registry.Object(path.ObjectType, path.ObjectInstance)
	if !ok {
		return nil, fmt.Errorf("%w: %w: object %d/%d", ErrObjectNotFound, model.ErrNotFound, path.ObjectType, path.ObjectInstance)
	}
	return o, nil
}

func (i *Inspector) resourceObject(path *Path) (*model.Object, error) {
	if path.IsPartial {
		return nil, fmt.Errorf("%w: %s", ErrPartialPath, path.Raw)
	}
	return i.object(path)
}

func resourceError(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrResourceNotFound, err)
	}
	return err
}

// ReadValue reads a resource value using a path.
func (i *Inspector) ReadValue(path *Path) (model.Value, error) {
	o, err := i.resourceObject(path)
	if err != nil {
		return model.Value{}, err
	}
	v, err := o.ReadValue(path.ResourceType, path.ResourceInstance)
	if err != nil {
		return model.Value{}, resourceError(err)
	}
	return v, nil
}

// WriteValue parses text as a value of the resource's kind and writes it
// through the object, so the object's hooks run.
func (i *Inspector) WriteValue(path *Path, text string) (model.Value, error) {
	o, err := i.resourceObject(path)
	if err != nil {
		return model.Value{}, err
	}
	r, ok := o.Resource(path.ResourceType, path.ResourceInstance)
	if !ok {
		return model.Value{}, resourceError(fmt.Errorf("%w: resource %d/%d on object %s",
			model.ErrNotFound, path.ResourceType, path.ResourceInstance, o))
	}
	v, err := ParseValue(r.Kind(), text)
	if err != nil {
		return model.Value{}, err
	}
	if err := o.WriteValue(path.ResourceType, path.ResourceInstance, v); err != nil {
		return model.Value{}, resourceError(err)
	}
	return v, nil
}

// Pull runs an input link pull on the object named by path.
func (i *Inspector) Pull(path *Path) error {
	o, err := i.object(path)
	if err != nil {
		return err
	}
	return o.PullFromInputLink()
}

// Push runs an output link push on the object named by path.
func (i *Inspector) Push(path *Path) error {
	o, err := i.object(path)
	if err != nil {
		return err
	}
	return o.PushToOutputLinks()
}

// ParseValue parses text as a value of the given kind. Links are written
// as "type/instance" and may use object names.
func ParseValue(kind model.ValueKind, text string) (model.Value, error) {
	text = strings.TrimSpace(text)
	switch kind {
	case model.KindBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return model.Value{}, err
		}
		return model.Bool(b), nil
	case model.KindInteger:
		n, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return model.Value{}, err
		}
		return model.Integer(n), nil
	case model.KindFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return model.Value{}, err
		}
		return model.Float(f), nil
	case model.KindString:
		if s, err := strconv.Unquote(text); err == nil {
			return model.String(s), nil
		}
		return model.String(text), nil
	case model.KindTime:
		n, err := strconv.ParseUint(strings.TrimPrefix(text, "t"), 0, 32)
		if err != nil {
			return model.Value{}, err
		}
		return model.TimeValue(model.Time(n)), nil
	case model.KindLink:
		p, err := ParsePath(strings.TrimPrefix(text, "->"))
		if err != nil {
			return model.Value{}, err
		}
		if !p.IsPartial {
			return model.Value{}, fmt.Errorf("%w: link must be type/instance", ErrInvalidPath)
		}
		return model.LinkValue(p.ObjectType, p.ObjectInstance), nil
	}
	return model.Value{}, fmt.Errorf("%w: %s", model.ErrValueKind, kind)
}
