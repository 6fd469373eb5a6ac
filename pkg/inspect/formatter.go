package inspect

import (
	"fmt"
	"strings"

	"github.com/objectflow/objectflow-go/pkg/model"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowKinds includes the value kind after each value
	ShowKinds bool

	// ShowIDs includes numeric IDs alongside names
	ShowIDs bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowKinds:   true,
		ShowIDs:     false,
		IndentWidth: 2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	indent := strings.Repeat(" ", depth*width)
	return indent + content
}

// FormatValue formats a value for display.
func (f *Formatter) FormatValue(v model.Value) string {
	switch v.Kind() {
	case model.KindFloat:
		n, _ := v.AsFloat()
		return fmt.Sprintf("%.2f", n)
	case model.KindLink:
		l, _ := v.AsLink()
		if name := ObjectTypeName(l.Type); name != "" {
			return fmt.Sprintf("-> %s (%s)", l, name)
		}
		return "-> " + l.String()
	default:
		return v.String()
	}
}

// FormatTree formats a registry tree for display.
func (f *Formatter) FormatTree(tree *Tree) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Registry: %s\n", tree.RegistryID)
	fmt.Fprintf(&sb, "Objects: %d\n", len(tree.Objects))
	sb.WriteString("---\n")

	for _, o := range tree.Objects {
		sb.WriteString(f.formatObject(&o, 0))
	}
	return sb.String()
}

// FormatObject formats one object and its resources.
func (f *Formatter) FormatObject(o *ObjectInfo) string {
	return f.formatObject(o, 0)
}

func (f *Formatter) formatObject(o *ObjectInfo, depth int) string {
	var sb strings.Builder

	header := fmt.Sprintf("Object %d/%d", o.Type, o.Instance)
	if name := ObjectTypeName(o.Type); name != "" {
		header += " " + name
	}
	if f.ShowIDs {
		header += fmt.Sprintf(" (handle %d)", o.Handle)
	}
	sb.WriteString(f.Indent(depth, header) + "\n")

	for _, r := range o.Resources {
		sb.WriteString(f.Indent(depth+1, f.FormatResource(&r)) + "\n")
	}
	return sb.String()
}

// FormatResource formats one resource as "name = value".
func (f *Formatter) FormatResource(r *ResourceInfo) string {
	name := ResourceTypeName(r.Type)
	if name == "" {
		name = fmt.Sprintf("res_%d", r.Type)
	}
	if r.Instance != 0 {
		name += fmt.Sprintf("[%d]", r.Instance)
	}

	s := fmt.Sprintf("%s = %s", name, f.FormatValue(r.Value))
	if f.ShowIDs {
		s = fmt.Sprintf("[%d/%d] %s", r.Type, r.Instance, s)
	}
	if f.ShowKinds {
		s += fmt.Sprintf(" (%s)", r.Kind)
	}
	return s
}
