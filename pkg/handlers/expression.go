package handlers

import (
	"fmt"
	"math"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"github.com/objectflow/objectflow-go/pkg/model"
)

// Expression recomputes OutputValue whenever its default value changes,
// then pushes the result to its output links.
//
// The source text lives in the ExpressionSourceType string resource and may
// refer to the object's default slots as input, current and output. A
// missing slot is nil inside the expression. The compiled program is kept
// until the source text changes.
type Expression struct {
	model.DefaultBehavior

	source  string
	program *exprvm.Program
}

func (e *Expression) OnDefaultValueUpdate(o *model.Object) {
	if err := e.Evaluate(o); err != nil {
		warn(o, "OnDefaultValueUpdate", err)
		return
	}
	if err := o.PushToOutputLinks(); err != nil {
		warn(o, "OnDefaultValueUpdate", err)
	}
}

// Evaluate runs the expression and stores the result in OutputValue,
// converted to that resource's kind.
func (e *Expression) Evaluate(o *model.Object) error {
	out, ok := o.Resource(model.OutputValueType, 0)
	if !ok {
		return fmt.Errorf("expression %s: %w: output value", o, model.ErrNotFound)
	}

	program, err := e.load(o)
	if err != nil {
		return err
	}

	result, err := exprlang.Run(program, environment(o))
	if err != nil {
		return fmt.Errorf("expression %s: run %q: %w", o, e.source, err)
	}

	v, err := convert(out.Kind(), result)
	if err != nil {
		return fmt.Errorf("expression %s: %w", o, err)
	}
	return o.WriteValue(model.OutputValueType, 0, v)
}

func (e *Expression) load(o *model.Object) (*exprvm.Program, error) {
	v, err := o.ReadValue(ExpressionSourceType, 0)
	if err != nil {
		return nil, fmt.Errorf("expression %s: %w", o, err)
	}
	source, err := v.AsString()
	if err != nil {
		return nil, fmt.Errorf("expression %s: %w", o, err)
	}
	if source == "" {
		return nil, fmt.Errorf("expression %s: source must not be empty", o)
	}

	if e.program != nil && source == e.source {
		return e.program, nil
	}

	program, err := exprlang.Compile(source,
		exprlang.Env(map[string]any{}),
		exprlang.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("expression %s: compile %q: %w", o, source, err)
	}
	e.source = source
	e.program = program
	return program, nil
}

func environment(o *model.Object) map[string]any {
	env := map[string]any{
		"input":   nil,
		"current": nil,
		"output":  nil,
	}
	slots := map[string]uint16{
		"input":   model.InputValueType,
		"current": model.CurrentValueType,
		"output":  model.OutputValueType,
	}
	for name, typ := range slots {
		if v, err := o.ReadValue(typ, 0); err == nil {
			env[name] = v.Interface()
		}
	}
	return env
}

// convert maps an expression result onto a value of the given kind.
func convert(kind model.ValueKind, result any) (model.Value, error) {
	switch kind {
	case model.KindBool:
		if b, ok := result.(bool); ok {
			return model.Bool(b), nil
		}
	case model.KindInteger:
		switch n := result.(type) {
		case int:
			return model.Integer(int64(n)), nil
		case int64:
			return model.Integer(n), nil
		}
		if n, ok := toFloat(result); ok {
			if math.IsNaN(n) || n < math.MinInt64 || n >= math.MaxInt64 {
				return model.Value{}, fmt.Errorf("%w: %v out of range for %s", model.ErrValueKind, result, kind)
			}
			return model.Integer(int64(n)), nil
		}
	case model.KindFloat:
		if n, ok := toFloat(result); ok {
			return model.Float(n), nil
		}
	case model.KindTime:
		if n, ok := toFloat(result); ok {
			if math.IsNaN(n) || n < 0 || n > math.MaxUint32 {
				return model.Value{}, fmt.Errorf("%w: %v out of range for %s", model.ErrValueKind, result, kind)
			}
			return model.TimeValue(model.Time(uint32(n))), nil
		}
	case model.KindString:
		if s, ok := result.(string); ok {
			return model.String(s), nil
		}
		return model.String(fmt.Sprint(result)), nil
	}
	return model.Value{}, fmt.Errorf("%w: cannot store %T as %s", model.ErrValueKind, result, kind)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
