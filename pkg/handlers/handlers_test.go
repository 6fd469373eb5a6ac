package handlers_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/objectflow/objectflow-go/pkg/handlers"
	"github.com/objectflow/objectflow-go/pkg/instance"
	"github.com/objectflow/objectflow-go/pkg/model"
)

const chainYAML = `
objects:
  - type: 43001
    instance: 0
    resources:
      - {type: 27003, kind: integer}
  - type: 43002
    instance: 0
    resources:
      - {type: 27000, kind: link, value: 43001/0}
      - {type: 27001, kind: link, value: 43000/0}
      - {type: 27003, kind: integer}
      - {type: 27005, kind: time}
      - {type: 27006, kind: time, value: 100}
      - {type: 27007, kind: time}
  - type: 43000
    instance: 0
    resources:
      - {type: 27002, kind: integer}
      - {type: 27001, kind: link, value: 43003/0}
  - type: 43003
    instance: 0
    resources:
      - {type: 27002, kind: integer}
      - {type: 27100, kind: string, value: "input * 2"}
      - {type: 27004, kind: integer}
`

func buildChain(t *testing.T, opts ...model.Option) *model.Registry {
	t.Helper()
	table, err := instance.Parse([]byte(chainYAML))
	require.NoError(t, err)

	reg := model.NewRegistry(append([]model.Option{model.WithFactory(handlers.NewFactory())}, opts...)...)
	require.NoError(t, table.Build(reg))
	return reg
}

func readInt(t *testing.T, reg *model.Registry, objType, resType uint16) int64 {
	t.Helper()
	o, ok := reg.Object(objType, 0)
	require.True(t, ok)
	v, err := o.ReadValue(resType, 0)
	require.NoError(t, err)
	n, err := v.AsInteger()
	require.NoError(t, err)
	return n
}

func TestFactoryVariants(t *testing.T) {
	f := handlers.NewFactory()

	assert.IsType(t, &handlers.Relay{}, f.NewBehavior(handlers.RelayType, 0))
	assert.IsType(t, &handlers.Counter{}, f.NewBehavior(handlers.CounterType, 0))
	assert.IsType(t, &handlers.Ticker{}, f.NewBehavior(handlers.TickerType, 0))
	assert.IsType(t, &handlers.Expression{}, f.NewBehavior(handlers.ExpressionType, 0))
	assert.Nil(t, f.NewBehavior(9999, 0))
	assert.Equal(t, []uint16{43000, 43001, 43002, 43003}, f.Types())

	// Each object gets its own behavior.
	assert.NotSame(t, f.NewBehavior(handlers.ExpressionType, 0), f.NewBehavior(handlers.ExpressionType, 1))
}

func TestFactoryRegister(t *testing.T) {
	f := handlers.NewFactory()
	var got uint16
	f.Register(50000, func(instanceID uint16) model.Behavior {
		got = instanceID
		return &handlers.Relay{}
	})

	reg := model.NewRegistry(model.WithFactory(f))
	o := reg.NewObject(50000, 7)
	assert.Equal(t, uint16(7), got)
	assert.IsType(t, &handlers.Relay{}, o.Behavior())

	plain := reg.NewObject(1, 0)
	assert.Equal(t, model.DefaultBehavior{}, plain.Behavior())
}

func TestTypeName(t *testing.T) {
	name, ok := handlers.TypeName(handlers.TickerType)
	assert.True(t, ok)
	assert.Equal(t, "Ticker", name)

	_, ok = handlers.TypeName(1)
	assert.False(t, ok)
}

func TestChainOnInterval(t *testing.T) {
	reg := buildChain(t)

	fired, err := reg.AdvanceTime(100)
	require.NoError(t, err)
	assert.Equal(t, 1, fired)

	assert.Equal(t, int64(1), readInt(t, reg, handlers.CounterType, model.CurrentValueType))
	assert.Equal(t, int64(1), readInt(t, reg, handlers.TickerType, model.CurrentValueType))
	assert.Equal(t, int64(1), readInt(t, reg, handlers.RelayType, model.InputValueType))
	assert.Equal(t, int64(2), readInt(t, reg, handlers.ExpressionType, model.OutputValueType))

	fired, err = reg.AdvanceTime(150)
	require.NoError(t, err)
	assert.Equal(t, 0, fired)

	fired, err = reg.AdvanceTime(200)
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
	assert.Equal(t, int64(2), readInt(t, reg, handlers.CounterType, model.CurrentValueType))
	assert.Equal(t, int64(4), readInt(t, reg, handlers.ExpressionType, model.OutputValueType))
}

func TestRelayPushOnDefaultUpdate(t *testing.T) {
	reg := buildChain(t)
	relay, _ := reg.Object(handlers.RelayType, 0)

	require.NoError(t, relay.WriteDefaultValue(model.Integer(21)))
	assert.Equal(t, int64(42), readInt(t, reg, handlers.ExpressionType, model.OutputValueType))
}

func TestCounterPull(t *testing.T) {
	reg := model.NewRegistry(model.WithFactory(handlers.NewFactory()))
	counter := reg.NewObject(handlers.CounterType, 0)
	counter.NewResource(model.CurrentValueType, 0, model.KindInteger)

	sink := reg.NewObject(1, 0)
	sink.NewResource(model.InputValueType, 0, model.KindInteger)
	sink.NewResource(model.InputLinkType, 0, model.KindLink)
	require.NoError(t, sink.WriteValue(model.InputLinkType, 0, model.LinkValue(handlers.CounterType, 0)))

	for want := int64(1); want <= 3; want++ {
		require.NoError(t, sink.PullFromInputLink())
		v, _ := sink.ReadValue(model.InputValueType, 0)
		assert.Equal(t, model.Integer(want), v)
	}
}

func TestCounterWithoutCurrentValue(t *testing.T) {
	reg := model.NewRegistry(model.WithFactory(handlers.NewFactory()))
	counter := reg.NewObject(handlers.CounterType, 0)

	_, err := counter.Behavior().OnInputSync(counter)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestExpressionKinds(t *testing.T) {
	tests := []struct {
		name   string
		source string
		input  model.Value
		kind   model.ValueKind
		want   model.Value
	}{
		{"IntegerArithmetic", "input + 1", model.Integer(4), model.KindInteger, model.Integer(5)},
		{"FloatResult", "input / 2", model.Integer(5), model.KindFloat, model.Float(2.5)},
		{"Comparison", "input > 10", model.Integer(11), model.KindBool, model.Bool(true)},
		{"StringFormat", `"v=" + string(input)`, model.Integer(3), model.KindString, model.String("v=3")},
		{"TruncateToInteger", "input * 1.5", model.Float(3), model.KindInteger, model.Integer(4)},
		{"MissingSlotIsNil", "current == nil", model.Integer(0), model.KindBool, model.Bool(true)},
		{"TimeResult", "input + 5", model.Integer(40), model.KindTime, model.TimeValue(45)},
		{"TimeUpperBound", "input", model.Integer(4294967295), model.KindTime, model.TimeValue(4294967295)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := model.NewRegistry(model.WithFactory(handlers.NewFactory()))
			o := reg.NewObject(handlers.ExpressionType, 0)
			o.NewResource(model.InputValueType, 0, tt.input.Kind())
			o.NewResource(handlers.ExpressionSourceType, 0, model.KindString)
			o.NewResource(model.OutputValueType, 0, tt.kind)
			require.NoError(t, o.WriteValue(handlers.ExpressionSourceType, 0, model.String(tt.source)))

			require.NoError(t, o.WriteDefaultValue(tt.input))

			v, err := o.ReadValue(model.OutputValueType, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestExpressionRecompilesOnChange(t *testing.T) {
	reg := model.NewRegistry(model.WithFactory(handlers.NewFactory()))
	o := reg.NewObject(handlers.ExpressionType, 0)
	o.NewResource(model.InputValueType, 0, model.KindInteger)
	o.NewResource(handlers.ExpressionSourceType, 0, model.KindString)
	o.NewResource(model.OutputValueType, 0, model.KindInteger)

	require.NoError(t, o.WriteValue(handlers.ExpressionSourceType, 0, model.String("input + 1")))
	require.NoError(t, o.WriteDefaultValue(model.Integer(1)))
	v, _ := o.ReadValue(model.OutputValueType, 0)
	assert.Equal(t, model.Integer(2), v)

	require.NoError(t, o.WriteValue(handlers.ExpressionSourceType, 0, model.String("input * 10")))
	require.NoError(t, o.WriteDefaultValue(model.Integer(1)))
	v, _ = o.ReadValue(model.OutputValueType, 0)
	assert.Equal(t, model.Integer(10), v)
}

func TestExpressionErrorsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	reg := model.NewRegistry(model.WithFactory(handlers.NewFactory()), model.WithLogger(logger))

	o := reg.NewObject(handlers.ExpressionType, 0)
	o.NewResource(model.InputValueType, 0, model.KindInteger)
	o.NewResource(handlers.ExpressionSourceType, 0, model.KindString)
	o.NewResource(model.OutputValueType, 0, model.KindInteger)
	require.NoError(t, o.WriteValue(handlers.ExpressionSourceType, 0, model.String("input +")))

	require.NoError(t, o.WriteDefaultValue(model.Integer(1)))

	out := buf.String()
	assert.Contains(t, out, "hook failed")
	assert.Contains(t, out, "object=43003/0")
	v, _ := o.ReadValue(model.OutputValueType, 0)
	assert.Equal(t, model.Integer(0), v)
}

func TestExpressionRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		source string
		input  model.Value
		kind   model.ValueKind
	}{
		{"HugeInteger", "input * 1e300", model.Float(1), model.KindInteger},
		{"NaNInteger", "input / input", model.Float(0), model.KindInteger},
		{"NegativeTime", "input - 2", model.Integer(1), model.KindTime},
		{"TimeOverflow", "input * 2", model.Integer(4294967295), model.KindTime},
		{"NaNTime", "input / input", model.Float(0), model.KindTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
			reg := model.NewRegistry(model.WithFactory(handlers.NewFactory()), model.WithLogger(logger))

			o := reg.NewObject(handlers.ExpressionType, 0)
			o.NewResource(model.InputValueType, 0, tt.input.Kind())
			o.NewResource(handlers.ExpressionSourceType, 0, model.KindString)
			o.NewResource(model.OutputValueType, 0, tt.kind)
			require.NoError(t, o.WriteValue(handlers.ExpressionSourceType, 0, model.String(tt.source)))

			require.NoError(t, o.WriteDefaultValue(tt.input))

			assert.Contains(t, buf.String(), "out of range")
			v, err := o.ReadValue(model.OutputValueType, 0)
			require.NoError(t, err)
			assert.Equal(t, model.ZeroValue(tt.kind), v)
		})
	}
}

func TestTickerMissingSourceLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	reg := model.NewRegistry(model.WithFactory(handlers.NewFactory()), model.WithLogger(logger))

	ticker := reg.NewObject(handlers.TickerType, 0)
	for _, typ := range []uint16{model.CurrentTimeType, model.IntervalTimeType, model.LastActivationTimeType} {
		ticker.NewResource(typ, 0, model.KindTime)
	}
	ticker.NewResource(model.CurrentValueType, 0, model.KindInteger)
	ticker.NewResource(model.InputLinkType, 0, model.KindLink)
	require.NoError(t, ticker.WriteValue(model.InputLinkType, 0, model.LinkValue(1, 1)))

	fired, err := reg.AdvanceTime(0)
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
	assert.Contains(t, buf.String(), "link target missing")
}
