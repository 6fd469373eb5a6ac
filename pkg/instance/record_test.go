package instance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/objectflow/objectflow-go/pkg/instance"
	"github.com/objectflow/objectflow-go/pkg/model"
	"github.com/objectflow/objectflow-go/pkg/model/mocks"
)

func TestBuildCreatesObjectsAndResources(t *testing.T) {
	reg := model.NewRegistry()
	records := []instance.Record{
		{ObjectType: 9999, ObjectInstance: 1, ResourceType: 1111, ResourceInstance: 1, Kind: model.KindInteger, Value: model.Integer(100)},
		{ObjectType: 9999, ObjectInstance: 1, ResourceType: 2222, ResourceInstance: 2, Kind: model.KindFloat, Value: model.Float(101.1)},
		{ObjectType: 9090, ObjectInstance: 2, ResourceType: 27003, Kind: model.KindString, Value: model.String("x")},
	}

	require.NoError(t, instance.Build(reg, records))

	require.Equal(t, 2, reg.Len())
	obj, ok := reg.Object(9999, 1)
	require.True(t, ok)
	assert.Len(t, obj.Resources(), 2)

	v, err := obj.ReadValue(2222, 2)
	require.NoError(t, err)
	assert.Equal(t, model.Float(101.1), v)

	other, ok := reg.Object(9090, 2)
	require.True(t, ok)
	v, err = other.ReadDefaultValue()
	require.NoError(t, err)
	assert.Equal(t, model.String("x"), v)
}

func TestBuildTwiceDuplicatesResources(t *testing.T) {
	reg := model.NewRegistry()
	records := []instance.Record{
		{ObjectType: 1, ResourceType: 27003, Kind: model.KindInteger, Value: model.Integer(1)},
	}

	require.NoError(t, instance.Build(reg, records))
	records[0].Value = model.Integer(2)
	require.NoError(t, instance.Build(reg, records))

	assert.Equal(t, 1, reg.Len())
	obj, _ := reg.Object(1, 0)
	res := obj.Resources()
	require.Len(t, res, 2)

	// The second write lands on the first matching resource.
	assert.Equal(t, model.Integer(2), res[0].Value())
	assert.Equal(t, model.Integer(0), res[1].Value())
}

func TestBuildKindMismatch(t *testing.T) {
	reg := model.NewRegistry()
	err := instance.Build(reg, []instance.Record{
		{ObjectType: 1, ResourceType: 5, Kind: model.KindInteger, Value: model.String("no")},
	})
	assert.ErrorIs(t, err, model.ErrValueKind)
}

func TestBuildFiresValueHook(t *testing.T) {
	b := mocks.NewMockBehavior(t)
	reg := model.NewRegistry(model.WithFactory(model.FactoryFunc(func(uint16, uint16) model.Behavior { return b })))

	b.EXPECT().OnValueUpdate(mock.Anything, uint16(27004), uint16(0), model.Integer(7)).Once()

	require.NoError(t, instance.Build(reg, []instance.Record{
		{ObjectType: 1, ResourceType: 27004, Kind: model.KindInteger, Value: model.Integer(7)},
	}))
}

func TestBuildOmittedValue(t *testing.T) {
	reg := model.NewRegistry()
	records := []instance.Record{
		{ObjectType: 1, ResourceType: 10, Kind: model.KindBool},
		{ObjectType: 1, ResourceType: 11, Kind: model.KindInteger},
		{ObjectType: 1, ResourceType: 12, Kind: model.KindFloat},
		{ObjectType: 1, ResourceType: 13, Kind: model.KindString},
		{ObjectType: 1, ResourceType: 14, Kind: model.KindTime},
		{ObjectType: 1, ResourceType: 15, Kind: model.KindLink},
	}

	require.NoError(t, instance.Build(reg, records))

	obj, ok := reg.Object(1, 0)
	require.True(t, ok)
	for _, rec := range records {
		v, err := obj.ReadValue(rec.ResourceType, 0)
		require.NoError(t, err, rec.Kind.String())
		assert.Equal(t, model.ZeroValue(rec.Kind), v, rec.Kind.String())
	}
}
