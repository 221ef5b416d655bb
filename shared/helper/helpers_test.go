package helper_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/underbar_go/shared/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTypedValueOf(t *testing.T) {
	v, err := helper.GetTypedValueOf[int](func() (any, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = helper.GetTypedValueOf[string](func() (any, error) { return 42, nil })
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)

	boom := errors.New("boom")
	_, err = helper.GetTypedValueOf[int](func() (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}

func TestMustGetTypedValue_Panics(t *testing.T) {
	assert.Panics(t, func() {
		helper.MustGetTypedValue[string](func() (any, error) { return 1, nil })
	})
	assert.Equal(t, "ok", helper.MustGetTypedValue[string](func() (any, error) { return "ok", nil }))
}

func TestMapTyped(t *testing.T) {
	got, err := helper.MapTyped[string]([]any{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	_, err = helper.MapTyped[string]([]any{"a", 2})
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)
	assert.Contains(t, err.Error(), "index 1")
}
