package helpers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	var err error
	assert.True(t, IsNil(err))

	var traceableErr Error = NilError
	assert.True(t, IsNil(traceableErr))

	assert.True(t, IsNil(Wrap(nil)))
	assert.False(t, IsNil(Errorf("boom")))
}

var errSentinel = errors.New("sentinel")

func TestErrorsIs(t *testing.T) {
	err := Wrap(errSentinel)
	assert.True(t, errors.Is(err, errSentinel))

	wrapped := Errorf("outer: %w", err)
	assert.True(t, errors.Is(wrapped, errSentinel))

	joined := Join(Errorf("unrelated"), wrapped)
	assert.Equal(t, 2, joined.NumErrors())
	assert.True(t, errors.Is(joined, errSentinel))

	assert.False(t, errors.Is(Errorf("unrelated"), errSentinel))
}

func TestErrorRef(t *testing.T) {
	ref := ErrorRef{}
	assert.True(t, ref.IsNil())

	ref.Add(NilError)
	assert.True(t, ref.IsNil())

	ref.Add(Errorf("a"))
	ref.Add(Errorf("b"))
	assert.True(t, ref.HasError())
	assert.Equal(t, 2, ref.NumErrors())
}
