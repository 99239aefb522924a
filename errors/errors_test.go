package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestSentinelWrapping(t *testing.T) {
	err := Wrapf(ErrUnknownPhase, "move to %q", "Nirvana")

	assert.True(t, Is(err, ErrUnknownPhase))
	assert.False(t, Is(err, ErrUnknownEvent))
	assert.Contains(t, err.Error(), "Nirvana")
}

func TestIsConfigError(t *testing.T) {
	assert.True(t, IsConfigError(ErrUnknownPhase))
	assert.True(t, IsConfigError(Wrap(ErrUnknownEvent, "lookup")))
	assert.False(t, IsConfigError(ErrFolderExists))
	assert.False(t, IsConfigError(New("transient")))
	assert.False(t, IsConfigError(nil))
}
