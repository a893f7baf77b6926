package contract

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

// TestReadBounded covers the stdout cap applied to every git invocation.
func TestReadBounded(t *testing.T) {
	t.Run("under the limit returns the full stream", func(t *testing.T) {
		out, overflow, err := readBounded(strings.NewReader("abc"), 10)

		assert.NoError(t, err)
		assert.False(t, overflow)
		assert.Equal(t, []byte("abc"), out)
	})

	t.Run("exactly at the limit is not an overflow", func(t *testing.T) {
		out, overflow, err := readBounded(strings.NewReader("abcde"), 5)

		assert.NoError(t, err)
		assert.False(t, overflow)
		assert.Equal(t, []byte("abcde"), out)
	})

	t.Run("over the limit reports overflow and drops the data", func(t *testing.T) {
		out, overflow, err := readBounded(strings.NewReader("abcdef"), 5)

		assert.NoError(t, err)
		assert.True(t, overflow)
		assert.Nil(t, out)
	})

	t.Run("empty stream", func(t *testing.T) {
		out, overflow, err := readBounded(strings.NewReader(""), 5)

		assert.NoError(t, err)
		assert.False(t, overflow)
		assert.Empty(t, out)
	})

	t.Run("read error propagates", func(t *testing.T) {
		_, overflow, err := readBounded(iotest.ErrReader(errors.New("pipe closed")), 5)

		assert.False(t, overflow)
		assert.Error(t, err)
	})
}

func TestNonEmptyLines(t *testing.T) {
	lines := nonEmptyLines([]byte(" a \n\n b\n   \nc"))

	assert.Equal(t, []string{"a", "b", "c"}, lines)
}
