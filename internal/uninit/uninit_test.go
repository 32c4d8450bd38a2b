package uninit

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferWrite(t *testing.T) {
	dst := []byte{0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA}
	b := Wrap(dst)

	assert.Equal(t, 6, b.Cap())
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Filled())

	n, err := b.Write([]byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{1, 2}, b.Filled())
	assert.Equal(t, 4, b.Remaining())

	n, err = b.Write([]byte{3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.True(t, b.Full())
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, dst)
}

func TestBufferShortWriteIsAtomic(t *testing.T) {
	dst := []byte{9, 9, 9}
	b := Wrap(dst)

	_, err := b.Write([]byte{1})
	require.NoError(t, err)

	n, err := b.Write([]byte{2, 3, 4})
	assert.ErrorIs(t, err, io.ErrShortBuffer)
	assert.Equal(t, 0, n)
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, []byte{1, 9, 9}, dst)
}

func TestFilledHidesUnwrittenSuffix(t *testing.T) {
	dst := make([]byte, 8)
	b := Wrap(dst)
	_, _ = b.Write([]byte{7, 7, 7})

	filled := b.Filled()
	assert.Len(t, filled, 3)
	assert.Equal(t, 3, cap(filled))
}

func TestZeroBuffer(t *testing.T) {
	var b Buffer
	assert.True(t, b.Full())

	n, err := b.Write(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = b.Write([]byte{1})
	assert.ErrorIs(t, err, io.ErrShortBuffer)
}
