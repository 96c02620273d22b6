package bytekit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsErrorReportsRequestVersusAvailable(t *testing.T) {
	p := NewParser([]byte{1, 2, 3})
	require.NoError(t, p.SetCursor(2))

	_, err := p.ParseUint64()
	require.Error(t, err)

	var be *BoundsError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "parse uint64", be.Op)
	assert.Equal(t, 2, be.Off)
	assert.Equal(t, 8, be.Need)
	assert.Equal(t, 1, be.Have)
	assert.Equal(t, "bytekit: parse uint64: need 8 bytes at offset 2, have 1", err.Error())
}

func TestCursorErrorReportsTarget(t *testing.T) {
	p := NewParser([]byte{1, 2, 3})

	err := p.SetCursor(7)
	require.Error(t, err)

	var ce *CursorError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "set cursor", ce.Op)
	assert.Equal(t, 7, ce.Target)
	assert.Equal(t, 0, ce.Cursor)
	assert.Equal(t, 3, ce.Len)
	assert.Equal(t, "bytekit: set cursor: target 7 outside [0, 3] (cursor at 0)", err.Error())

	err = p.Advance(-1)
	require.Error(t, err)
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "advance cursor", ce.Op)
	assert.Equal(t, -1, ce.Target)
}

func TestErrorCategories(t *testing.T) {
	p := NewParser([]byte{0xFF, 0xFE})

	_, utf8Err := p.ParseStringUTF8(2)
	boundsErr := p.SetCursor(9)
	_, shortErr := p.ParseUint64()

	assert.ErrorIs(t, utf8Err, ErrInvalidUTF8)
	assert.NotErrorIs(t, utf8Err, ErrOutOfBounds)
	assert.ErrorIs(t, boundsErr, ErrOutOfBounds)
	assert.ErrorIs(t, shortErr, ErrOutOfBounds)
	assert.NotErrorIs(t, shortErr, ErrInvalidUTF8)
}
