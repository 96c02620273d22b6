package bytekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntegerWidths(t *testing.T) {
	data := []byte{
		0x12,
		0x12, 0x34,
		0x12, 0x34, 0x56, 0x78,
		0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0,
	}
	p := NewParser(data)

	u8, err := ParseInteger[uint8](p)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x12), u8)

	u16, err := ParseInteger[uint16](p)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), u16)

	u32, err := ParseInteger[uint32](p)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), u32)

	u64, err := ParseInteger[uint64](p)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x123456789ABCDEF0), u64)

	assert.True(t, p.AtEnd())
}

func TestParseIntegerSignExtension(t *testing.T) {
	p := NewParser([]byte{0xFF, 0xFF, 0xFE, 0x80})

	i16, err := ParseInteger[int16](p)
	require.NoError(t, err)
	assert.Equal(t, int16(-1), i16)

	i8, err := ParseInteger[int8](p)
	require.NoError(t, err)
	assert.Equal(t, int8(-2), i8)

	// The same byte decodes as 0x80 unsigned, not -128.
	u8, err := ParseInteger[uint8](p)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x80), u8)
}

func TestParseIntegerLittleEndian(t *testing.T) {
	p := NewParser([]byte{0x78, 0x56, 0x34, 0x12})
	p.SetOrder(LittleEndian)

	v, err := ParseInteger[int32](p)
	require.NoError(t, err)
	assert.Equal(t, int32(0x12345678), v)
}

func TestParseIntegerShortBuffer(t *testing.T) {
	p := NewParser([]byte{0x01, 0x02})

	_, err := ParseInteger[uint32](p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, 0, p.Cursor())
}
