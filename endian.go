package bytekit

import (
	"fmt"

	"github.com/joshuapare/bytekit/internal/buf"
)

// ByteOrder selects how multi-byte numeric values are assembled from
// the wire.
type ByteOrder int

const (
	// BigEndian reads the most significant byte first. This is the
	// default for a new Parser and the usual network byte order.
	BigEndian ByteOrder = iota
	// LittleEndian reads the least significant byte first.
	LittleEndian
)

// String implements the Stringer interface for ByteOrder.
func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	default:
		return fmt.Sprintf("ByteOrder(%d)", int(o))
	}
}

func (o ByteOrder) uint16(b []byte) uint16 {
	if o == LittleEndian {
		return buf.U16LE(b)
	}
	return buf.U16BE(b)
}

func (o ByteOrder) uint32(b []byte) uint32 {
	if o == LittleEndian {
		return buf.U32LE(b)
	}
	return buf.U32BE(b)
}

func (o ByteOrder) uint64(b []byte) uint64 {
	if o == LittleEndian {
		return buf.U64LE(b)
	}
	return buf.U64BE(b)
}
