// Package buf contains bounds and endian-safe decoding helpers shared
// by the parser.
package buf

import "encoding/binary"

// The callers here always bounds-check before reading, so the length
// guards below are a backstop: a short buffer reads as 0 instead of
// panicking.

// U16BE reads a big-endian uint16 from b.
func U16BE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// U16LE reads a little-endian uint16 from b.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32BE reads a big-endian uint32 from b.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// U32LE reads a little-endian uint32 from b.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U64BE reads a big-endian uint64 from b.
func U64BE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

// U64LE reads a little-endian uint64 from b.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}
