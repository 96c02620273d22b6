package bytekit

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ParseInteger decodes the next unsafe.Sizeof(T) bytes as an integer of
// type T in p's current byte order, sign-extending when T is signed. It
// is a generic counterpart to the fixed-width Parse* methods for
// callers that dispatch on a type parameter, e.g. a table of field
// readers for a schema known at compile time.
//
// For int, uint, and uintptr the byte width follows the host platform;
// fixed-width protocol fields should use the sized types or ParseSize
// instead.
func ParseInteger[T constraints.Integer](p *Parser) (T, error) {
	var zero T
	width := int(unsafe.Sizeof(zero))
	raw, err := p.view("parse integer", width)
	if err != nil {
		return zero, err
	}

	var u uint64
	switch width {
	case 1:
		u = uint64(raw[0])
	case 2:
		u = uint64(p.order.uint16(raw))
	case 4:
		u = uint64(p.order.uint32(raw))
	default:
		u = p.order.uint64(raw)
	}
	p.cursor += width

	if ^zero < zero { // T is signed
		shift := uint(64 - 8*width)
		return T(int64(u<<shift) >> shift), nil
	}
	return T(u), nil
}
