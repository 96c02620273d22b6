package bytekit

import (
	"math"

	"github.com/joshuapare/bytekit/internal/buf"
)

// Parser wraps a borrowed byte buffer with a sequential decoding
// cursor. The zero value is a parser over an empty buffer; NewParser is
// the usual entry point.
//
// The buffer is aliased, not copied, and is never written. The cursor
// starts at 0, advances past each successfully decoded value, and is
// left untouched by any call that returns an error.
type Parser struct {
	buf    []byte
	cursor int
	order  ByteOrder
}

// NewParser returns a Parser over b with the cursor at 0 and the byte
// order set to BigEndian. A nil or empty buffer is valid; every read
// from it will simply fail when attempted.
func NewParser(b []byte) *Parser {
	return &Parser{buf: b, order: BigEndian}
}

// Len returns the length of the underlying buffer.
func (p *Parser) Len() int { return len(p.buf) }

// IsEmpty reports whether the underlying buffer has zero length.
func (p *Parser) IsEmpty() bool { return len(p.buf) == 0 }

// Cursor returns the 0-based position of the next byte that would be
// decoded.
func (p *Parser) Cursor() int { return p.cursor }

// Remaining returns how many bytes are left between the cursor and the
// end of the buffer. It is never negative.
func (p *Parser) Remaining() int { return len(p.buf) - p.cursor }

// AtStart reports whether the cursor sits at the beginning of the
// buffer, i.e. nothing has been decoded yet.
func (p *Parser) AtStart() bool { return p.cursor == 0 }

// AtEnd reports whether the cursor sits past the last byte, i.e. the
// whole buffer has been consumed.
func (p *Parser) AtEnd() bool { return p.cursor == len(p.buf) }

// Order returns the ByteOrder currently used for multi-byte parses.
func (p *Parser) Order() ByteOrder { return p.order }

// SetOrder changes the ByteOrder used by subsequent multi-byte parses.
// Values decoded before the switch are unaffected.
func (p *Parser) SetOrder(o ByteOrder) { p.order = o }

// Reset moves the cursor back to the start of the buffer so the same
// bytes can be decoded again. It cannot fail.
func (p *Parser) Reset() { p.cursor = 0 }

// SetCursor moves the cursor to the absolute position pos. The position
// may be anywhere in [0, Len()]; Len() itself is legal and leaves
// nothing remaining. On error the cursor keeps its previous position.
func (p *Parser) SetCursor(pos int) error {
	if pos < 0 || pos > len(p.buf) {
		return &CursorError{Op: "set cursor", Target: pos, Cursor: p.cursor, Len: len(p.buf)}
	}
	p.cursor = pos
	return nil
}

// Advance moves the cursor by delta bytes, forward for positive deltas
// and backward for negative ones. The resulting position must stay in
// [0, Len()]; otherwise the cursor is left where it was and an error is
// returned.
func (p *Parser) Advance(delta int) error {
	target, ok := buf.AddOverflowSafe(p.cursor, delta)
	if !ok {
		// Only reachable with a delta near the int limits; saturate so
		// the error still reports the direction of the overshoot.
		if delta > 0 {
			target = math.MaxInt
		} else {
			target = math.MinInt
		}
	}
	if !ok || target < 0 || target > len(p.buf) {
		return &CursorError{Op: "advance cursor", Target: target, Cursor: p.cursor, Len: len(p.buf)}
	}
	p.cursor = target
	return nil
}

// Peek returns the byte at the cursor without advancing. Useful for
// protocols that dispatch on a tag byte.
func (p *Parser) Peek() (byte, error) {
	raw, err := p.view("peek", 1)
	if err != nil {
		return 0, err
	}
	return raw[0], nil
}

// view returns the n bytes at [cursor, cursor+n) without advancing.
// Every decode goes through here, so the cursor invariant and the
// bounds-check-first ordering are enforced in one place.
func (p *Parser) view(op string, n int) ([]byte, error) {
	raw, ok := buf.Slice(p.buf, p.cursor, n)
	if !ok {
		return nil, &BoundsError{Op: op, Off: p.cursor, Need: n, Have: p.Remaining()}
	}
	return raw, nil
}
