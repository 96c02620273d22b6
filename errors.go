package bytekit

import (
	"errors"
	"fmt"
)

// Broad error categories. Concrete errors returned by Parser methods
// unwrap to one of these, so callers can branch with errors.Is without
// caring which operation failed.
var (
	// ErrOutOfBounds indicates a read or cursor move that would leave
	// the buffer.
	ErrOutOfBounds = errors.New("bytekit: out of bounds")
	// ErrInvalidUTF8 indicates bytes requested as text that do not form
	// well-formed UTF-8, or a rune value outside the Unicode range.
	ErrInvalidUTF8 = errors.New("bytekit: invalid utf-8")
	// ErrInvalidUTF16 indicates a UTF-16 byte range with an odd length.
	ErrInvalidUTF16 = errors.New("bytekit: invalid utf-16")
)

// BoundsError reports a decode that needed more bytes than remain
// between the cursor and the end of the buffer.
type BoundsError struct {
	Op   string // operation that failed, e.g. "parse uint32"
	Off  int    // cursor position when the read was attempted
	Need int    // bytes the operation required
	Have int    // bytes that were actually available
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("bytekit: %s: need %d bytes at offset %d, have %d",
		e.Op, e.Need, e.Off, e.Have)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// CursorError reports a cursor move whose target lies outside the
// buffer.
type CursorError struct {
	Op     string // "set cursor" or "advance cursor"
	Target int    // requested absolute position (saturated on overflow)
	Cursor int    // position at the time of the call
	Len    int    // buffer length
}

func (e *CursorError) Error() string {
	return fmt.Sprintf("bytekit: %s: target %d outside [0, %d] (cursor at %d)",
		e.Op, e.Target, e.Len, e.Cursor)
}

func (e *CursorError) Unwrap() error { return ErrOutOfBounds }

// UTF8Error reports a byte range that failed UTF-8 validation.
type UTF8Error struct {
	Off int // cursor position of the offending range
	Len int // length of the range in bytes
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("bytekit: %d bytes at offset %d are not valid utf-8",
		e.Len, e.Off)
}

func (e *UTF8Error) Unwrap() error { return ErrInvalidUTF8 }

// UTF16Error reports a UTF-16 decode asked for an odd number of bytes.
type UTF16Error struct {
	Off int
	Len int
}

func (e *UTF16Error) Error() string {
	return fmt.Sprintf("bytekit: utf-16 range of %d bytes at offset %d is not a whole number of code units",
		e.Len, e.Off)
}

func (e *UTF16Error) Unwrap() error { return ErrInvalidUTF16 }

// RuneError reports a 32-bit value that is not a valid Unicode scalar
// value (a surrogate, or above U+10FFFF).
type RuneError struct {
	Off   int    // cursor position of the 4-byte value
	Value uint32 // the decoded value
}

func (e *RuneError) Error() string {
	return fmt.Sprintf("bytekit: value 0x%X at offset %d is not a valid rune",
		e.Value, e.Off)
}

func (e *RuneError) Unwrap() error { return ErrInvalidUTF8 }
