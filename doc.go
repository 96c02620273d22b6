// Package bytekit implements a minimal zero-copy decoder for bespoke
// binary protocols.
//
// # Overview
//
// The package is built around a single type, Parser, which wraps a
// borrowed byte buffer together with a read cursor and a byte-order
// setting. Callers that know the layout of their wire format issue a
// linear sequence of Parse* calls; each call decodes one fixed-width
// value at the cursor, advances the cursor past it, and returns the
// value or an error if the buffer cannot satisfy the read.
//
// The Parser knows nothing about any particular protocol. Field order,
// widths, and byte order are entirely the caller's contract with
// whatever produced the buffer.
//
// # Cursor
//
// The cursor is the only mutable state. It always sits in [0, Len()]
// and every way of moving it (SetCursor, Advance, Reset, or an implicit
// advance from a successful parse) enforces that range. A failed call
// never moves the cursor, so a parse that returns an error can be
// retried from the same position or skipped with an explicit move.
//
// # Byte order
//
// Multi-byte numeric values are assembled according to the Parser's
// current ByteOrder. The default is BigEndian, the usual network
// convention. SetOrder may be called at any point between parses; some
// bespoke formats mix byte orders within a single message, and the
// switch affects only subsequent calls.
//
// # Zero-copy views and lifetime
//
// ParseBytes and ParseStringUTF8 return views that alias the original
// buffer rather than copies. They are valid only for as long as the
// buffer itself, and they observe any later mutation of it. Callers
// that need to retain a value past the buffer's lifetime, or that go
// on to mutate the buffer, must copy eagerly. The Parser itself never
// writes to the buffer.
//
// # Errors
//
// Failures are returned, never panicked, and carry what was requested
// versus what was available. Match broad categories with errors.Is
// against ErrOutOfBounds and ErrInvalidUTF8, or inspect the concrete
// *BoundsError, *CursorError, and *UTF8Error values with errors.As.
//
// # Concurrency
//
// A Parser is plain state and is not safe for concurrent use. The
// buffer, however, is never written, so any number of Parsers may read
// the same buffer from different goroutines; give each consumer its
// own Parser rather than sharing one.
package bytekit
