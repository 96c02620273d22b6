package bytekit

import (
	"unicode/utf8"
	"unsafe"

	"golang.org/x/text/encoding/unicode"
)

// ParseBytes returns a view of the next n bytes and advances the cursor
// past them. The slice aliases the underlying buffer — no copy is made —
// so it is valid only as long as the buffer and observes any later
// mutation of it. Callers that retain the bytes must copy them.
func (p *Parser) ParseBytes(n int) ([]byte, error) {
	raw, err := p.view("parse bytes", n)
	if err != nil {
		return nil, err
	}
	p.cursor += n
	return raw, nil
}

// ParseStringUTF8 validates the next n bytes as UTF-8 and returns them
// as a string that aliases the underlying buffer — no copy is made.
// Protocols usually carry the byte length in a preceding integer field;
// decode that first and pass it here. n counts bytes, not runes.
//
// The bounds check runs before validation, so a short buffer reports
// ErrOutOfBounds without paying for a UTF-8 scan. Either failure leaves
// the cursor in place.
//
// The returned string shares memory with the buffer: it is valid only
// as long as the buffer and must not be retained past it. Callers that
// later mutate the buffer would break the string's immutability
// guarantee; clone the string first.
func (p *Parser) ParseStringUTF8(n int) (string, error) {
	raw, err := p.view("parse string", n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", &UTF8Error{Off: p.cursor, Len: n}
	}
	p.cursor += n
	if n == 0 {
		return "", nil
	}
	return unsafe.String(&raw[0], n), nil
}

// ParseStringUTF16 decodes the next n bytes as UTF-16 in the current
// byte order and returns the result as a string. n counts bytes and
// must be even. Unlike the UTF-8 variant this transcodes, so the result
// is an independent copy; unpaired surrogates decode leniently to
// U+FFFD rather than failing.
func (p *Parser) ParseStringUTF16(n int) (string, error) {
	raw, err := p.view("parse utf-16 string", n)
	if err != nil {
		return "", err
	}
	if n%2 != 0 {
		return "", &UTF16Error{Off: p.cursor, Len: n}
	}
	endian := unicode.BigEndian
	if p.order == LittleEndian {
		endian = unicode.LittleEndian
	}
	dec := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(raw)
	if err != nil {
		return "", &UTF16Error{Off: p.cursor, Len: n}
	}
	p.cursor += n
	return string(out), nil
}

// ParseRune decodes four bytes as a uint32 in the current byte order
// and interprets it as a Unicode scalar value. Surrogate halves and
// values above U+10FFFF fail with a RuneError.
func (p *Parser) ParseRune() (rune, error) {
	raw, err := p.view("parse rune", 4)
	if err != nil {
		return 0, err
	}
	v := p.order.uint32(raw)
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, &RuneError{Off: p.cursor, Value: v}
	}
	p.cursor += 4
	return r, nil
}
