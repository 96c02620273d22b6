package bytekit

import "fmt"

// Uint128 is an unsigned 128-bit integer split into 64-bit halves. Go
// has no native 128-bit type, so wide protocol fields (hashes, UUIDs,
// counters) are surfaced this way.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// String returns the value in hexadecimal.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return fmt.Sprintf("0x%x", u.Lo)
	}
	return fmt.Sprintf("0x%x%016x", u.Hi, u.Lo)
}

// Int128 is a signed two's-complement 128-bit integer. The sign lives
// in the high half.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Sign returns -1, 0, or 1 as i is negative, zero, or positive.
func (i Int128) Sign() int {
	switch {
	case i.Hi < 0:
		return -1
	case i.Hi == 0 && i.Lo == 0:
		return 0
	default:
		return 1
	}
}

// String returns the raw two's-complement representation in
// hexadecimal.
func (i Int128) String() string {
	return Uint128{Hi: uint64(i.Hi), Lo: i.Lo}.String()
}

// ParseUint128 decodes sixteen bytes as an unsigned 128-bit integer in
// the current byte order.
func (p *Parser) ParseUint128() (Uint128, error) {
	raw, err := p.view("parse uint128", 16)
	if err != nil {
		return Uint128{}, err
	}
	p.cursor += 16
	return p.order.uint128(raw), nil
}

// ParseInt128 decodes sixteen bytes as a signed two's-complement
// 128-bit integer in the current byte order.
func (p *Parser) ParseInt128() (Int128, error) {
	raw, err := p.view("parse int128", 16)
	if err != nil {
		return Int128{}, err
	}
	p.cursor += 16
	u := p.order.uint128(raw)
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}, nil
}

func (o ByteOrder) uint128(b []byte) Uint128 {
	if o == LittleEndian {
		return Uint128{Lo: o.uint64(b[:8]), Hi: o.uint64(b[8:])}
	}
	return Uint128{Hi: o.uint64(b[:8]), Lo: o.uint64(b[8:])}
}
