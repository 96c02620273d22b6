package bytekit

import "math"

// ParseUint8 decodes one byte as an unsigned 8-bit integer.
func (p *Parser) ParseUint8() (uint8, error) {
	raw, err := p.view("parse uint8", 1)
	if err != nil {
		return 0, err
	}
	p.cursor++
	return raw[0], nil
}

// ParseUint16 decodes two bytes as an unsigned 16-bit integer in the
// current byte order.
func (p *Parser) ParseUint16() (uint16, error) {
	raw, err := p.view("parse uint16", 2)
	if err != nil {
		return 0, err
	}
	p.cursor += 2
	return p.order.uint16(raw), nil
}

// ParseUint32 decodes four bytes as an unsigned 32-bit integer in the
// current byte order.
func (p *Parser) ParseUint32() (uint32, error) {
	raw, err := p.view("parse uint32", 4)
	if err != nil {
		return 0, err
	}
	p.cursor += 4
	return p.order.uint32(raw), nil
}

// ParseUint64 decodes eight bytes as an unsigned 64-bit integer in the
// current byte order.
func (p *Parser) ParseUint64() (uint64, error) {
	raw, err := p.view("parse uint64", 8)
	if err != nil {
		return 0, err
	}
	p.cursor += 8
	return p.order.uint64(raw), nil
}

// ParseInt8 decodes one byte as a signed 8-bit integer.
func (p *Parser) ParseInt8() (int8, error) {
	raw, err := p.view("parse int8", 1)
	if err != nil {
		return 0, err
	}
	p.cursor++
	return int8(raw[0]), nil
}

// ParseInt16 decodes two bytes as a signed two's-complement 16-bit
// integer in the current byte order.
func (p *Parser) ParseInt16() (int16, error) {
	raw, err := p.view("parse int16", 2)
	if err != nil {
		return 0, err
	}
	p.cursor += 2
	return int16(p.order.uint16(raw)), nil
}

// ParseInt32 decodes four bytes as a signed two's-complement 32-bit
// integer in the current byte order.
func (p *Parser) ParseInt32() (int32, error) {
	raw, err := p.view("parse int32", 4)
	if err != nil {
		return 0, err
	}
	p.cursor += 4
	return int32(p.order.uint32(raw)), nil
}

// ParseInt64 decodes eight bytes as a signed two's-complement 64-bit
// integer in the current byte order.
func (p *Parser) ParseInt64() (int64, error) {
	raw, err := p.view("parse int64", 8)
	if err != nil {
		return 0, err
	}
	p.cursor += 8
	return int64(p.order.uint64(raw)), nil
}

// ParseSize decodes the portable "size" integer. It always occupies
// eight bytes on the wire regardless of the host platform, so buffers
// exchange cleanly between 32- and 64-bit producers and consumers.
func (p *Parser) ParseSize() (uint64, error) {
	raw, err := p.view("parse size", 8)
	if err != nil {
		return 0, err
	}
	p.cursor += 8
	return p.order.uint64(raw), nil
}

// ParseFloat32 decodes four bytes as an IEEE-754 single-precision
// float. The bit pattern is reconstructed exactly, so NaN payloads,
// infinities, and signed zeros survive the trip.
func (p *Parser) ParseFloat32() (float32, error) {
	raw, err := p.view("parse float32", 4)
	if err != nil {
		return 0, err
	}
	p.cursor += 4
	return math.Float32frombits(p.order.uint32(raw)), nil
}

// ParseFloat64 decodes eight bytes as an IEEE-754 double-precision
// float, bit pattern preserved exactly.
func (p *Parser) ParseFloat64() (float64, error) {
	raw, err := p.view("parse float64", 8)
	if err != nil {
		return 0, err
	}
	p.cursor += 8
	return math.Float64frombits(p.order.uint64(raw)), nil
}

// ParseBool decodes one byte as a boolean. Zero is false and any
// non-zero byte is true; an unexpected value is never an error.
func (p *Parser) ParseBool() (bool, error) {
	raw, err := p.view("parse bool", 1)
	if err != nil {
		return false, err
	}
	p.cursor++
	return raw[0] != 0, nil
}
