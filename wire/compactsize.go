package wire

import "encoding/binary"

// CompactSize is Bitcoin's variable-width unsigned integer. The first
// byte selects the width: values up to 0xfc are the single byte itself,
// larger values follow a 0xfd/0xfe/0xff prefix as 2, 4 or 8 bytes
// little-endian.
type CompactSize uint64

// Bytes returns the canonical encoding. The shortest width that can
// represent the value is always chosen.
func (c CompactSize) Bytes() []byte {
	switch {
	case c <= 0xfc:
		return []byte{byte(c)}
	case c <= 0xffff:
		buf := make([]byte, 3)
		buf[0] = 0xfd
		binary.LittleEndian.PutUint16(buf[1:], uint16(c))
		return buf
	case c <= 0xffffffff:
		buf := make([]byte, 5)
		buf[0] = 0xfe
		binary.LittleEndian.PutUint32(buf[1:], uint32(c))
		return buf
	default:
		buf := make([]byte, 9)
		buf[0] = 0xff
		binary.LittleEndian.PutUint64(buf[1:], uint64(c))
		return buf
	}
}

// EncodedLen returns the width Bytes will use without encoding.
func (c CompactSize) EncodedLen() int {
	switch {
	case c <= 0xfc:
		return 1
	case c <= 0xffff:
		return 3
	case c <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// DecodeCompactSize reads a CompactSize from the front of buf and
// returns it together with the number of bytes consumed. Oversized
// encodings are accepted on input: 0xfd 0x05 0x00 decodes to 5 even
// though 5 fits in a single byte.
func DecodeCompactSize(buf []byte) (CompactSize, int, error) {
	if len(buf) == 0 {
		return 0, 0, ErrInsufficientBytes
	}
	switch buf[0] {
	case 0xfd:
		if len(buf) < 3 {
			return 0, 0, ErrInsufficientBytes
		}
		return CompactSize(binary.LittleEndian.Uint16(buf[1:3])), 3, nil
	case 0xfe:
		if len(buf) < 5 {
			return 0, 0, ErrInsufficientBytes
		}
		return CompactSize(binary.LittleEndian.Uint32(buf[1:5])), 5, nil
	case 0xff:
		if len(buf) < 9 {
			return 0, 0, ErrInsufficientBytes
		}
		return CompactSize(binary.LittleEndian.Uint64(buf[1:9])), 9, nil
	default:
		return CompactSize(buf[0]), 1, nil
	}
}
