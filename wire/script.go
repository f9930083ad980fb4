package wire

import (
	"encoding/hex"
	"encoding/json"
)

// Script is an opaque byte payload carried length-prefixed on the wire.
// The codec transports it verbatim and performs no interpretation of its
// contents.
type Script []byte

// Bytes returns the wire encoding: CompactSize length prefix followed by
// the raw payload.
func (s Script) Bytes() []byte {
	buf := CompactSize(len(s)).Bytes()
	return append(buf, s...)
}

func (s Script) String() string {
	return hex.EncodeToString(s)
}

func (s Script) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Script) UnmarshalJSON(b []byte) error {
	var scriptStr string
	if err := json.Unmarshal(b, &scriptStr); err != nil {
		return err
	}
	raw, err := hex.DecodeString(scriptStr)
	if err != nil {
		return ErrInvalidFormat
	}
	*s = raw
	return nil
}

// DecodeScript reads a length-prefixed script from the front of buf.
// The declared length is input-controlled, so it is checked against the
// remaining buffer in 64-bit space before any index arithmetic.
func DecodeScript(buf []byte) (Script, int, error) {
	length, prefixLen, err := DecodeCompactSize(buf)
	if err != nil {
		return nil, 0, err
	}
	if uint64(length) > uint64(len(buf)-prefixLen) {
		return nil, 0, ErrInsufficientBytes
	}
	end := prefixLen + int(length)
	payload := make(Script, length)
	copy(payload, buf[prefixLen:end])
	return payload, end, nil
}
