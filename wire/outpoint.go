package wire

import "encoding/binary"

// OutPointLen is the encoded size of an OutPoint: the raw txid followed
// by the output index as 4 bytes little-endian.
const OutPointLen = TxidLen + 4

// OutPoint references a single output of a previously created
// transaction. The index has no upper bound beyond the encoding width.
type OutPoint struct {
	Txid  Txid   `json:"txid"`
	Index uint32 `json:"index"`
}

func NewOutPoint(txid Txid, index uint32) OutPoint {
	return OutPoint{
		Txid:  txid,
		Index: index,
	}
}

// Bytes returns the 36-byte wire encoding.
func (o OutPoint) Bytes() []byte {
	buf := make([]byte, OutPointLen)
	copy(buf, o.Txid[:])
	binary.LittleEndian.PutUint32(buf[TxidLen:], o.Index)
	return buf
}

// DecodeOutPoint reads an OutPoint from the front of buf and returns it
// together with the number of bytes consumed, always OutPointLen on
// success.
func DecodeOutPoint(buf []byte) (OutPoint, int, error) {
	if len(buf) < OutPointLen {
		return OutPoint{}, 0, ErrInsufficientBytes
	}
	var out OutPoint
	copy(out.Txid[:], buf[:TxidLen])
	out.Index = binary.LittleEndian.Uint32(buf[TxidLen:OutPointLen])
	return out, OutPointLen, nil
}
