package wire

import "encoding/binary"

// TxIn is a single transaction input: the previous output it spends,
// the unlock script, and a 4-byte sequence number transported verbatim.
type TxIn struct {
	PreviousOutPoint OutPoint `json:"previous_output"`
	SignatureScript  Script   `json:"signature_script"`
	Sequence         uint32   `json:"sequence"`
}

func NewTxIn(prevOut OutPoint, script Script, sequence uint32) TxIn {
	if script == nil {
		script = Script{}
	}
	return TxIn{
		PreviousOutPoint: prevOut,
		SignatureScript:  script,
		Sequence:         sequence,
	}
}

// Bytes returns the wire encoding: outpoint, script, then sequence.
func (in TxIn) Bytes() []byte {
	buf := in.PreviousOutPoint.Bytes()
	buf = append(buf, in.SignatureScript.Bytes()...)
	var seq [4]byte
	binary.LittleEndian.PutUint32(seq[:], in.Sequence)
	return append(buf, seq[:]...)
}

// DecodeTxIn reads a TxIn from the front of buf and returns it together
// with the total number of bytes consumed by all three fields.
func DecodeTxIn(buf []byte) (TxIn, int, error) {
	prevOut, prevOutLen, err := DecodeOutPoint(buf)
	if err != nil {
		return TxIn{}, 0, err
	}
	script, scriptLen, err := DecodeScript(buf[prevOutLen:])
	if err != nil {
		return TxIn{}, 0, err
	}
	offset := prevOutLen + scriptLen
	if len(buf) < offset+4 {
		return TxIn{}, 0, ErrInsufficientBytes
	}
	sequence := binary.LittleEndian.Uint32(buf[offset : offset+4])
	return NewTxIn(prevOut, script, sequence), offset + 4, nil
}
