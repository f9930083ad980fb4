package wire

import (
	"encoding/hex"
	"encoding/json"
)

// TxidLen is the size of a transaction identifier in bytes.
const TxidLen = 32

// Txid is an opaque 32-byte transaction identifier. Equality is
// byte-wise. The textual form is 64 lowercase hex characters, byte 0
// mapping to the first character pair.
type Txid [TxidLen]byte

var ZeroTxid Txid

func (t Txid) String() string {
	return hex.EncodeToString(t[:])
}

func (t Txid) Bytes() []byte {
	return t[:]
}

func (t Txid) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Txid) UnmarshalJSON(b []byte) error {
	var txidStr string
	if err := json.Unmarshal(b, &txidStr); err != nil {
		return err
	}
	txid, err := NewTxidFromHex(txidStr)
	if err != nil {
		return err
	}
	*t = txid
	return nil
}

func NewTxidFromBytes(b []byte) (Txid, error) {
	if len(b) != TxidLen {
		return ZeroTxid, ErrInvalidFormat
	}
	var t Txid
	copy(t[:], b)
	return t, nil
}

func NewTxidFromHex(in string) (Txid, error) {
	b, err := hex.DecodeString(in)
	if err != nil {
		return ZeroTxid, ErrInvalidFormat
	}
	return NewTxidFromBytes(b)
}
