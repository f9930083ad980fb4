package wire

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"
)

// maxInputAlloc caps the initial allocation for the decoded input
// slice. The declared count is input-controlled; a hostile value has to
// run the buffer dry instead of reserving memory up front.
const maxInputAlloc = 128

// Transaction is the pre-segwit subset of the Bitcoin transaction wire
// format: version, inputs and lock time. Outputs, the segwit
// marker/flag and witness data are outside this format.
type Transaction struct {
	Version  uint32 `json:"version"`
	Inputs   []TxIn `json:"inputs"`
	LockTime uint32 `json:"lock_time"`
}

func NewTransaction(version uint32, inputs []TxIn, lockTime uint32) Transaction {
	if inputs == nil {
		inputs = []TxIn{}
	}
	return Transaction{
		Version:  version,
		Inputs:   inputs,
		LockTime: lockTime,
	}
}

// Bytes returns the wire encoding: version, CompactSize input count,
// each input in order, then lock time. No padding or alignment.
func (tx Transaction) Bytes() []byte {
	var buf bytes.Buffer
	var word [4]byte
	binary.LittleEndian.PutUint32(word[:], tx.Version)
	buf.Write(word[:])
	buf.Write(CompactSize(len(tx.Inputs)).Bytes())
	for _, in := range tx.Inputs {
		buf.Write(in.Bytes())
	}
	binary.LittleEndian.PutUint32(word[:], tx.LockTime)
	buf.Write(word[:])
	return buf.Bytes()
}

// TxID returns the double SHA-256 digest of the wire encoding, in
// serialized byte order.
func (tx Transaction) TxID() Txid {
	first := sha256.Sum256(tx.Bytes())
	return Txid(sha256.Sum256(first[:]))
}

// DecodeTransaction reads a Transaction from the front of buf and
// returns it together with the total number of bytes consumed. The
// number of inputs decoded always equals the declared count; any
// shortfall fails the whole decode.
func DecodeTransaction(buf []byte) (Transaction, int, error) {
	if len(buf) < 4 {
		return Transaction{}, 0, ErrInsufficientBytes
	}
	version := binary.LittleEndian.Uint32(buf[:4])
	offset := 4

	count, countLen, err := DecodeCompactSize(buf[offset:])
	if err != nil {
		return Transaction{}, 0, err
	}
	offset += countLen

	alloc := count
	if alloc > maxInputAlloc {
		alloc = maxInputAlloc
	}
	inputs := make([]TxIn, 0, alloc)
	for i := uint64(0); i < uint64(count); i++ {
		in, inLen, err := DecodeTxIn(buf[offset:])
		if err != nil {
			return Transaction{}, 0, err
		}
		inputs = append(inputs, in)
		offset += inLen
	}

	if len(buf) < offset+4 {
		return Transaction{}, 0, ErrInsufficientBytes
	}
	lockTime := binary.LittleEndian.Uint32(buf[offset : offset+4])
	offset += 4

	return Transaction{
		Version:  version,
		Inputs:   inputs,
		LockTime: lockTime,
	}, offset, nil
}

// String renders a multi-line diagnostic summary. The output is for
// inspection only and does not round-trip.
func (tx Transaction) String() string {
	var b strings.Builder
	b.WriteString("Transaction:\n")
	fmt.Fprintf(&b, "  Version: %d\n", tx.Version)
	fmt.Fprintf(&b, "  Inputs (%d):\n", len(tx.Inputs))
	for _, in := range tx.Inputs {
		fmt.Fprintf(&b, "    Previous Output Index: %d\n", in.PreviousOutPoint.Index)
		fmt.Fprintf(&b, "    Script Length: %d\n", len(in.SignatureScript))
		fmt.Fprintf(&b, "    Script: %s\n", in.SignatureScript)
		fmt.Fprintf(&b, "    Sequence: %d\n", in.Sequence)
	}
	fmt.Fprintf(&b, "  Lock Time: %d\n", tx.LockTime)
	return b.String()
}
