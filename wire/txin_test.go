package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testOutPoint() OutPoint {
	var txid Txid
	for i := range txid {
		txid[i] = byte(i * 3)
	}
	return NewOutPoint(txid, 7)
}

func TestTxIn_RoundTrip(t *testing.T) {
	in := NewTxIn(testOutPoint(), Script{0xab, 0xcd}, 0xffffffff)

	encoded := in.Bytes()
	// 36 outpoint + 1 length prefix + 2 script + 4 sequence.
	require.Len(t, encoded, 43)
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, encoded[39:])

	decoded, consumed, err := DecodeTxIn(encoded)
	require.NoError(t, err)
	require.Equal(t, in, decoded)
	require.Equal(t, len(encoded), consumed)
}

func TestTxIn_EmptyScript(t *testing.T) {
	in := NewTxIn(testOutPoint(), nil, 0)

	encoded := in.Bytes()
	require.Len(t, encoded, OutPointLen+1+4)

	decoded, consumed, err := DecodeTxIn(encoded)
	require.NoError(t, err)
	require.Equal(t, in, decoded)
	require.Equal(t, len(encoded), consumed)
}

func TestTxIn_InsufficientBytes(t *testing.T) {
	encoded := NewTxIn(testOutPoint(), Script{0x51}, 1).Bytes()
	for _, cut := range []int{0, OutPointLen - 1, OutPointLen, OutPointLen + 1, len(encoded) - 1} {
		_, _, err := DecodeTxIn(encoded[:cut])
		require.Equal(t, ErrInsufficientBytes, err)
	}
}
