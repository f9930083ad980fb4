package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutPoint_RoundTrip(t *testing.T) {
	var txid Txid
	for i := range txid {
		txid[i] = byte(0xff - i)
	}
	outPoint := NewOutPoint(txid, 0xdeadbeef)

	encoded := outPoint.Bytes()
	require.Len(t, encoded, OutPointLen)
	require.Equal(t, txid.Bytes(), encoded[:TxidLen])
	require.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde}, encoded[TxidLen:])

	decoded, consumed, err := DecodeOutPoint(encoded)
	require.NoError(t, err)
	require.Equal(t, outPoint, decoded)
	require.Equal(t, OutPointLen, consumed)
}

func TestOutPoint_InsufficientBytes(t *testing.T) {
	_, _, err := DecodeOutPoint(nil)
	require.Equal(t, ErrInsufficientBytes, err)

	_, _, err = DecodeOutPoint(make([]byte, OutPointLen-1))
	require.Equal(t, ErrInsufficientBytes, err)
}
