package wire

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTxid_HexRoundTrip(t *testing.T) {
	var txid Txid
	for i := range txid {
		txid[i] = byte(i)
	}

	hexStr := txid.String()
	require.Len(t, hexStr, 64)
	require.Equal(t, strings.ToLower(hexStr), hexStr)
	require.Equal(t, "000102", hexStr[:6])

	parsed, err := NewTxidFromHex(hexStr)
	require.NoError(t, err)
	require.Equal(t, txid, parsed)
}

func TestTxid_InvalidHex(t *testing.T) {
	tests := []string{
		"",
		strings.Repeat("ab", 31),
		strings.Repeat("ab", 31) + "a",
		strings.Repeat("ab", 33),
		strings.Repeat("zz", 32),
		"0x" + strings.Repeat("ab", 31),
	}
	for _, in := range tests {
		_, err := NewTxidFromHex(in)
		require.Equal(t, ErrInvalidFormat, err)
	}
}

func TestTxid_FromBytes(t *testing.T) {
	b := make([]byte, TxidLen)
	b[0] = 0xca
	b[31] = 0xfe
	txid, err := NewTxidFromBytes(b)
	require.NoError(t, err)
	require.Equal(t, b, txid.Bytes())

	_, err = NewTxidFromBytes(b[:31])
	require.Equal(t, ErrInvalidFormat, err)
}

func TestTxid_JSON(t *testing.T) {
	var txid Txid
	txid[0] = 0xff

	out, err := json.Marshal(txid)
	require.NoError(t, err)
	require.Equal(t, `"ff`+strings.Repeat("00", 31)+`"`, string(out))

	var parsed Txid
	require.NoError(t, json.Unmarshal(out, &parsed))
	require.Equal(t, txid, parsed)

	require.Error(t, json.Unmarshal([]byte(`"abcd"`), &parsed))
	require.Error(t, json.Unmarshal([]byte(`42`), &parsed))
}
