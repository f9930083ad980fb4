package wire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScript_RoundTrip(t *testing.T) {
	tests := []struct {
		script  Script
		encoded []byte
	}{
		{Script{}, []byte{0x00}},
		{Script{0xab}, []byte{0x01, 0xab}},
		{Script{0x76, 0xa9, 0x14}, []byte{0x03, 0x76, 0xa9, 0x14}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.encoded, tt.script.Bytes())

		decoded, consumed, err := DecodeScript(tt.encoded)
		require.NoError(t, err)
		require.Equal(t, tt.script, decoded)
		require.Equal(t, len(tt.encoded), consumed)
	}
}

func TestScript_LongPayload(t *testing.T) {
	payload := make(Script, 300)
	for i := range payload {
		payload[i] = byte(i)
	}

	encoded := payload.Bytes()
	// 300 needs the 0xfd two-byte length form.
	require.Equal(t, []byte{0xfd, 0x2c, 0x01}, encoded[:3])
	require.Len(t, encoded, 303)

	decoded, consumed, err := DecodeScript(encoded)
	require.NoError(t, err)
	require.Equal(t, payload, decoded)
	require.Equal(t, 303, consumed)
}

func TestScript_DeclaredLengthPastBuffer(t *testing.T) {
	tests := [][]byte{
		{},
		{0x05, 0x01, 0x02},
		{0xfd, 0x00, 0x01, 0xab},
		// Declared length near the uint64 maximum must fail cleanly
		// instead of overflowing the end index.
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00},
	}
	for _, buf := range tests {
		_, _, err := DecodeScript(buf)
		require.Equal(t, ErrInsufficientBytes, err)
	}
}

func TestScript_JSON(t *testing.T) {
	script := Script{0x51, 0x52}
	out, err := json.Marshal(script)
	require.NoError(t, err)
	require.Equal(t, `"5152"`, string(out))

	var parsed Script
	require.NoError(t, json.Unmarshal(out, &parsed))
	require.Equal(t, script, parsed)

	require.Equal(t, ErrInvalidFormat, json.Unmarshal([]byte(`"xyz"`), &parsed))
}
