package wire

import "github.com/pkg/errors"

var (
	// ErrInsufficientBytes is returned when a buffer ends before a
	// required field can be fully read. Decoders return it at the exact
	// point of shortfall and never hand back a partial result.
	ErrInsufficientBytes = errors.New("insufficient bytes")

	// ErrInvalidFormat is returned for malformed textual representations
	// such as a bad txid hex string. Binary decoding never returns it:
	// every bit pattern in the version, index, sequence and lock time
	// fields is legal on the wire.
	ErrInvalidFormat = errors.New("invalid format")
)
