// Package padding implements the fixed-size padded block format used to
// store serialized election records in fixed-length slots.
//
// A padded block is laid out as:
//
//	[2-byte big-endian padding length][payload][0x00 filler]
//
// The indicator stores the total trailing non-payload length rather than
// the payload length, so the same decode arithmetic holds for every block
// size class, including zero-length and capacity-length payloads.
package padding

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/voteforge/electionkit/internal/ekerr"
)

// IndicatorSize is the width in bytes of the padding-length prefix.
const IndicatorSize = 2

// padByte fills the region after the payload.
const padByte = 0x00

// BlockSize is a supported total block length in bytes.
type BlockSize int

const (
	// Bytes512 is a 512-byte block with a 510-byte payload capacity.
	Bytes512 BlockSize = 512
)

// IsValid reports whether the block size is a supported class.
func (s BlockSize) IsValid() bool {
	switch s {
	case Bytes512:
		return true
	default:
		return false
	}
}

// Capacity returns the maximum payload length for the block size.
func (s BlockSize) Capacity() int {
	return int(s) - IndicatorSize
}

// Encode produces a block of exactly size bytes containing message.
//
// If message exceeds the capacity of the block size and allowTruncation is
// false, Encode fails with ErrTruncation and produces no output. With
// allowTruncation true the message is cut to capacity; the dropped tail is
// not recoverable.
func Encode(message []byte, size BlockSize, allowTruncation bool) ([]byte, error) {
	if !size.IsValid() {
		return nil, fmt.Errorf("%w: unsupported block size %d", ekerr.ErrInvalidConfiguration, size)
	}

	capacity := size.Capacity()
	messageLength := len(message)
	if messageLength > capacity {
		if !allowTruncation {
			return nil, fmt.Errorf("%w: message of %d bytes exceeds block capacity of %d bytes",
				ekerr.ErrTruncation, messageLength, capacity)
		}
		messageLength = capacity
	}

	paddingLength := capacity - messageLength

	block := make([]byte, 0, int(size))
	block = binary.BigEndian.AppendUint16(block, uint16(paddingLength))
	block = append(block, message[:messageLength]...)
	block = append(block, bytes.Repeat([]byte{padByte}, paddingLength)...)
	return block, nil
}

// Decode recovers the exact payload from a block produced by Encode.
//
// A block of the wrong length, or one whose indicator does not describe a
// payload inside the block, fails with ErrMalformedBlock.
func Decode(block []byte, size BlockSize) ([]byte, error) {
	if !size.IsValid() {
		return nil, fmt.Errorf("%w: unsupported block size %d", ekerr.ErrInvalidConfiguration, size)
	}
	if len(block) != int(size) {
		return nil, fmt.Errorf("%w: block is %d bytes, expected %d",
			ekerr.ErrMalformedBlock, len(block), size)
	}

	paddingLength := int(binary.BigEndian.Uint16(block[:IndicatorSize]))
	if paddingLength > size.Capacity() {
		return nil, fmt.Errorf("%w: padding indicator %d exceeds capacity of a %d-byte block",
			ekerr.ErrMalformedBlock, paddingLength, size)
	}
	messageEnd := int(size) - paddingLength

	message := make([]byte, messageEnd-IndicatorSize)
	copy(message, block[IndicatorSize:messageEnd])
	return message, nil
}
