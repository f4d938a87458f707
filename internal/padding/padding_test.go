package padding

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/voteforge/electionkit/internal/ekerr"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		message []byte
	}{
		{name: "empty message", message: []byte{}},
		{name: "short message", message: []byte("abc")},
		{name: "binary message", message: []byte{0x00, 0xff, 0x10, 0x00}},
		{name: "capacity message", message: bytes.Repeat([]byte{0xab}, Bytes512.Capacity())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := Encode(tt.message, Bytes512, false)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if len(block) != int(Bytes512) {
				t.Fatalf("block length = %d, want %d", len(block), Bytes512)
			}
			decoded, err := Decode(block, Bytes512)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal(decoded, tt.message) {
				t.Errorf("round trip mismatch: got %q, want %q", decoded, tt.message)
			}
		})
	}
}

func TestEncodeLayout(t *testing.T) {
	block, err := Encode([]byte("abc"), Bytes512, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	indicator := binary.BigEndian.Uint16(block[:IndicatorSize])
	if indicator != 507 {
		t.Errorf("padding indicator = %d, want 507", indicator)
	}
	if !bytes.Equal(block[2:5], []byte("abc")) {
		t.Errorf("payload region = %q, want %q", block[2:5], "abc")
	}
	if !bytes.Equal(block[5:], bytes.Repeat([]byte{0x00}, 507)) {
		t.Error("filler region is not 507 zero bytes")
	}
}

func TestEncodeTruncation(t *testing.T) {
	oversize := bytes.Repeat([]byte{0x42}, int(Bytes512)-1)

	if _, err := Encode(oversize, Bytes512, false); !errors.Is(err, ekerr.ErrTruncation) {
		t.Fatalf("Encode error = %v, want ErrTruncation", err)
	}

	block, err := Encode(oversize, Bytes512, true)
	if err != nil {
		t.Fatalf("Encode with truncation failed: %v", err)
	}
	decoded, err := Decode(block, Bytes512)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, oversize[:Bytes512.Capacity()]) {
		t.Error("truncated block does not decode to the message prefix")
	}
}

func TestDecodeMalformedBlock(t *testing.T) {
	tests := []struct {
		name  string
		block func() []byte
	}{
		{
			name:  "wrong block length",
			block: func() []byte { return make([]byte, 100) },
		},
		{
			name: "indicator exceeds capacity",
			block: func() []byte {
				b := make([]byte, Bytes512)
				binary.BigEndian.PutUint16(b[:2], uint16(Bytes512.Capacity()+1))
				return b
			},
		},
		{
			name: "indicator at maximum",
			block: func() []byte {
				b := make([]byte, Bytes512)
				binary.BigEndian.PutUint16(b[:2], 0xffff)
				return b
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.block(), Bytes512); !errors.Is(err, ekerr.ErrMalformedBlock) {
				t.Errorf("Decode error = %v, want ErrMalformedBlock", err)
			}
		})
	}
}

func TestUnsupportedBlockSize(t *testing.T) {
	if _, err := Encode([]byte("abc"), BlockSize(128), false); !errors.Is(err, ekerr.ErrInvalidConfiguration) {
		t.Errorf("Encode error = %v, want ErrInvalidConfiguration", err)
	}
	if _, err := Decode(make([]byte, 128), BlockSize(128)); !errors.Is(err, ekerr.ErrInvalidConfiguration) {
		t.Errorf("Decode error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestDecodeZeroPaddingIndicator(t *testing.T) {
	// A full-capacity block carries a zero indicator.
	message := bytes.Repeat([]byte{0x01}, Bytes512.Capacity())
	block, err := Encode(message, Bytes512, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if got := binary.BigEndian.Uint16(block[:2]); got != 0 {
		t.Fatalf("padding indicator = %d, want 0", got)
	}
	decoded, err := Decode(block, Bytes512)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, message) {
		t.Error("full-capacity block does not round trip")
	}
}
