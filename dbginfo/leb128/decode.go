// Package leb128 decodes the Little Endian Base 128 integers DWARF uses
// throughout its location expressions and line tables (DWARF v4 §7.6).
package leb128

import (
	"fmt"
	"io"
)

// DecodeUnsigned decodes an unsigned LEB128 value from buf.
func DecodeUnsigned(buf io.ByteReader) (uint64, error) {
	var result uint64
	var shift uint
	for {
		b, err := buf.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("leb128: decoding unsigned: %w", err)
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
}

// DecodeSigned decodes a signed LEB128 value from buf.
func DecodeSigned(buf io.ByteReader) (int64, error) {
	var result int64
	var shift uint
	var b byte
	var err error
	for {
		b, err = buf.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("leb128: decoding signed: %w", err)
		}
		result |= (int64(b) & 0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			break
		}
	}
	if shift < 64 && b&0x40 != 0 {
		result |= -(1 << shift)
	}
	return result, nil
}
