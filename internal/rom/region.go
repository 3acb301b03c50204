// Package rom provides typed access to regions of an immutable ROM byte buffer.
package rom

import (
	"encoding/binary"
	"fmt"
)

// Region describes a [Start, End) byte range in the ROM address space.
// The lower bound is inclusive, the upper bound is exclusive.
type Region struct {
	Start int
	End   int
}

// BoundsError is returned when a region does not fit into the buffer
// it is applied to.
type BoundsError struct {
	Region Region
	Size   int // size of the buffer the region was applied to
}

// Error implements the error interface.
func (e BoundsError) Error() string {
	return fmt.Sprintf("region [0x%04X,0x%04X) out of bounds for buffer of %d bytes",
		e.Region.Start, e.Region.End, e.Size)
}

// WidthError is returned when a region is interpreted as a value shape
// that does not match the number of bytes the region covers.
type WidthError struct {
	Region Region
	Want   int // expected width in bytes
}

// Error implements the error interface.
func (e WidthError) Error() string {
	return fmt.Sprintf("region [0x%04X,0x%04X) covers %d bytes, value needs %d",
		e.Region.Start, e.Region.End, e.Region.Len(), e.Want)
}

// Len returns the number of bytes the region covers.
func (r Region) Len() int {
	return r.End - r.Start
}

// Extract returns the exact sub-slice of buf that the region covers.
// It fails with a BoundsError if the region does not fit into buf,
// it never truncates or reads adjacent memory.
func (r Region) Extract(buf []byte) ([]byte, error) {
	if r.Start < 0 || r.Start > r.End || r.End > len(buf) {
		return nil, BoundsError{Region: r, Size: len(buf)}
	}
	return buf[r.Start:r.End], nil
}

// Byte interprets a 1 byte wide region as a single byte.
func (r Region) Byte(buf []byte) (byte, error) {
	b, err := r.Extract(buf)
	if err != nil {
		return 0, err
	}
	if len(b) != 1 {
		return 0, WidthError{Region: r, Want: 1}
	}
	return b[0], nil
}

// WordLE interprets a 2 byte wide region as a little-endian 16 bit word,
// the native byte order of the CPU.
func (r Region) WordLE(buf []byte) (uint16, error) {
	b, err := r.Extract(buf)
	if err != nil {
		return 0, err
	}
	if len(b) != 2 {
		return 0, WidthError{Region: r, Want: 2}
	}
	return binary.LittleEndian.Uint16(b), nil
}

// WordBE interprets a 2 byte wide region as a big-endian 16 bit word.
// The cartridge global checksum is stored in this byte order.
func (r Region) WordBE(buf []byte) (uint16, error) {
	b, err := r.Extract(buf)
	if err != nil {
		return 0, err
	}
	if len(b) != 2 {
		return 0, WidthError{Region: r, Want: 2}
	}
	return binary.BigEndian.Uint16(b), nil
}

// Bytes16 interprets a 16 byte wide region as a fixed size byte array.
func (r Region) Bytes16(buf []byte) ([16]byte, error) {
	var out [16]byte
	b, err := r.Extract(buf)
	if err != nil {
		return out, err
	}
	if len(b) != len(out) {
		return out, WidthError{Region: r, Want: len(out)}
	}
	copy(out[:], b)
	return out, nil
}
