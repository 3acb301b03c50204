package cartridge

import "fmt"

// ROMSize classifies the ROM capacity code stored at offset 0x148.
type ROMSize byte

// ROM capacity codes.
const (
	ROMSize32K  ROMSize = 0x00
	ROMSize64K  ROMSize = 0x01
	ROMSize128K ROMSize = 0x02
	ROMSize256K ROMSize = 0x03
	ROMSize512K ROMSize = 0x04
	ROMSize1M   ROMSize = 0x05
	ROMSize2M   ROMSize = 0x06
	ROMSize1M1  ROMSize = 0x52
	ROMSize1M2  ROMSize = 0x53
	ROMSize1M5  ROMSize = 0x54
)

type capacity struct {
	bytes uint32
	banks int
}

var romSizes = map[ROMSize]capacity{
	ROMSize32K:  {bytes: 32 * 1024, banks: 2},
	ROMSize64K:  {bytes: 64 * 1024, banks: 4},
	ROMSize128K: {bytes: 128 * 1024, banks: 8},
	ROMSize256K: {bytes: 256 * 1024, banks: 16},
	ROMSize512K: {bytes: 512 * 1024, banks: 32},
	ROMSize1M:   {bytes: 1024 * 1024, banks: 64},
	ROMSize2M:   {bytes: 2048 * 1024, banks: 128},
	ROMSize1M1:  {bytes: 1152 * 1024, banks: 72},
	ROMSize1M2:  {bytes: 1280 * 1024, banks: 80},
	ROMSize1M5:  {bytes: 1536 * 1024, banks: 96},
}

// decodeROMSize maps the capacity code byte to its ROMSize class.
func decodeROMSize(code byte) (ROMSize, error) {
	size := ROMSize(code)
	if _, ok := romSizes[size]; !ok {
		return 0, UnknownROMSizeError{Code: code}
	}
	return size, nil
}

// Bytes returns the exact ROM capacity in bytes.
func (s ROMSize) Bytes() uint32 {
	return romSizes[s].bytes
}

// Banks returns the number of 16 KiB ROM banks.
func (s ROMSize) Banks() int {
	return romSizes[s].banks
}

// String implements the fmt.Stringer interface.
func (s ROMSize) String() string {
	c, ok := romSizes[s]
	if !ok {
		return fmt.Sprintf("unknown ROM size (0x%02X)", byte(s))
	}
	return fmt.Sprintf("%d KiB (%d banks)", c.bytes/1024, c.banks)
}

// RAMSize classifies the RAM capacity code stored at offset 0x149.
type RAMSize byte

// RAM capacity codes.
const (
	RAMSizeNone RAMSize = 0x00
	RAMSize2K   RAMSize = 0x01
	RAMSize8K   RAMSize = 0x02
	RAMSize32K  RAMSize = 0x03
	RAMSize128K RAMSize = 0x04
)

var ramSizes = map[RAMSize]uint32{
	RAMSizeNone: 0,
	RAMSize2K:   2 * 1024,
	RAMSize8K:   8 * 1024,
	RAMSize32K:  32 * 1024,
	RAMSize128K: 128 * 1024,
}

// decodeRAMSize maps the capacity code byte to its RAMSize class.
func decodeRAMSize(code byte) (RAMSize, error) {
	size := RAMSize(code)
	if _, ok := ramSizes[size]; !ok {
		return 0, UnknownRAMSizeError{Code: code}
	}
	return size, nil
}

// Bytes returns the exact RAM capacity in bytes.
func (s RAMSize) Bytes() uint32 {
	return ramSizes[s]
}

// String implements the fmt.Stringer interface.
func (s RAMSize) String() string {
	b, ok := ramSizes[s]
	if !ok {
		return fmt.Sprintf("unknown RAM size (0x%02X)", byte(s))
	}
	if b == 0 {
		return "none"
	}
	return fmt.Sprintf("%d KiB", b/1024)
}
