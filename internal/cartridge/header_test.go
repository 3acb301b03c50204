package cartridge

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// testROM returns a minimal ROM image with a valid header: 32 KiB ROM,
// no RAM, no bank controller and a correct header checksum.
func testROM() []byte {
	buf := make([]byte, 0x8000)
	copy(buf[0x134:], "TETRIS")
	buf[0x147] = 0x00 // ROM only
	buf[0x148] = 0x00 // 32 KiB
	buf[0x149] = 0x00 // no RAM
	buf[0x14D] = checksum(buf)
	return buf
}

func checksum(buf []byte) byte {
	var acc int64
	for _, b := range buf[0x134:0x14D] {
		acc += -int64(b) - 1
	}
	return byte(acc)
}

func TestNew(t *testing.T) {
	buf := testROM()

	header, err := New(buf)
	assert.NoError(t, err)
	assert.Equal(t, "TETRIS", header.Title())
	assert.Equal(t, ROMSize32K, header.ROMSize())
	assert.Equal(t, RAMSizeNone, header.RAMSize())
	assert.False(t, header.IsColorMode())
	assert.False(t, header.IsSuperMode())
	assert.Len(t, header.Components(), 1)
	assert.True(t, header.HasKind(KindROM))
	assert.False(t, header.HasKind(KindBattery))
}

func TestNewChecksumMismatch(t *testing.T) {
	buf := testROM()
	buf[0x14D] ^= 0xFF

	_, err := New(buf)
	assert.Error(t, err)
	checksumErr, ok := err.(ChecksumError)
	assert.True(t, ok, "expected ChecksumError")
	assert.Equal(t, buf[0x14D], checksumErr.Stored)

	// the lenient constructor still decodes the header
	header, err := NewNoCheck(buf)
	assert.NoError(t, err)
	assert.Equal(t, "TETRIS", header.Title())
}

func TestNewNoPartialHeader(t *testing.T) {
	buf := testROM()
	buf[0x148] = 0x45 // unknown ROM size code

	header, err := NewNoCheck(buf)
	assert.Error(t, err)
	assert.Nil(t, header)
	_, ok := err.(UnknownROMSizeError)
	assert.True(t, ok, "expected UnknownROMSizeError")

	buf = testROM()
	buf[0x149] = 0x09 // unknown RAM size code
	header, err = NewNoCheck(buf)
	assert.Error(t, err)
	assert.Nil(t, header)

	buf = testROM()
	buf[0x147] = 0x20 // unknown components code
	header, err = NewNoCheck(buf)
	assert.Error(t, err)
	assert.Nil(t, header)
}

func TestNewTooSmallBuffer(t *testing.T) {
	_, err := NewNoCheck(make([]byte, 0x100))
	assert.Error(t, err)

	_, err = New(nil)
	assert.Error(t, err)
}

func TestModeFlags(t *testing.T) {
	tests := []struct {
		name  string
		color byte
		super byte
		want  [2]bool
	}{
		{"plain", 0x00, 0x00, [2]bool{false, false}},
		{"color", 0x80, 0x00, [2]bool{true, false}},
		{"super", 0x00, 0x03, [2]bool{false, true}},
		{"both", 0x80, 0x03, [2]bool{true, true}},
		// advisory flags, unexpected values decode as false
		{"color only mode byte", 0xC0, 0x00, [2]bool{false, false}},
		{"stray super value", 0x00, 0x01, [2]bool{false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := testROM()
			buf[0x143] = tt.color
			buf[0x146] = tt.super
			buf[0x14D] = checksum(buf)

			header, err := New(buf)
			assert.NoError(t, err)
			assert.Equal(t, tt.want[0], header.IsColorMode())
			assert.Equal(t, tt.want[1], header.IsSuperMode())
		})
	}
}

func TestTitleLossyDecoding(t *testing.T) {
	buf := testROM()
	copy(buf[0x134:0x144], "AB\xFECD\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00")
	buf[0x14D] = checksum(buf)

	header, err := New(buf)
	assert.NoError(t, err)
	// the invalid byte is replaced, decoding never fails
	assert.Equal(t, "AB�CD", header.Title())
}

func TestVerifyChecksumZeroRange(t *testing.T) {
	buf := make([]byte, 0x150)

	// 25 zero bytes contribute -1 each: low byte of -25 is 0xE7
	buf[0x14D] = 0xE7
	assert.NoError(t, VerifyChecksum(buf))

	buf[0x14D] = 0xFF
	err := VerifyChecksum(buf)
	assert.Error(t, err)
	checksumErr, ok := err.(ChecksumError)
	assert.True(t, ok, "expected ChecksumError")
	assert.Equal(t, byte(0xE7), checksumErr.Computed)
	assert.Equal(t, byte(0xFF), checksumErr.Stored)
}

func TestHasComponent(t *testing.T) {
	buf := testROM()
	buf[0x147] = 0x03 // ROM+MBC1+RAM+BATTERY
	buf[0x149] = 0x03 // 32 KiB RAM
	buf[0x14D] = checksum(buf)

	header, err := New(buf)
	assert.NoError(t, err)

	assert.True(t, header.HasComponent(Component{Kind: KindMBC, MBC: 1}))
	assert.True(t, header.HasComponent(Component{Kind: KindRAM, Size: 32 * 1024}))
	assert.True(t, header.HasComponent(Component{Kind: KindBattery}))
	assert.False(t, header.HasComponent(Component{Kind: KindMBC, MBC: 5}))
	assert.False(t, header.HasComponent(Component{Kind: KindRAM, Size: 8 * 1024}))
}

func TestGlobalChecksum(t *testing.T) {
	buf := testROM()
	buf[0x14E] = 0xAB
	buf[0x14F] = 0xCD

	header, err := NewNoCheck(buf)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xABCD), header.GlobalChecksum())
}
