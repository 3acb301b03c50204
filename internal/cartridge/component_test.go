package cartridge

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

const (
	testROMBytes = 64 * 1024
	testRAMBytes = 8 * 1024
)

// componentTable lists the expected ordered component list for every
// defined component code.
var componentTable = map[byte][]Component{
	0x00: {{Kind: KindROM, Size: testROMBytes}},
	0x01: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMBC, MBC: 1}},
	0x02: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMBC, MBC: 1}, {Kind: KindRAM, Size: testRAMBytes}},
	0x03: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMBC, MBC: 1}, {Kind: KindRAM, Size: testRAMBytes}, {Kind: KindBattery}},
	0x05: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMBC, MBC: 2}},
	0x06: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMBC, MBC: 2}, {Kind: KindBattery}},
	0x08: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindRAM, Size: testRAMBytes}},
	0x09: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindRAM, Size: testRAMBytes}, {Kind: KindBattery}},
	0x0B: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMMM01}},
	0x0C: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMMM01}, {Kind: KindSRAM, Size: testRAMBytes}},
	0x0D: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMMM01}, {Kind: KindSRAM, Size: testRAMBytes}, {Kind: KindBattery}},
	0x0F: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMBC, MBC: 3}, {Kind: KindTimer}, {Kind: KindBattery}},
	0x10: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMBC, MBC: 3}, {Kind: KindTimer}, {Kind: KindRAM, Size: testRAMBytes}, {Kind: KindBattery}},
	0x11: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMBC, MBC: 3}},
	0x12: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMBC, MBC: 3}, {Kind: KindRAM, Size: testRAMBytes}},
	0x13: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMBC, MBC: 3}, {Kind: KindRAM, Size: testRAMBytes}, {Kind: KindBattery}},
	0x19: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMBC, MBC: 5}},
	0x1A: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMBC, MBC: 5}, {Kind: KindRAM, Size: testRAMBytes}},
	0x1B: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMBC, MBC: 5}, {Kind: KindRAM, Size: testRAMBytes}, {Kind: KindBattery}},
	0x1C: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMBC, MBC: 5}, {Kind: KindRumble}},
	0x1D: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMBC, MBC: 5}, {Kind: KindRumble}, {Kind: KindSRAM, Size: testRAMBytes}},
	0x1E: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindMBC, MBC: 5}, {Kind: KindRumble}, {Kind: KindSRAM, Size: testRAMBytes}, {Kind: KindBattery}},
	0x1F: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindPocketCamera}},
	0xFD: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindBandaiTAMA5}},
	0xFE: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindHudsonHuC3}},
	0xFF: {{Kind: KindROM, Size: testROMBytes}, {Kind: KindHudsonHuC1}, {Kind: KindRAM, Size: testRAMBytes}, {Kind: KindBattery}},
}

func TestDecodeComponents(t *testing.T) {
	for code, want := range componentTable {
		components, err := decodeComponents(code, ROMSize64K, RAMSize8K)
		assert.NoError(t, err)
		assert.Equal(t, want, components, "code 0x%02X", code)
	}
}

func TestDecodeComponentsUnknownCode(t *testing.T) {
	for code := 0; code < 0x100; code++ {
		b := byte(code)
		if _, ok := componentTable[b]; ok {
			continue
		}
		_, err := decodeComponents(b, ROMSize64K, RAMSize8K)
		assert.Error(t, err, "code 0x%02X", b)

		unknownErr, ok := err.(UnknownComponentsError)
		assert.True(t, ok, "expected UnknownComponentsError for 0x%02X", b)
		assert.Equal(t, b, unknownErr.Code)
	}
}

func TestComponentString(t *testing.T) {
	assert.Equal(t, "MBC3", Component{Kind: KindMBC, MBC: 3}.String())
	assert.Equal(t, "ROM (64 KiB)", Component{Kind: KindROM, Size: testROMBytes}.String())
	assert.Equal(t, "BATTERY", Component{Kind: KindBattery}.String())
	assert.Equal(t, "BANDAI TAMA5", Component{Kind: KindBandaiTAMA5}.String())
}
