package cartridge

import "fmt"

// ComponentKind identifies a class of hardware on the cartridge board.
type ComponentKind uint8

// Hardware classes that can appear in the component list.
const (
	KindROM ComponentKind = iota
	KindMBC
	KindBattery
	KindMMM01
	KindRAM
	KindSRAM
	KindTimer
	KindRumble
	KindPocketCamera
	KindBandaiTAMA5
	KindHudsonHuC3
	KindHudsonHuC1
)

// String implements the fmt.Stringer interface.
func (k ComponentKind) String() string {
	switch k {
	case KindROM:
		return "ROM"
	case KindMBC:
		return "MBC"
	case KindBattery:
		return "BATTERY"
	case KindMMM01:
		return "MMM01"
	case KindRAM:
		return "RAM"
	case KindSRAM:
		return "SRAM"
	case KindTimer:
		return "TIMER"
	case KindRumble:
		return "RUMBLE"
	case KindPocketCamera:
		return "POCKET CAMERA"
	case KindBandaiTAMA5:
		return "BANDAI TAMA5"
	case KindHudsonHuC3:
		return "HUDSON HuC-3"
	case KindHudsonHuC1:
		return "HUDSON HuC-1"
	default:
		return fmt.Sprintf("UNKNOWN (%d)", uint8(k))
	}
}

// Component is one piece of hardware on the cartridge board. Components
// carrying a capacity embed the decoded byte count so that a component is
// self-describing without access to the header.
type Component struct {
	Kind ComponentKind
	MBC  uint8  // bank controller kind (1, 2, 3 or 5), set only for KindMBC
	Size uint32 // capacity in bytes, set for KindROM, KindRAM and KindSRAM
}

// String implements the fmt.Stringer interface.
func (c Component) String() string {
	switch {
	case c.Kind == KindMBC:
		return fmt.Sprintf("MBC%d", c.MBC)
	case c.Size > 0:
		return fmt.Sprintf("%s (%d KiB)", c.Kind, c.Size/1024)
	default:
		return c.Kind.String()
	}
}

// decodeComponents maps the component code byte at offset 0x147 to the
// ordered list of hardware present on the cartridge board. The order of
// each list is fixed and preserved for display and positional checks.
func decodeComponents(code byte, romSize ROMSize, ramSize RAMSize) ([]Component, error) {
	rom := Component{Kind: KindROM, Size: romSize.Bytes()}
	ram := Component{Kind: KindRAM, Size: ramSize.Bytes()}
	sram := Component{Kind: KindSRAM, Size: ramSize.Bytes()}
	battery := Component{Kind: KindBattery}
	timer := Component{Kind: KindTimer}
	rumble := Component{Kind: KindRumble}
	mmm := Component{Kind: KindMMM01}
	mbc := func(kind uint8) Component {
		return Component{Kind: KindMBC, MBC: kind}
	}

	switch code {
	case 0x00:
		return []Component{rom}, nil
	case 0x01:
		return []Component{rom, mbc(1)}, nil
	case 0x02:
		return []Component{rom, mbc(1), ram}, nil
	case 0x03:
		return []Component{rom, mbc(1), ram, battery}, nil
	case 0x05:
		return []Component{rom, mbc(2)}, nil
	case 0x06:
		return []Component{rom, mbc(2), battery}, nil
	case 0x08:
		return []Component{rom, ram}, nil
	case 0x09:
		return []Component{rom, ram, battery}, nil
	case 0x0B:
		return []Component{rom, mmm}, nil
	case 0x0C:
		return []Component{rom, mmm, sram}, nil
	case 0x0D:
		return []Component{rom, mmm, sram, battery}, nil
	case 0x0F:
		return []Component{rom, mbc(3), timer, battery}, nil
	case 0x10:
		return []Component{rom, mbc(3), timer, ram, battery}, nil
	case 0x11:
		return []Component{rom, mbc(3)}, nil
	case 0x12:
		return []Component{rom, mbc(3), ram}, nil
	case 0x13:
		return []Component{rom, mbc(3), ram, battery}, nil
	case 0x19:
		return []Component{rom, mbc(5)}, nil
	case 0x1A:
		return []Component{rom, mbc(5), ram}, nil
	case 0x1B:
		return []Component{rom, mbc(5), ram, battery}, nil
	case 0x1C:
		return []Component{rom, mbc(5), rumble}, nil
	case 0x1D:
		return []Component{rom, mbc(5), rumble, sram}, nil
	case 0x1E:
		return []Component{rom, mbc(5), rumble, sram, battery}, nil
	case 0x1F:
		return []Component{rom, {Kind: KindPocketCamera}}, nil
	case 0xFD:
		return []Component{rom, {Kind: KindBandaiTAMA5}}, nil
	case 0xFE:
		return []Component{rom, {Kind: KindHudsonHuC3}}, nil
	case 0xFF:
		return []Component{rom, {Kind: KindHudsonHuC1}, ram, battery}, nil
	default:
		return nil, UnknownComponentsError{Code: code}
	}
}
