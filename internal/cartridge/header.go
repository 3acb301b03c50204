// Package cartridge decodes the fixed-layout metadata header of a
// cartridge ROM image into validated hardware information.
package cartridge

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/retroenv/gbgodisasm/internal/rom"
	"github.com/retroenv/retrogolib/set"
)

// Fixed byte regions of the metadata block at the start of the ROM image.
var (
	RegionTitle          = rom.Region{Start: 0x134, End: 0x144}
	RegionColorFlag      = rom.Region{Start: 0x143, End: 0x144}
	RegionSuperFlag      = rom.Region{Start: 0x146, End: 0x147}
	RegionComponents     = rom.Region{Start: 0x147, End: 0x148}
	RegionROMSize        = rom.Region{Start: 0x148, End: 0x149}
	RegionRAMSize        = rom.Region{Start: 0x149, End: 0x14A}
	RegionChecksumInput  = rom.Region{Start: 0x134, End: 0x14D}
	RegionChecksum       = rom.Region{Start: 0x14D, End: 0x14E}
	RegionGlobalChecksum = rom.Region{Start: 0x14E, End: 0x150}
)

// Flag byte values indicating enhanced hardware support.
const (
	colorModeFlag = 0x80
	superModeFlag = 0x03
)

// Header is the decoded, read-only view of one loaded ROM image.
// It is constructed once from a completed byte buffer and never mutated.
type Header struct {
	title          string
	components     []Component
	kinds          set.Set[ComponentKind]
	romSize        ROMSize
	ramSize        RAMSize
	colorMode      bool
	superMode      bool
	globalChecksum uint16
}

// New decodes the header and verifies the header checksum. This is the
// strict constructor used for loading; tolerant tooling can use NewNoCheck.
func New(buf []byte) (*Header, error) {
	h, err := NewNoCheck(buf)
	if err != nil {
		return nil, err
	}
	if err := VerifyChecksum(buf); err != nil {
		return nil, err
	}
	return h, nil
}

// NewNoCheck decodes the header without verifying the header checksum.
// Decoding is all or nothing: if any field fails to decode, no header is
// returned.
func NewNoCheck(buf []byte) (*Header, error) {
	title, err := decodeTitle(buf)
	if err != nil {
		return nil, err
	}

	romSizeCode, err := RegionROMSize.Byte(buf)
	if err != nil {
		return nil, err
	}
	romSize, err := decodeROMSize(romSizeCode)
	if err != nil {
		return nil, err
	}

	ramSizeCode, err := RegionRAMSize.Byte(buf)
	if err != nil {
		return nil, err
	}
	ramSize, err := decodeRAMSize(ramSizeCode)
	if err != nil {
		return nil, err
	}

	componentCode, err := RegionComponents.Byte(buf)
	if err != nil {
		return nil, err
	}
	components, err := decodeComponents(componentCode, romSize, ramSize)
	if err != nil {
		return nil, err
	}

	colorFlag, err := RegionColorFlag.Byte(buf)
	if err != nil {
		return nil, err
	}
	superFlag, err := RegionSuperFlag.Byte(buf)
	if err != nil {
		return nil, err
	}

	globalChecksum, err := RegionGlobalChecksum.WordBE(buf)
	if err != nil {
		return nil, err
	}

	kinds := set.New[ComponentKind]()
	for _, c := range components {
		kinds.Add(c.Kind)
	}

	return &Header{
		title:          title,
		components:     components,
		kinds:          kinds,
		romSize:        romSize,
		ramSize:        ramSize,
		colorMode:      colorFlag == colorModeFlag,
		superMode:      superFlag == superModeFlag,
		globalChecksum: globalChecksum,
	}, nil
}

// VerifyChecksum validates the stored header checksum against the computed
// sum over the checksum input region. The sum accumulates -(byte)-1 for
// every input byte in a wide signed integer, the low 8 bits of the final
// accumulator must equal the stored checksum byte.
func VerifyChecksum(buf []byte) error {
	input, err := RegionChecksumInput.Extract(buf)
	if err != nil {
		return err
	}
	stored, err := RegionChecksum.Byte(buf)
	if err != nil {
		return err
	}

	var acc int64
	for _, b := range input {
		acc += -int64(b) - 1
	}
	computed := byte(acc)

	if computed != stored {
		return ChecksumError{Computed: computed, Stored: stored}
	}
	return nil
}

func decodeTitle(buf []byte) (string, error) {
	raw, err := RegionTitle.Bytes16(buf)
	if err != nil {
		return "", err
	}
	title := strings.TrimRight(string(raw[:]), "\x00")
	// lossy text interpretation, invalid bytes are replaced and never fatal
	return strings.ToValidUTF8(title, string(utf8.RuneError)), nil
}

// Title returns the cartridge title.
func (h *Header) Title() string {
	return h.title
}

// Components returns the ordered list of hardware present on the
// cartridge board.
func (h *Header) Components() []Component {
	return h.components
}

// HasComponent returns whether the exact component is present on the
// cartridge board.
func (h *Header) HasComponent(c Component) bool {
	for _, have := range h.components {
		if have == c {
			return true
		}
	}
	return false
}

// HasKind returns whether any component of the given hardware class is
// present on the cartridge board.
func (h *Header) HasKind(kind ComponentKind) bool {
	return h.kinds.Contains(kind)
}

// ROMSize returns the ROM capacity class.
func (h *Header) ROMSize() ROMSize {
	return h.romSize
}

// RAMSize returns the RAM capacity class.
func (h *Header) RAMSize() RAMSize {
	return h.ramSize
}

// IsColorMode returns whether the cartridge requests color hardware mode.
func (h *Header) IsColorMode() bool {
	return h.colorMode
}

// IsSuperMode returns whether the cartridge requests super hardware mode.
func (h *Header) IsSuperMode() bool {
	return h.superMode
}

// GlobalChecksum returns the stored checksum over the whole ROM image.
// It is surfaced for informational output and not validated, real
// cartridges frequently ship with an incorrect value.
func (h *Header) GlobalChecksum() uint16 {
	return h.globalChecksum
}

// String implements the fmt.Stringer interface.
func (h *Header) String() string {
	names := make([]string, 0, len(h.components))
	for _, c := range h.components {
		names = append(names, c.String())
	}
	return fmt.Sprintf("%s | %s | ROM %s | RAM %s", h.title,
		strings.Join(names, "+"), h.romSize, h.ramSize)
}
