// Package options contains the program options.
package options

// DefaultCodeStart is the address the entry point jump at 0x100 usually
// targets, right after the cartridge header.
const DefaultCodeStart = 0x0150

// Program options of the disassembler.
type Program struct {
	Input  string
	Output string

	Batch     string
	CodeStart string

	NoCheck    bool
	HeaderOnly bool

	Debug bool
	Quiet bool
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	CodeStart uint16 // file offset the linear sweep starts at

	HexComments    bool
	OffsetComments bool
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		CodeStart:      DefaultCodeStart,
		HexComments:    true,
		OffsetComments: true,
	}
}
