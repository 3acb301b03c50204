package cartridge

import "fmt"

// UnknownROMSizeError is returned for a ROM capacity code that is not part
// of the capacity table.
type UnknownROMSizeError struct {
	Code byte
}

// Error implements the error interface.
func (e UnknownROMSizeError) Error() string {
	return fmt.Sprintf("unknown ROM size code 0x%02X", e.Code)
}

// UnknownRAMSizeError is returned for a RAM capacity code that is not part
// of the capacity table.
type UnknownRAMSizeError struct {
	Code byte
}

// Error implements the error interface.
func (e UnknownRAMSizeError) Error() string {
	return fmt.Sprintf("unknown RAM size code 0x%02X", e.Code)
}

// UnknownComponentsError is returned for a component code byte that is not
// part of the component table.
type UnknownComponentsError struct {
	Code byte
}

// Error implements the error interface.
func (e UnknownComponentsError) Error() string {
	return fmt.Sprintf("unknown cartridge components code 0x%02X", e.Code)
}

// ChecksumError is returned when the computed header checksum does not
// match the checksum byte stored in the header.
type ChecksumError struct {
	Computed byte
	Stored   byte
}

// Error implements the error interface.
func (e ChecksumError) Error() string {
	return fmt.Sprintf("header checksum mismatch: computed 0x%02X, stored 0x%02X",
		e.Computed, e.Stored)
}
