package arch

// AddressMode defines how an instruction operand slot is encoded.
type AddressMode byte

// Known address modes.
const (
	NoAddress               AddressMode = 0 // unused operand slot
	RegisterAddress         AddressMode = 1 // register, packed into the token's reg field
	RegisterOrMemoryAddress AddressMode = 2 // register or memory reference, packed into the token's mod/rm fields
	MemoryAddress           AddressMode = 3 // raw address, written after the token
	DirectAddress           AddressMode = 4 // raw address, written after the token
	ImmediateData           AddressMode = 5 // literal value, written after the token
	RelativeOffset          AddressMode = 6 // reserved for offset patching; no bytes emitted
)

// String returns the name for the given address mode.
func (m AddressMode) String() string {
	switch m {
	case NoAddress:
		return "NoAddress"
	case RegisterAddress:
		return "RegisterAddress"
	case RegisterOrMemoryAddress:
		return "RegisterOrMemoryAddress"
	case MemoryAddress:
		return "MemoryAddress"
	case DirectAddress:
		return "DirectAddress"
	case ImmediateData:
		return "ImmediateData"
	case RelativeOffset:
		return "RelativeOffset"
	}
	return "AddressMode(unknown)"
}
