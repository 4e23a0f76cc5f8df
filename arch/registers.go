package arch

import "strings"

// Register identifies one of the eight general purpose registers.
// Its numeric value is the register's fixed 3-bit machine code.
type Register byte

// Known registers.
const (
	EAX Register = 0
	ECX Register = 1
	EDX Register = 2
	EBX Register = 3
	ESP Register = 4
	EBP Register = 5
	ESI Register = 6
	EDI Register = 7
)

// IsRegister returns true if the given name represents a known register.
func IsRegister(name string) bool {
	_, ok := RegisterByName(name)
	return ok
}

// RegisterByName returns the register with the given name.
// Returns false if the name is not recognized.
func RegisterByName(name string) (Register, bool) {
	switch strings.ToLower(name) {
	case "eax":
		return EAX, true
	case "ecx":
		return ECX, true
	case "edx":
		return EDX, true
	case "ebx":
		return EBX, true
	case "esp":
		return ESP, true
	case "ebp":
		return EBP, true
	case "esi":
		return ESI, true
	case "edi":
		return EDI, true
	}
	return 0, false
}

// String returns the name associated with the given register.
// Returns "" if the register is not recognized.
func (r Register) String() string {
	switch r {
	case EAX:
		return "EAX"
	case ECX:
		return "ECX"
	case EDX:
		return "EDX"
	case EBX:
		return "EBX"
	case ESP:
		return "ESP"
	case EBP:
		return "EBP"
	case ESI:
		return "ESI"
	case EDI:
		return "EDI"
	}
	return ""
}
