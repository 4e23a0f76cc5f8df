package arch

// OperandSize defines the byte width of an encoded operand value.
// The numeric value equals the number of bytes written.
type OperandSize byte

// Known operand sizes.
const (
	Byte  OperandSize = 1
	Word  OperandSize = 2
	Dword OperandSize = 4
)

// String returns the name for the given operand size.
func (s OperandSize) String() string {
	switch s {
	case Byte:
		return "Byte"
	case Word:
		return "Word"
	case Dword:
		return "Dword"
	}
	return "OperandSize(unknown)"
}

// RegOrMemModifier defines the mod field of a register token.
// The numeric value carries the two mod bits pre-shifted into bits 7-6,
// ready to be OR'ed into the token byte.
type RegOrMemModifier byte

// Known modifiers.
const (
	RegisterPointer          RegOrMemModifier = 0x00 // register indirect, no displacement
	RegisterDispShortPointer RegOrMemModifier = 0x40 // 1-byte signed displacement follows
	RegisterDispLongPointer  RegOrMemModifier = 0x80 // 4-byte signed displacement follows
	RegisterOnly             RegOrMemModifier = 0xC0 // the register itself, no dereference
)

// OperandType distinguishes a direct value from a dereferenced one.
// It matters only for a register operand without displacement, where it
// selects between RegisterOnly and RegisterPointer.
type OperandType byte

// Known operand types.
const (
	Normal       OperandType = 0 // eax
	Dereferenced OperandType = 1 // [eax]
)
