package arch

import (
	"fmt"
	"strings"
)

// Value is an operand's payload: a register, a raw 32-bit address, or a
// literal immediate. The three variants are mutually exclusive.
type Value interface {
	isValue()
}

// Address is a raw, unsigned 32-bit memory address.
type Address uint32

// Immediate is a literal numeric value embedded in the instruction stream.
type Immediate uint64

func (Register) isValue()  {}
func (Address) isValue()   {}
func (Immediate) isValue() {}

// Correction is an optional signed displacement written after an operand's
// value bytes. A nil Correction means no displacement.
type Correction interface {
	isCorrection()
}

// ShortCorrection is a 1-byte signed displacement.
type ShortCorrection int8

// LongCorrection is a 4-byte signed displacement.
type LongCorrection int32

func (ShortCorrection) isCorrection() {}
func (LongCorrection) isCorrection()  {}

// Operand describes a single instruction operand.
type Operand struct {
	Value      Value       // Register, Address or Immediate.
	Correction Correction  // Optional displacement.
	Type       OperandType // Direct or dereferenced; relevant for plain register operands.
}

// Reg creates a direct register operand: eax.
func Reg(r Register) *Operand {
	return &Operand{Value: r}
}

// Deref creates a register-indirect operand: [eax].
func Deref(r Register) *Operand {
	return &Operand{Value: r, Type: Dereferenced}
}

// DerefDisp8 creates a register-indirect operand with a short displacement: [eax-1].
func DerefDisp8(r Register, disp int8) *Operand {
	return &Operand{Value: r, Correction: ShortCorrection(disp), Type: Dereferenced}
}

// DerefDisp32 creates a register-indirect operand with a long displacement: [eax+0x1000].
func DerefDisp32(r Register, disp int32) *Operand {
	return &Operand{Value: r, Correction: LongCorrection(disp), Type: Dereferenced}
}

// Addr creates an absolute memory address operand: [0x401000].
func Addr(addr uint32) *Operand {
	return &Operand{Value: Address(addr), Type: Dereferenced}
}

// Imm creates an immediate value operand: 0x1234.
func Imm(v uint64) *Operand {
	return &Operand{Value: Immediate(v)}
}

// String returns an assembly-flavoured representation of the operand.
func (o *Operand) String() string {
	var sb strings.Builder

	if o.Type == Dereferenced {
		sb.WriteByte('[')
	}

	switch v := o.Value.(type) {
	case Register:
		sb.WriteString(v.String())
	case Address:
		fmt.Fprintf(&sb, "0x%x", uint32(v))
	case Immediate:
		fmt.Fprintf(&sb, "0x%x", uint64(v))
	}

	switch c := o.Correction.(type) {
	case ShortCorrection:
		fmt.Fprintf(&sb, "%+d", int8(c))
	case LongCorrection:
		fmt.Fprintf(&sb, "%+d", int32(c))
	}

	if o.Type == Dereferenced {
		sb.WriteByte(']')
	}

	return sb.String()
}

// Instruction is a fully formed instruction, ready to be encoded.
// Operand2 is meaningful only when Operand1 is present.
type Instruction struct {
	OpCode   *OpCode
	Mnemonic Mnemonic
	Operand1 *Operand
	Operand2 *Operand
}
