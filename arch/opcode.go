// Package arch defines the x86 instruction metadata model along with
// some related helper functions.
package arch

import "strings"

// Mnemonic identifies a named variant of an opcode.
type Mnemonic byte

// Known mnemonics.
const (
	ADD Mnemonic = iota
	ADC
	AND
	CALL
	CMP
	HLT
	INT
	INT3
	JMP
	LEA
	MOV
	NOP
	OR
	PUSH
	RET
	SBB
	SUB
	TEST
	XCHG
	XOR
)

// ParseMnemonic returns the mnemonic for the given instruction name.
// Returns false if the name is not recognized.
func ParseMnemonic(name string) (Mnemonic, bool) {
	switch strings.ToUpper(name) {
	case "ADD":
		return ADD, true
	case "ADC":
		return ADC, true
	case "AND":
		return AND, true
	case "CALL":
		return CALL, true
	case "CMP":
		return CMP, true
	case "HLT":
		return HLT, true
	case "INT":
		return INT, true
	case "INT3":
		return INT3, true
	case "JMP":
		return JMP, true
	case "LEA":
		return LEA, true
	case "MOV":
		return MOV, true
	case "NOP":
		return NOP, true
	case "OR":
		return OR, true
	case "PUSH":
		return PUSH, true
	case "RET":
		return RET, true
	case "SBB":
		return SBB, true
	case "SUB":
		return SUB, true
	case "TEST":
		return TEST, true
	case "XCHG":
		return XCHG, true
	case "XOR":
		return XOR, true
	}
	return 0, false
}

// String returns the name for the given mnemonic.
func (m Mnemonic) String() string {
	switch m {
	case ADD:
		return "ADD"
	case ADC:
		return "ADC"
	case AND:
		return "AND"
	case CALL:
		return "CALL"
	case CMP:
		return "CMP"
	case HLT:
		return "HLT"
	case INT:
		return "INT"
	case INT3:
		return "INT3"
	case JMP:
		return "JMP"
	case LEA:
		return "LEA"
	case MOV:
		return "MOV"
	case NOP:
		return "NOP"
	case OR:
		return "OR"
	case PUSH:
		return "PUSH"
	case RET:
		return "RET"
	case SBB:
		return "SBB"
	case SUB:
		return "SUB"
	case TEST:
		return "TEST"
	case XCHG:
		return "XCHG"
	case XOR:
		return "XOR"
	}
	return ""
}

// OpCode describes one opcode and the mnemonic variants it supports.
//
// The per-variant slices run parallel to each other: entry i of each slice
// describes variant i. The metadata provider guarantees equal lengths; the
// encoder does not re-validate this.
type OpCode struct {
	Bytes              []byte        // Opcode byte sequence, length >= 1. Only single-byte opcodes are defined so far.
	Mnemonics          []Mnemonic    // Supported mnemonic variants.
	AddressingMethods1 []AddressMode // Address mode for operand slot 1, per variant.
	AddressingMethods2 []AddressMode // Address mode for operand slot 2, per variant.
	OperandSizes1      []OperandSize // Operand size for slot 1, per variant.
	OperandSizes2      []OperandSize // Operand size for slot 2, per variant.
	HasRegisterToken   bool          // Does this opcode emit a register token byte?
}

// IndexOf returns the variant index for the given mnemonic.
// Returns -1 if the opcode does not support it.
func (op *OpCode) IndexOf(m Mnemonic) int {
	for i, v := range op.Mnemonics {
		if v == m {
			return i
		}
	}
	return -1
}
