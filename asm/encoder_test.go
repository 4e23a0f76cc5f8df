package asm

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moien007/AsmResolver/arch"
)

func encode(t *testing.T, instr *arch.Instruction) []byte {
	t.Helper()

	var buf bytes.Buffer
	err := NewEncoder(&buf).Encode(instr)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		instr *arch.Instruction
		want  []byte
	}{
		{
			"add eax, ebx",
			&arch.Instruction{OpCode: arch.AddRm32R32, Mnemonic: arch.ADD, Operand1: arch.Reg(arch.EAX), Operand2: arch.Reg(arch.EBX)},
			[]byte{0x01, 0xD8},
		},
		{
			"add [ecx], eax",
			&arch.Instruction{OpCode: arch.AddRm32R32, Mnemonic: arch.ADD, Operand1: arch.Deref(arch.ECX), Operand2: arch.Reg(arch.EAX)},
			[]byte{0x01, 0x01},
		},
		{
			"add [ebp-1], eax",
			&arch.Instruction{OpCode: arch.AddRm32R32, Mnemonic: arch.ADD, Operand1: arch.DerefDisp8(arch.EBP, -1), Operand2: arch.Reg(arch.EAX)},
			[]byte{0x01, 0x45, 0xFF},
		},
		{
			"add [edx+0x12345678], ecx",
			&arch.Instruction{OpCode: arch.AddRm32R32, Mnemonic: arch.ADD, Operand1: arch.DerefDisp32(arch.EDX, 0x12345678), Operand2: arch.Reg(arch.ECX)},
			[]byte{0x01, 0x8A, 0x78, 0x56, 0x34, 0x12},
		},
		{
			"add [0x403000], eax",
			&arch.Instruction{OpCode: arch.AddRm32R32, Mnemonic: arch.ADD, Operand1: arch.Addr(0x403000), Operand2: arch.Reg(arch.EAX)},
			[]byte{0x01, 0x05, 0x00, 0x30, 0x40, 0x00},
		},
		{
			"mov esi, edi",
			&arch.Instruction{OpCode: arch.MovRm32R32, Mnemonic: arch.MOV, Operand1: arch.Reg(arch.ESI), Operand2: arch.Reg(arch.EDI)},
			[]byte{0x89, 0xFE},
		},
		{
			"mov eax, [ebx+8]",
			&arch.Instruction{OpCode: arch.MovR32Rm32, Mnemonic: arch.MOV, Operand1: arch.Reg(arch.EAX), Operand2: arch.DerefDisp8(arch.EBX, 8)},
			[]byte{0x8B, 0x43, 0x08},
		},
		{
			"lea eax, [ebx+8]",
			&arch.Instruction{OpCode: arch.LeaR32M32, Mnemonic: arch.LEA, Operand1: arch.Reg(arch.EAX), Operand2: arch.DerefDisp8(arch.EBX, 8)},
			[]byte{0x8D, 0x43, 0x08},
		},
		{
			"push 0x12345678",
			&arch.Instruction{OpCode: arch.PushImm32, Mnemonic: arch.PUSH, Operand1: arch.Imm(0x12345678)},
			[]byte{0x68, 0x78, 0x56, 0x34, 0x12},
		},
		{
			"push byte 5",
			&arch.Instruction{OpCode: arch.PushImm8, Mnemonic: arch.PUSH, Operand1: arch.Imm(5)},
			[]byte{0x6A, 0x05},
		},
		{
			"ret 0x1234",
			&arch.Instruction{OpCode: arch.RetImm16, Mnemonic: arch.RET, Operand1: arch.Imm(0x1234)},
			[]byte{0xC2, 0x34, 0x12},
		},
		{
			"int 0x80",
			&arch.Instruction{OpCode: arch.IntImm8, Mnemonic: arch.INT, Operand1: arch.Imm(0x80)},
			[]byte{0xCD, 0x80},
		},
		{
			"ret",
			&arch.Instruction{OpCode: arch.Ret, Mnemonic: arch.RET},
			[]byte{0xC3},
		},
		{
			"nop",
			&arch.Instruction{OpCode: arch.Nop, Mnemonic: arch.NOP},
			[]byte{0x90},
		},
		{
			// Relative offsets are reserved; no operand bytes are emitted.
			"jmp rel32",
			&arch.Instruction{OpCode: arch.JmpRel32, Mnemonic: arch.JMP, Operand1: arch.Imm(0x10)},
			[]byte{0xE9},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, encode(t, tc.instr))
		})
	}
}

func TestEncodeOperandOrder(t *testing.T) {
	// Operand 2 is never written without operand 1.
	var buf bytes.Buffer
	err := NewEncoder(&buf).Encode(&arch.Instruction{
		OpCode:   arch.AddRm32R32,
		Mnemonic: arch.ADD,
		Operand2: arch.Reg(arch.EBX),
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x18}, buf.Bytes())
}

func TestEncodeErrors(t *testing.T) {
	badSize := &arch.OpCode{
		Bytes:              []byte{0xC2},
		Mnemonics:          []arch.Mnemonic{arch.RET},
		AddressingMethods1: []arch.AddressMode{arch.ImmediateData},
		AddressingMethods2: []arch.AddressMode{arch.NoAddress},
		OperandSizes1:      []arch.OperandSize{0},
		OperandSizes2:      []arch.OperandSize{0},
	}

	tests := []struct {
		name  string
		instr *arch.Instruction
		want  error
	}{
		{
			"mnemonic not declared by opcode",
			&arch.Instruction{OpCode: arch.AddRm32R32, Mnemonic: arch.MOV, Operand1: arch.Reg(arch.EAX), Operand2: arch.Reg(arch.EBX)},
			ErrUnsupportedMnemonic,
		},
		{
			"immediate in a reg-or-mem slot",
			&arch.Instruction{OpCode: arch.AddRm32R32, Mnemonic: arch.ADD, Operand1: arch.Imm(5), Operand2: arch.Reg(arch.EAX)},
			ErrInvalidOperand,
		},
		{
			"immediate in a register slot",
			&arch.Instruction{OpCode: arch.AddRm32R32, Mnemonic: arch.ADD, Operand1: arch.Reg(arch.EAX), Operand2: arch.Imm(1)},
			ErrUnsupportedAddressing,
		},
		{
			"operand size outside byte/word/dword",
			&arch.Instruction{OpCode: badSize, Mnemonic: arch.RET, Operand1: arch.Imm(1)},
			ErrUnsupportedSize,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := NewEncoder(&buf).Encode(tc.instr)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEncodeUnsupportedMnemonicWritesOpcodeOnly(t *testing.T) {
	var buf bytes.Buffer
	err := NewEncoder(&buf).Encode(&arch.Instruction{
		OpCode:   arch.AddRm32R32,
		Mnemonic: arch.XCHG,
		Operand1: arch.Reg(arch.EAX),
		Operand2: arch.Reg(arch.EBX),
	})
	require.ErrorIs(t, err, ErrUnsupportedMnemonic)

	// The opcode byte goes out before the variant lookup; nothing follows it.
	assert.Equal(t, []byte{0x01}, buf.Bytes())
}

// A broken sink must surface as an error, not a panic.
func TestEncodeSinkFailure(t *testing.T) {
	err := NewEncoder(failWriter{}).Encode(&arch.Instruction{OpCode: arch.Nop, Mnemonic: arch.NOP})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink closed")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}
