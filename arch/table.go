package arch

// define builds a single-variant, single-byte opcode record.
func define(b byte, token bool, m Mnemonic, a1 AddressMode, s1 OperandSize, a2 AddressMode, s2 OperandSize) *OpCode {
	return &OpCode{
		Bytes:              []byte{b},
		Mnemonics:          []Mnemonic{m},
		AddressingMethods1: []AddressMode{a1},
		AddressingMethods2: []AddressMode{a2},
		OperandSizes1:      []OperandSize{s1},
		OperandSizes2:      []OperandSize{s2},
		HasRegisterToken:   token,
	}
}

// Pre-populated single-byte opcodes.
//
// Group opcodes whose reg field carries an opcode extension (0x80-0x83,
// 0xF6/0xF7, ...) are absent: the register token derives its reg field from
// the operands alone and cannot express an extension.
var (
	AddRm8R8   = define(0x00, true, ADD, RegisterOrMemoryAddress, Byte, RegisterAddress, Byte)
	AddRm32R32 = define(0x01, true, ADD, RegisterOrMemoryAddress, Dword, RegisterAddress, Dword)
	AddR8Rm8   = define(0x02, true, ADD, RegisterAddress, Byte, RegisterOrMemoryAddress, Byte)
	AddR32Rm32 = define(0x03, true, ADD, RegisterAddress, Dword, RegisterOrMemoryAddress, Dword)

	OrRm8R8   = define(0x08, true, OR, RegisterOrMemoryAddress, Byte, RegisterAddress, Byte)
	OrRm32R32 = define(0x09, true, OR, RegisterOrMemoryAddress, Dword, RegisterAddress, Dword)
	OrR8Rm8   = define(0x0A, true, OR, RegisterAddress, Byte, RegisterOrMemoryAddress, Byte)
	OrR32Rm32 = define(0x0B, true, OR, RegisterAddress, Dword, RegisterOrMemoryAddress, Dword)

	AdcRm8R8   = define(0x10, true, ADC, RegisterOrMemoryAddress, Byte, RegisterAddress, Byte)
	AdcRm32R32 = define(0x11, true, ADC, RegisterOrMemoryAddress, Dword, RegisterAddress, Dword)
	AdcR8Rm8   = define(0x12, true, ADC, RegisterAddress, Byte, RegisterOrMemoryAddress, Byte)
	AdcR32Rm32 = define(0x13, true, ADC, RegisterAddress, Dword, RegisterOrMemoryAddress, Dword)

	SbbRm8R8   = define(0x18, true, SBB, RegisterOrMemoryAddress, Byte, RegisterAddress, Byte)
	SbbRm32R32 = define(0x19, true, SBB, RegisterOrMemoryAddress, Dword, RegisterAddress, Dword)
	SbbR8Rm8   = define(0x1A, true, SBB, RegisterAddress, Byte, RegisterOrMemoryAddress, Byte)
	SbbR32Rm32 = define(0x1B, true, SBB, RegisterAddress, Dword, RegisterOrMemoryAddress, Dword)

	AndRm8R8   = define(0x20, true, AND, RegisterOrMemoryAddress, Byte, RegisterAddress, Byte)
	AndRm32R32 = define(0x21, true, AND, RegisterOrMemoryAddress, Dword, RegisterAddress, Dword)
	AndR8Rm8   = define(0x22, true, AND, RegisterAddress, Byte, RegisterOrMemoryAddress, Byte)
	AndR32Rm32 = define(0x23, true, AND, RegisterAddress, Dword, RegisterOrMemoryAddress, Dword)

	SubRm8R8   = define(0x28, true, SUB, RegisterOrMemoryAddress, Byte, RegisterAddress, Byte)
	SubRm32R32 = define(0x29, true, SUB, RegisterOrMemoryAddress, Dword, RegisterAddress, Dword)
	SubR8Rm8   = define(0x2A, true, SUB, RegisterAddress, Byte, RegisterOrMemoryAddress, Byte)
	SubR32Rm32 = define(0x2B, true, SUB, RegisterAddress, Dword, RegisterOrMemoryAddress, Dword)

	XorRm8R8   = define(0x30, true, XOR, RegisterOrMemoryAddress, Byte, RegisterAddress, Byte)
	XorRm32R32 = define(0x31, true, XOR, RegisterOrMemoryAddress, Dword, RegisterAddress, Dword)
	XorR8Rm8   = define(0x32, true, XOR, RegisterAddress, Byte, RegisterOrMemoryAddress, Byte)
	XorR32Rm32 = define(0x33, true, XOR, RegisterAddress, Dword, RegisterOrMemoryAddress, Dword)

	CmpRm8R8   = define(0x38, true, CMP, RegisterOrMemoryAddress, Byte, RegisterAddress, Byte)
	CmpRm32R32 = define(0x39, true, CMP, RegisterOrMemoryAddress, Dword, RegisterAddress, Dword)
	CmpR8Rm8   = define(0x3A, true, CMP, RegisterAddress, Byte, RegisterOrMemoryAddress, Byte)
	CmpR32Rm32 = define(0x3B, true, CMP, RegisterAddress, Dword, RegisterOrMemoryAddress, Dword)

	PushImm32 = define(0x68, false, PUSH, ImmediateData, Dword, NoAddress, 0)
	PushImm8  = define(0x6A, false, PUSH, ImmediateData, Byte, NoAddress, 0)

	TestRm8R8   = define(0x84, true, TEST, RegisterOrMemoryAddress, Byte, RegisterAddress, Byte)
	TestRm32R32 = define(0x85, true, TEST, RegisterOrMemoryAddress, Dword, RegisterAddress, Dword)
	XchgRm8R8   = define(0x86, true, XCHG, RegisterOrMemoryAddress, Byte, RegisterAddress, Byte)
	XchgRm32R32 = define(0x87, true, XCHG, RegisterOrMemoryAddress, Dword, RegisterAddress, Dword)

	MovRm8R8   = define(0x88, true, MOV, RegisterOrMemoryAddress, Byte, RegisterAddress, Byte)
	MovRm32R32 = define(0x89, true, MOV, RegisterOrMemoryAddress, Dword, RegisterAddress, Dword)
	MovR8Rm8   = define(0x8A, true, MOV, RegisterAddress, Byte, RegisterOrMemoryAddress, Byte)
	MovR32Rm32 = define(0x8B, true, MOV, RegisterAddress, Dword, RegisterOrMemoryAddress, Dword)

	LeaR32M32 = define(0x8D, true, LEA, RegisterAddress, Dword, RegisterOrMemoryAddress, Dword)

	Nop = define(0x90, false, NOP, NoAddress, 0, NoAddress, 0)

	RetImm16 = define(0xC2, false, RET, ImmediateData, Word, NoAddress, 0)
	Ret      = define(0xC3, false, RET, NoAddress, 0, NoAddress, 0)

	Int3    = define(0xCC, false, INT3, NoAddress, 0, NoAddress, 0)
	IntImm8 = define(0xCD, false, INT, ImmediateData, Byte, NoAddress, 0)

	CallRel32 = define(0xE8, false, CALL, RelativeOffset, Dword, NoAddress, 0)
	JmpRel32  = define(0xE9, false, JMP, RelativeOffset, Dword, NoAddress, 0)
	JmpRel8   = define(0xEB, false, JMP, RelativeOffset, Byte, NoAddress, 0)

	Hlt = define(0xF4, false, HLT, NoAddress, 0, NoAddress, 0)
)

// OpCodes lists every pre-populated opcode.
var OpCodes = []*OpCode{
	AddRm8R8, AddRm32R32, AddR8Rm8, AddR32Rm32,
	OrRm8R8, OrRm32R32, OrR8Rm8, OrR32Rm32,
	AdcRm8R8, AdcRm32R32, AdcR8Rm8, AdcR32Rm32,
	SbbRm8R8, SbbRm32R32, SbbR8Rm8, SbbR32Rm32,
	AndRm8R8, AndRm32R32, AndR8Rm8, AndR32Rm32,
	SubRm8R8, SubRm32R32, SubR8Rm8, SubR32Rm32,
	XorRm8R8, XorRm32R32, XorR8Rm8, XorR32Rm32,
	CmpRm8R8, CmpRm32R32, CmpR8Rm8, CmpR32Rm32,
	PushImm32, PushImm8,
	TestRm8R8, TestRm32R32, XchgRm8R8, XchgRm32R32,
	MovRm8R8, MovRm32R32, MovR8Rm8, MovR32Rm32,
	LeaR32M32,
	Nop,
	RetImm16, Ret,
	Int3, IntImm8,
	CallRel32, JmpRel32, JmpRel8,
	Hlt,
}

// LookupOpCode returns the pre-populated opcode record for the given opcode
// byte. Returns nil if the byte is not defined in the table.
func LookupOpCode(b byte) *OpCode {
	for _, op := range OpCodes {
		if len(op.Bytes) == 1 && op.Bytes[0] == b {
			return op
		}
	}
	return nil
}
