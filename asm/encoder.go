// Package asm implements an instruction encoder which turns a fully formed
// instruction description into the exact byte sequence the processor expects.
package asm

import (
	"io"

	"github.com/pkg/errors"

	"github.com/moien007/AsmResolver/arch"
)

// Encoder serializes instructions to an output stream.
//
// The stream is written strictly sequentially and is never read or seeked.
// Bytes written before a failing step remain written; callers that need
// all-or-nothing emission should encode into a scratch buffer first.
// Encoding carries no state between instructions.
type Encoder struct {
	w io.Writer
}

// NewEncoder creates an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the encoded form of the given instruction.
func (e *Encoder) Encode(instr *arch.Instruction) (err error) {
	defer recoverOnPanic(&err)

	op := instr.OpCode
	for _, b := range op.Bytes {
		writeU8(e.w, b)
	}

	variant := op.IndexOf(instr.Mnemonic)
	if variant == -1 {
		return errors.Wrapf(ErrUnsupportedMnemonic, "opcode %#02x does not define %s", op.Bytes[0], instr.Mnemonic)
	}

	if op.HasRegisterToken {
		var token byte
		if token, err = e.registerToken(instr, variant); err != nil {
			return err
		}
		writeU8(e.w, token)
	}

	if instr.Operand1 != nil {
		if err = e.writeOperand(op.AddressingMethods1[variant], op.OperandSizes1[variant], instr.Operand1); err != nil {
			return err
		}
		if instr.Operand2 != nil {
			if err = e.writeOperand(op.AddressingMethods2[variant], op.OperandSizes2[variant], instr.Operand2); err != nil {
				return err
			}
		}
	}

	return nil
}

// registerToken combines both operand slots' contributions into the
// instruction's token byte. Only slots whose address mode packs into the
// token are routed to the resolver; the rest contribute nothing.
func (e *Encoder) registerToken(instr *arch.Instruction, variant int) (byte, error) {
	op := instr.OpCode

	part1, err := slotTokenPart(op.AddressingMethods1[variant], instr.Operand1)
	if err != nil {
		return 0, err
	}

	part2, err := slotTokenPart(op.AddressingMethods2[variant], instr.Operand2)
	if err != nil {
		return 0, err
	}

	return part1 | part2, nil
}

func slotTokenPart(method arch.AddressMode, op *arch.Operand) (byte, error) {
	if op == nil || (method != arch.RegisterAddress && method != arch.RegisterOrMemoryAddress) {
		return 0, nil
	}
	return registerTokenPart(method, op)
}

// writeOperand serializes the operand's value and optional correction.
// Address modes that carry no operand payload emit nothing.
func (e *Encoder) writeOperand(method arch.AddressMode, size arch.OperandSize, op *arch.Operand) error {
	switch method {
	case arch.MemoryAddress, arch.DirectAddress, arch.ImmediateData:
		if err := e.writeNumber(op, size); err != nil {
			return err
		}

	case arch.RegisterOrMemoryAddress:
		// A register here is fully described by the token byte. Anything
		// else is an absolute address, always written as four bytes
		// regardless of the declared operand size.
		switch v := op.Value.(type) {
		case arch.Register:
		case arch.Address:
			writeU32(e.w, uint32(v))
		case arch.Immediate:
			writeU32(e.w, uint32(v))
		default:
			return errors.Wrapf(ErrInvalidOperand, "operand %s has no value", op)
		}
	}

	switch c := op.Correction.(type) {
	case arch.ShortCorrection:
		writeI8(e.w, int8(c))
	case arch.LongCorrection:
		writeI32(e.w, int32(c))
	}

	return nil
}

// writeNumber writes the operand's numeric value little-endian at the
// declared size.
func (e *Encoder) writeNumber(op *arch.Operand, size arch.OperandSize) error {
	var v uint64
	switch val := op.Value.(type) {
	case arch.Immediate:
		v = uint64(val)
	case arch.Address:
		v = uint64(val)
	default:
		return errors.Wrapf(ErrInvalidOperand, "operand %s is not numeric", op)
	}

	switch size {
	case arch.Byte:
		writeU8(e.w, uint8(v))
	case arch.Word:
		writeU16(e.w, uint16(v))
	case arch.Dword:
		writeU32(e.w, uint32(v))
	default:
		return errors.Wrapf(ErrUnsupportedSize, "cannot write value of size %d", int(size))
	}

	return nil
}
