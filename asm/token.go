package asm

import (
	"github.com/pkg/errors"

	"github.com/moien007/AsmResolver/arch"
)

// addressFallback is the rm field emitted for a reg-or-mem operand that
// holds an absolute address instead of a register. With mod=00 it reads as
// the [disp32] form with no base register.
const addressFallback = 5

// registerTokenPart computes the contribution a single operand makes to the
// instruction's register token byte.
func registerTokenPart(method arch.AddressMode, op *arch.Operand) (byte, error) {
	switch method {
	case arch.RegisterAddress:
		r, ok := op.Value.(arch.Register)
		if !ok {
			return 0, errors.Wrapf(ErrUnsupportedAddressing, "%s operand %s does not hold a register", method, op)
		}
		return (byte(r) & 7) << 3, nil

	case arch.RegisterOrMemoryAddress:
		mod, err := determineModifier(op)
		if err != nil {
			return 0, err
		}
		if r, ok := op.Value.(arch.Register); ok {
			return byte(mod) | (byte(r) & 7), nil
		}
		// Absolute address. The resolved modifier's mod bits are not
		// folded in; a displaced absolute address cannot be expressed.
		return addressFallback, nil
	}

	return 0, errors.Wrapf(ErrUnsupportedAddressing, "method %s contributes no register token", method)
}

// determineModifier resolves the mod field for a reg-or-mem operand.
func determineModifier(op *arch.Operand) (arch.RegOrMemModifier, error) {
	switch op.Value.(type) {
	case arch.Register:
		switch op.Correction.(type) {
		case nil:
			if op.Type == arch.Dereferenced {
				return arch.RegisterPointer, nil
			}
			return arch.RegisterOnly, nil
		case arch.ShortCorrection:
			return arch.RegisterDispShortPointer, nil
		case arch.LongCorrection:
			return arch.RegisterDispLongPointer, nil
		}
	case arch.Address:
		return arch.RegisterPointer, nil
	}

	return 0, errors.Wrapf(ErrInvalidOperand, "operand %s has no register/memory encoding", op)
}
