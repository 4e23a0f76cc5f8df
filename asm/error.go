package asm

import "github.com/pkg/errors"

// Encoding failures. All of them signal defective caller input or a
// mismatch between an instruction and its opcode metadata; none are
// transient. Test for them with errors.Is.
var (
	// ErrUnsupportedMnemonic means the instruction's mnemonic is not among
	// the opcode's declared variants.
	ErrUnsupportedMnemonic = errors.New("unsupported mnemonic")

	// ErrUnsupportedAddressing means an operand was routed to the register
	// token resolver with an address mode it cannot pack into a token.
	ErrUnsupportedAddressing = errors.New("unsupported addressing method")

	// ErrInvalidOperand means an operand's value/correction combination
	// matches no recognized encoding pattern.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrUnsupportedSize means a numeric write was requested at a size
	// other than byte, word or dword.
	ErrUnsupportedSize = errors.New("unsupported operand size")
)
