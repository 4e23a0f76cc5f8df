package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/moien007/AsmResolver/arch"
)

// parseLine turns a single listing line into an instruction.
// Returns nil for blank lines and comments.
func parseLine(line string) (*arch.Instruction, error) {
	if i := strings.IndexByte(line, ';'); i != -1 {
		line = line[:i]
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	name := line
	rest := ""
	if i := strings.IndexAny(line, " \t"); i != -1 {
		name, rest = line[:i], strings.TrimSpace(line[i+1:])
	}

	mnemonic, ok := arch.ParseMnemonic(name)
	if !ok {
		return nil, fmt.Errorf("unknown instruction %q", name)
	}

	var err error
	var op1, op2 *arch.Operand

	if rest != "" {
		parts := strings.Split(rest, ",")
		if len(parts) > 2 {
			return nil, fmt.Errorf("too many operands in %q", line)
		}

		if op1, err = parseOperand(strings.TrimSpace(parts[0])); err != nil {
			return nil, err
		}

		if len(parts) == 2 {
			if op2, err = parseOperand(strings.TrimSpace(parts[1])); err != nil {
				return nil, err
			}
		}
	}

	opcode := matchOpCode(mnemonic, op1, op2)
	if opcode == nil {
		return nil, fmt.Errorf("no known encoding for %q", line)
	}

	return &arch.Instruction{OpCode: opcode, Mnemonic: mnemonic, Operand1: op1, Operand2: op2}, nil
}

// parseOperand parses a register name, a memory reference in brackets, or a
// numeric immediate.
func parseOperand(s string) (*arch.Operand, error) {
	if s == "" {
		return nil, fmt.Errorf("missing operand")
	}

	if s[0] == '[' {
		if s[len(s)-1] != ']' {
			return nil, fmt.Errorf("unterminated memory operand %q", s)
		}
		return parseMemoryOperand(strings.TrimSpace(s[1 : len(s)-1]))
	}

	if r, ok := arch.RegisterByName(s); ok {
		return arch.Reg(r), nil
	}

	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid operand %q", s)
	}

	return arch.Imm(v), nil
}

// parseMemoryOperand parses the inside of [reg], [reg+disp], [reg-disp]
// or [address].
func parseMemoryOperand(s string) (*arch.Operand, error) {
	i := strings.IndexAny(s, "+-")

	base := s
	if i > 0 {
		base = strings.TrimSpace(s[:i])
	}

	if r, ok := arch.RegisterByName(base); ok {
		if i < 0 {
			return arch.Deref(r), nil
		}

		disp, err := strconv.ParseInt(strings.ReplaceAll(s[i:], " ", ""), 0, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid displacement in [%s]", s)
		}

		if disp >= math.MinInt8 && disp <= math.MaxInt8 {
			return arch.DerefDisp8(r, int8(disp)), nil
		}
		return arch.DerefDisp32(r, int32(disp)), nil
	}

	if i > 0 {
		return nil, fmt.Errorf("invalid memory operand [%s]", s)
	}

	addr, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid memory operand [%s]", s)
	}

	return arch.Addr(uint32(addr)), nil
}

// matchOpCode selects the table entry whose operand shapes fit the parsed
// operands. The encoding engine itself performs no selection; this is
// front end convenience. Prefers the shortest matching encoding.
func matchOpCode(m arch.Mnemonic, op1, op2 *arch.Operand) *arch.OpCode {
	var best *arch.OpCode
	var bestSize int

	for _, op := range arch.OpCodes {
		i := op.IndexOf(m)
		if i == -1 {
			continue
		}

		if !slotMatches(op.AddressingMethods1[i], op.OperandSizes1[i], op1) ||
			!slotMatches(op.AddressingMethods2[i], op.OperandSizes2[i], op2) {
			continue
		}

		size := int(op.OperandSizes1[i]) + int(op.OperandSizes2[i])
		if best == nil || size < bestSize {
			best, bestSize = op, size
		}
	}

	return best
}

// slotMatches reports whether the operand fits an opcode's operand slot.
// Register operands only match dword slots; the listing grammar has no
// 8-bit register names.
func slotMatches(method arch.AddressMode, size arch.OperandSize, op *arch.Operand) bool {
	switch method {
	case arch.NoAddress:
		return op == nil

	case arch.RegisterAddress:
		if op == nil || size != arch.Dword {
			return false
		}
		_, ok := op.Value.(arch.Register)
		return ok && op.Type == arch.Normal && op.Correction == nil

	case arch.RegisterOrMemoryAddress:
		if op == nil || size != arch.Dword {
			return false
		}
		switch op.Value.(type) {
		case arch.Register:
			return true
		case arch.Address:
			return op.Correction == nil
		}
		return false

	case arch.ImmediateData:
		if op == nil {
			return false
		}
		v, ok := op.Value.(arch.Immediate)
		return ok && fitsSize(uint64(v), size)
	}

	// Relative branches need offset patching, which the encoder reserves.
	return false
}

func fitsSize(v uint64, size arch.OperandSize) bool {
	switch size {
	case arch.Byte:
		return v <= math.MaxUint8
	case arch.Word:
		return v <= math.MaxUint16
	case arch.Dword:
		return v <= math.MaxUint32
	}
	return false
}
