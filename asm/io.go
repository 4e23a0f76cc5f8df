package asm

import (
	"encoding/binary"
	"fmt"
	"io"
	"runtime"

	"github.com/pkg/errors"
)

var endian = binary.LittleEndian

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func writeI8(w io.Writer, v int8) {
	check(binary.Write(w, endian, v))
}

func writeU8(w io.Writer, v uint8) {
	check(binary.Write(w, endian, v))
}

func writeU16(w io.Writer, v uint16) {
	check(binary.Write(w, endian, v))
}

func writeI32(w io.Writer, v int32) {
	check(binary.Write(w, endian, v))
}

func writeU32(w io.Writer, v uint32) {
	check(binary.Write(w, endian, v))
}

func recoverOnPanic(err *error) {
	x := recover()
	if x == nil {
		return
	}

	switch tx := x.(type) {
	case runtime.Error:
		panic(tx)
	case error:
		*err = errors.Wrapf(tx, "asm")
	default:
		*err = fmt.Errorf("asm: %v", tx)
	}
}
