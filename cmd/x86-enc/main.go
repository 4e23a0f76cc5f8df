package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/moien007/AsmResolver/asm"
)

func main() {
	config := parseArgs()

	code, err := assemble(config.Input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	w, close := makeWriter(config)
	defer close()

	if config.HexDump {
		dumpHex(w, code)
		return
	}

	if _, err := w.Write(code); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// assemble encodes the listing from the given file, or stdin if no file
// was named.
func assemble(file string) ([]byte, error) {
	var r io.Reader = os.Stdin
	name := "<stdin>"

	if file != "" {
		fd, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		r, name = fd, file
	}

	var buf bytes.Buffer
	enc := asm.NewEncoder(&buf)

	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		instr, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %v", name, lineno, err)
		}
		if instr == nil {
			continue
		}
		if err := enc.Encode(instr); err != nil {
			return nil, fmt.Errorf("%s:%d: %v", name, lineno, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// dumpHex writes a human-readable hex dump of the encoded bytes.
func dumpHex(w io.Writer, code []byte) {
	for i, b := range code {
		if i > 0 && i%16 == 0 {
			fmt.Fprintln(w)
		} else if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%02x", b)
	}
	fmt.Fprintln(w)
}

// makeWriter creates an output writer and a cleanup function for it.
func makeWriter(c *Config) (io.Writer, func()) {
	if c.Output == "" {
		return os.Stdout, func() {}
	}

	dir, _ := filepath.Split(c.Output)
	if dir != "" {
		if err := os.MkdirAll(dir, 0744); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fd, err := os.Create(c.Output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return fd, func() { fd.Close() }
}
