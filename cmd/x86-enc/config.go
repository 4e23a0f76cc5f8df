package main

import (
	"flag"
	"fmt"
	"os"
)

// Config defines program configuration.
type Config struct {
	Input   string // Input listing to encode. Reads stdin when empty.
	Output  string // Path to store output in. Writes stdout when empty.
	HexDump bool   // Print a hex dump instead of raw machine code.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config

	flag.Usage = func() {
		fmt.Printf("%s [options] [input listing]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&c.Output, "out", c.Output, "Output file. Defaults to stdout.")
	flag.BoolVar(&c.HexDump, "hex", c.HexDump, "Print a hex dump of the encoded instructions instead of raw bytes.")
	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		c.Input = flag.Arg(0)
	}

	return &c
}
