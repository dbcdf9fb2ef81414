// Command wasmrt reads a .wasm binary, decodes it into the generated module
// AST, re-encodes it, and reports whether the two byte sequences match.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/xyproto/wasmsyntax/wasm"
)

const versionString = "wasmrt 1.0.0"

func main() {
	var verbose = flag.Bool("v", false, "verbose mode (print section counts)")
	var verboseLong = flag.Bool("verbose", false, "verbose mode (print section counts)")
	var version = flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *version {
		fmt.Println(versionString)
		os.Exit(0)
	}

	verboseMode := *verbose || *verboseLong

	inputFiles := flag.Args()
	if len(inputFiles) == 0 {
		log.Fatalf("usage: wasmrt [-v] file.wasm [file.wasm ...]")
	}

	exitCode := 0
	for _, path := range inputFiles {
		if err := roundTrip(path, verboseMode); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func roundTrip(path string, verbose bool) error {
	original, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	m, err := wasm.DecodeModuleBytes(original)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "----=[ %s: %s ]=----\n", versionString, path)
		fmt.Fprint(os.Stderr, wasm.CollectStats(m).String())
	}

	reencoded := wasm.EncodeModuleBytes(m)
	if !bytes.Equal(original, reencoded) {
		return fmt.Errorf("round trip mismatch: original %d bytes, re-encoded %d bytes", len(original), len(reencoded))
	}

	fmt.Printf("%s: round trip OK (%d bytes)\n", path, len(original))
	return nil
}
