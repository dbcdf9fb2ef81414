// Command wasmgen regenerates wasm/zz_generated.go from the embedded
// grammar description in wasmgrammar/wasm.grammar.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/xyproto/wasmsyntax/grammar"
	"github.com/xyproto/wasmsyntax/wasmgrammar"
)

const versionString = "wasmgen 1.0.0"

func main() {
	var outputFlag = flag.String("o", "wasm/zz_generated.go", "output file path")
	var outputLongFlag = flag.String("output", "wasm/zz_generated.go", "output file path")
	var pkgFlag = flag.String("pkg", "wasm", "package name for the generated file")
	var version = flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *version {
		fmt.Println(versionString)
		os.Exit(0)
	}

	outputPath := *outputFlag
	if *outputLongFlag != "wasm/zz_generated.go" {
		outputPath = *outputLongFlag
	}

	g, err := wasmgrammar.Load()
	if err != nil {
		log.Fatalf("loading embedded grammar: %v", err)
	}

	src, err := grammar.Generate(g, *pkgFlag)
	if err != nil {
		log.Fatalf("generating source: %v", err)
	}

	if err := os.WriteFile(outputPath, []byte(src), 0o644); err != nil {
		log.Fatalf("writing %s: %v", outputPath, err)
	}
}
