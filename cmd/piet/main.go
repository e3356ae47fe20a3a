// Command piet runs Piet-style programs stored as PNG images.
//
// Usage:
//
//	piet [-c codel-size] <program.png>
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pietgo/piet/internal/raster"
	"github.com/pietgo/piet/piet"
)

func main() {
	fs := flag.NewFlagSet("piet", flag.ContinueOnError)
	var codelSize int
	fs.IntVar(&codelSize, "c", 0, "codel size in pixels (0 = infer from the image)")
	fs.IntVar(&codelSize, "codel-size", 0, "same as -c")
	fs.Usage = printUsage
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if fs.NArg() != 1 {
		printUsage()
		os.Exit(2)
	}

	os.Exit(run(fs.Arg(0), codelSize))
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  piet [-c codel-size | --codel-size codel-size] <program.png>

Runs a Piet-style program stored as a PNG image. -c/--codel-size takes
a positive integer; omitted or 0, the codel size is inferred from the
image. Negative values are rejected.
`)
}

// run performs the whole CLI operation and returns the process exit
// code, rather than an error, because its callers don't all map to
// the same code: spec §6 keeps the original interpreter's behavior of
// exiting 0 (not 1) on an invalid image, distinct from a file-open
// failure.
func run(path string, codelSize int) int {
	if !strings.HasSuffix(path, ".png") {
		fmt.Fprintf(os.Stderr, "piet: %s: not a .png file\n", path)
		return 1
	}
	if codelSize < 0 {
		fmt.Fprintf(os.Stderr, "piet: -c/--codel-size must be positive, got %d\n", codelSize)
		return 1
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "piet: %v\n", err)
		return 1
	}
	defer f.Close()

	img, err := raster.Decode(f)
	if err != nil {
		// Matches original_source/src/decoder.rs's check_valid_png,
		// which calls process::exit(0) on a malformed image rather
		// than signaling failure; spec §6 keeps this verbatim rather
		// than "fixing" it into a 1.
		fmt.Fprintf(os.Stderr, "piet: decoding %s: %v\n", path, err)
		return 0
	}

	if codelSize == 0 {
		codelSize = raster.InferCodelSize(img, os.Stderr)
	}

	grid, err := img.Codels(codelSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "piet: %s: %v\n", path, err)
		return 1
	}

	piet.New(grid).Run(os.Stdin, os.Stdout)
	return 0
}
