package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/fumin/arith"
)

var (
	adapt = flag.Uint("adapt", 24, "frequency increment per coded byte, must match compress")
	size  = flag.Int64("n", -1, "number of bytes to decompress, as printed by compress")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s -n size [flags] [filename]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	if *size < 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := decompress(flag.Arg(0)); err != nil {
		log.Fatalf("%+v", err)
	}
}

// decompress writes the decompressed content of the named file, or of stdin if name is empty, to stdout.
func decompress(name string) error {
	r := os.Stdin
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrap(err, "")
		}
		defer f.Close()
		r = f
	}
	if err := arith.Decompress(os.Stdout, r, *size, uint32(*adapt)); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}
