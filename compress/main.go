package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fumin/arith"
)

var adapt = flag.Uint("adapt", 24, "frequency increment per coded byte, 0 for a static model")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] filename...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	names := flag.Args()
	if len(names) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	sizes, err := arith.CompressFiles(context.Background(), names, uint32(*adapt))
	if err != nil {
		log.Fatalf("%+v", err)
	}
	for i, name := range names {
		// The byte count is needed to decompress.
		fmt.Printf("%s%s %d\n", name, arith.Ext, sizes[i])
	}
}
