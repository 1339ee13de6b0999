package main

import (
	"flag"
	"io"
	"log"
	"os"

	"toruslife/internal/lifefile"
)

func main() {
	out := flag.String("o", "", "output file (default stdout)")
	flag.Usage = func() {
		log.Printf("usage: lifeconv [-o out] [input]\n")
		log.Printf("converts 'row col' lines into a #configs pattern\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}

	if err := lifefile.ConvertRowCol(in, w); err != nil {
		log.Fatal(err)
	}
}
