// 31 July 2020

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	. "github.com/andrew-torda/protein/pkg/common"
	"github.com/andrew-torda/protein/pkg/randprot"
)

func main() {
	f := flag.NewFlagSet("randprot", flag.ExitOnError)
	const iseed int64 = 1637
	var args randprot.Args

	f.BoolVar(&args.Mixed, "m", false, "mix upper and lower case")
	f.BoolVar(&args.White, "w", false, "put white space in sequences")
	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	f.StringVar(&args.Cmmt, "c", "random", "comment for each protein")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Wrong number of args\nrandprot [..] file nseq length")
		f.Usage()
		os.Exit(ExitUsageError)
	}
	var err error
	if args.Nseq, err = strconv.Atoi(f.Arg(1)); err != nil || args.Nseq < 0 {
		fmt.Fprintln(os.Stderr, "bad number of sequences:", f.Arg(1))
		os.Exit(ExitUsageError)
	}
	if args.Len, err = strconv.Atoi(f.Arg(2)); err != nil || args.Len < 0 {
		fmt.Fprintln(os.Stderr, "bad length:", f.Arg(2))
		os.Exit(ExitUsageError)
	}

	fname := f.Arg(0)
	if fname == "-" || fname == "" {
		args.Wrtr = os.Stdout
	} else {
		fp, err := os.Create(fname)
		if err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			os.Exit(ExitFailure)
		}
		defer fp.Close()
		args.Wrtr = fp
	}
	if _, err := randprot.Write(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
}
