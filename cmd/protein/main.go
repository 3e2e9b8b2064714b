// 10 Apr 2020

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/protein/pkg/common"
	"github.com/andrew-torda/protein/pkg/protrep"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] < sequence")
	flag.PrintDefaults()
}

func main() {
	var flags protrep.CmdFlag
	flag.StringVar(&flags.Prompt, "p", "", "prompt to print before reading a sequence")
	flag.StringVar(&flags.Infile, "f", "", "read proteins from fasta file, \"-\" for stdin")
	flag.BoolVar(&flags.Comp, "c", false, "with -f, print residue composition")
	flag.IntVar(&flags.Vbsty, "v", 0, "verbosity")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 0 || (flags.Comp && flags.Infile == "") {
		usage()
		os.Exit(ExitUsageError)
	}
	if err := protrep.Mymain(&flags, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if flags.Infile != "" {
			os.Exit(ExitFailure)
		}
	}
	os.Exit(ExitSuccess)
}
