// 10 Apr 2020

// Package protrep is the work behind the protein command. It reads a
// sequence, builds a protein and reports the sequence, its length and
// its molecular weight.
package protrep

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/andrew-torda/protein/pkg/protcalc"
	"github.com/andrew-torda/protein/pkg/protein"
	"github.com/andrew-torda/protein/pkg/protfasta"
	"github.com/andrew-torda/protein/pkg/residue"
	"github.com/andrew-torda/protein/pkg/white"
)

// CmdFlag holds the command line options.
type CmdFlag struct {
	Prompt string // Written before reading a single sequence
	Infile string // fasta file, "-" for standard input. Empty means read one token
	Comp   bool   // print the composition table in fasta mode
	Vbsty  int
}

// wtFmt mimics what a C++ stream prints by default for a double.
const wtFmt = "%.6g"

// report writes the three lines for one protein.
func report(w io.Writer, p *protein.Protein) error {
	_, err := fmt.Fprintf(w, "%s\nThis protein contains %d residues.\nThis protein weighs "+
		wtFmt+" kiloDaltons.\n", p.Seq(), p.Len(), p.Weight())
	return err
}

// readToken gets the first word, delimited by ascii white space. If
// there is none, we get an empty string, which makes an empty protein.
func readToken(rdr io.Reader) (string, error) {
	scnr := bufio.NewScanner(rdr)
	scnr.Buffer(make([]byte, 0, 64*1024), 1024*1024*1024)
	scnr.Split(white.ScanWords)
	if scnr.Scan() {
		return scnr.Text(), nil
	}
	return "", scnr.Err()
}

// single is the default. Bad input is not an error. It just gives an
// empty protein. Even if reading fails, the empty protein is reported
// before we pass the error back.
func single(flags *CmdFlag, in io.Reader, out io.Writer) error {
	if flags.Prompt != "" {
		fmt.Fprint(out, flags.Prompt)
	}
	s, err := readToken(in)
	if err != nil {
		if rerr := report(out, protein.New()); rerr != nil {
			return rerr
		}
		return err
	}
	p := protein.NewStr(s)
	if flags.Vbsty > 0 && p.Empty() && s != "" {
		log.Printf("rejected input of length %d", len(s))
	}
	return report(out, p)
}

// printComp prints the residue fractions, one row per residue type and
// one column per protein. With no proteins there is no table.
func printComp(w io.Writer, prots []*protein.Protein) {
	if len(prots) == 0 {
		return
	}
	counts := protcalc.Composition(prots)
	protcalc.CompFrac(counts)
	for i, row := range counts.Mat {
		fmt.Fprintf(w, "%c ", residue.Alphabet[i])
		for _, x := range row {
			fmt.Fprintf(w, "%6.2f", x)
		}
		fmt.Fprintln(w)
	}
}

// fasta reads a set of proteins and reports each one, then the
// summary.
func fasta(flags *CmdFlag, in io.Reader, out io.Writer) error {
	var prots []*protein.Protein
	var err error
	if flags.Infile == "-" {
		prots, err = protfasta.Read(in)
	} else {
		prots, err = protfasta.Readfile(flags.Infile)
	}
	if err != nil {
		return err
	}
	if flags.Vbsty > 0 {
		log.Println("read", len(prots), "proteins from", flags.Infile)
	}
	bw := bufio.NewWriter(out)
	for _, p := range prots {
		fmt.Fprintf(bw, ">%s\n", p.Cmmt())
		if err := report(bw, p); err != nil {
			return err
		}
	}
	st := protcalc.WeightStats(prots)
	fmt.Fprintf(bw, "%d proteins. Weight mean "+wtFmt+" sd "+wtFmt+" min "+wtFmt+" max "+wtFmt+
		" kiloDaltons.\n", st.N, st.Mean, st.StdDev, st.Min, st.Max)
	if flags.Comp {
		printComp(bw, prots)
	}
	return bw.Flush()
}

// Mymain reads from in, writes to out.
func Mymain(flags *CmdFlag, in io.Reader, out io.Writer) error {
	if flags.Infile != "" {
		return fasta(flags, in, out)
	}
	return single(flags, in, out)
}
