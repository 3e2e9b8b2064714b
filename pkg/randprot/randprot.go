// 31 July 2020

// Package randprot makes random proteins. It is for testing. The
// output can be mixed case and have white space scattered through it,
// since readers have to put up with that.
package randprot

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/andrew-torda/protein/pkg/residue"
)

const (
	nPadWhite = 9 // For padding for adding whitespace to sequences
	cPerLine  = 60
)

// Args is the set of arguments passed to Write
type Args struct {
	Iseed int64     // random number seed
	Wrtr  io.Writer // where we write to
	Cmmt  string    // Comment for the sequences
	Nseq  int       // number of sequences
	Len   int       // Length of sequences
	Mixed bool      // Mix upper and lower case
	White bool      // Sprinkle white space into the sequences
}

// Seq returns a random sequence of n valid upper case residues.
func Seq(rnd *rand.Rand, n int) []byte {
	ret := make([]byte, n, n+n/nPadWhite)
	l := len(residue.Alphabet)
	for i := range ret {
		ret[i] = residue.Alphabet[rnd.Intn(l)]
	}
	return ret
}

// MixCase returns a copy of s with about half the letters in lower case.
func MixCase(rnd *rand.Rand, s []byte) []byte {
	const diff = 'a' - 'A'
	t := append([]byte(nil), s...)
	for i, c := range t {
		if 'A' <= c && c <= 'Z' && rnd.Intn(2) == 0 {
			t[i] = c + diff
		}
	}
	return t
}

// addInner inserts n copies of c at random positions
func addInner(s []byte, n int, c byte, rnd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := rnd.Intn(len(s))
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addSpace adds about 10 % white space. We flip a coin. Heads we
// don't add a newline. Tails about 1/9 of the white space is newlines.
func addSpace(s []byte, rnd *rand.Rand) []byte {
	toAdd := len(s)/nPadWhite + 1
	nNL := 0
	if rnd.Intn(2) == 0 {
		nNL = toAdd / 9
	}
	s = addInner(s, toAdd-nNL, ' ', rnd)
	return addInner(s, nNL, '\n', rnd)
}

// Write puts args.Nseq random proteins out in fasta format. It returns
// the clean, upper case sequences so a caller can check what it reads.
func Write(args *Args) ([]string, error) {
	rnd := rand.New(rand.NewSource(args.Iseed))
	width := len(fmt.Sprint(args.Nseq))
	clean := make([]string, args.Nseq)
	for i := 0; i < args.Nseq; i++ {
		s := Seq(rnd, args.Len)
		clean[i] = string(s)
		if args.Mixed {
			s = MixCase(rnd, s)
		}
		if args.White {
			s = addSpace(s, rnd)
		}
		if _, err := fmt.Fprintf(args.Wrtr, ">%s %0*d\n", args.Cmmt, width, i+1); err != nil {
			return nil, err
		}
		for ; len(s) > cPerLine; s = s[cPerLine:] {
			if _, err := fmt.Fprintf(args.Wrtr, "%s\n", s[:cPerLine]); err != nil {
				return nil, err
			}
		}
		if _, err := fmt.Fprintf(args.Wrtr, "%s\n", s); err != nil {
			return nil, err
		}
	}
	return clean, nil
}
