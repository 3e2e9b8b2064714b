// 3 Aug 2020

// Package protfasta reads proteins in fasta format.
// Files are memory mapped, rather than read, since we only walk over
// the bytes once and never change them.
// Each record goes through protein.NewStr, so a record with a single
// bad character becomes an empty protein, but keeps its comment.
package protfasta

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/protein/pkg/protein"
	"github.com/andrew-torda/protein/pkg/white"
)

// ErrNoCmmt says there was sequence before the first comment line.
var ErrNoCmmt = errors.New("sequence before first comment line")

const cmmtChar = '>'

// Readfile maps fname and returns the proteins in it.
func Readfile(fname string) ([]*protein.Protein, error) {
	var fp *os.File
	var err error
	var mm mmap.MMap
	if fp, err = os.Open(fname); err != nil {
		return nil, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 { // cannot map a zero length file
		return nil, nil
	}
	if mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()
	prots, err := parse(mm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return prots, nil
}

// Read gets proteins from a reader, such as standard input, which we
// cannot map.
func Read(rdr io.Reader) ([]*protein.Protein, error) {
	b, err := io.ReadAll(rdr)
	if err != nil {
		return nil, err
	}
	return parse(b)
}

// parse walks over the input line by line. Nothing in the protein
// points back into b, which matters when b is a mapping that goes away.
func parse(b []byte) ([]*protein.Protein, error) {
	var prots []*protein.Protein
	var cmmt string
	var seq []byte
	inRecord := false
	flush := func() {
		if inRecord {
			p := protein.NewStr(string(seq))
			p.SetCmmt(cmmt)
			prots = append(prots, p)
		}
	}
	for lineNum := 1; len(b) > 0; lineNum++ {
		var line []byte
		if ndx := bytes.IndexByte(b, '\n'); ndx == -1 {
			line, b = b, nil
		} else {
			line, b = b[:ndx], b[ndx+1:]
		}
		if len(line) > 0 && line[0] == cmmtChar {
			flush()
			cmmt = string(bytes.TrimSpace(line[1:]))
			seq = seq[:0]
			inRecord = true
			continue
		}
		for _, c := range line {
			if white.IsWhite(c) {
				continue
			}
			if !inRecord {
				return nil, fmt.Errorf("line %d: %w", lineNum, ErrNoCmmt)
			}
			seq = append(seq, c)
		}
	}
	flush()
	return prots, nil
}
