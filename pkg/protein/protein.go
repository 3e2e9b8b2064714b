// 12 Feb 2020

// Package protein represents a protein as a chain of residues.
// Residues are stored in the order they were added. Position 0 is the
// first residue that was appended, the start of the chain.
//
// Only the 22 codes known to package residue are ever stored. Appending
// or inserting anything else is silently ignored. Building a protein from
// a string is all or nothing. If there is one bad character, you get an
// empty protein.
package protein

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andrew-torda/protein/pkg/residue"
)

// ErrOutOfRange is returned when asking about a position that does not exist.
var ErrOutOfRange = errors.New("position out of range")

// Constants
const (
	cmmtChar byte = '>' // introduces comments in fasta format
	cPerLine      = 60
)

// Protein is a chain of residues with an optional comment, which is
// usually the fasta comment line.
type Protein struct {
	cmmt string
	seq  []byte
}

// New returns an empty protein.
func New() *Protein { return new(Protein) }

// NewStr makes a protein from a string. The string is changed to upper
// case. If any character is not a residue code, we return an empty
// protein. We do not keep the good parts of a bad string.
func NewStr(s string) *Protein {
	p := New()
	b := []byte(s)
	residue.Upper(b)
	if !residue.ValidStr(string(b)) {
		return p
	}
	p.seq = b
	return p
}

// Append adds a residue at the end of the chain. Invalid codes are ignored.
func (p *Protein) Append(c byte) {
	if !residue.Valid(c) {
		return
	}
	p.seq = append(p.seq, c)
}

// Insert puts c at position n, so afterwards p.Seq()[n] == c.
// n may be from 0 to p.Len(). n == p.Len() is the same as Append.
// Bad codes and bad positions are ignored and p is not changed.
func (p *Protein) Insert(c byte, n int) {
	if !residue.Valid(c) {
		return
	}
	if n < 0 || n > len(p.seq) {
		return
	}
	if n == len(p.seq) {
		p.Append(c)
		return
	}
	p.seq = append(p.seq, 0)
	copy(p.seq[n+1:], p.seq[n:])
	p.seq[n] = c
}

// Len returns the number of residues.
func (p *Protein) Len() int { return len(p.seq) }

// Empty is true if there are no residues.
func (p *Protein) Empty() bool { return len(p.seq) == 0 }

// Seq returns the residues as a string, starting from position 0.
func (p *Protein) Seq() string { return string(p.seq) }

// Cmmt returns the comment without the leading ">".
func (p *Protein) Cmmt() string { return p.cmmt }

// SetCmmt replaces the comment.
func (p *Protein) SetCmmt(s string) { p.cmmt = s }

// ResidueAt returns the full name of the residue at position n.
func (p *Protein) ResidueAt(n int) (string, error) {
	if n < 0 || n >= len(p.seq) {
		return "", fmt.Errorf("residue %d of %d: %w", n, len(p.seq), ErrOutOfRange)
	}
	r, _ := residue.Lookup(p.seq[n])
	return r.Name, nil
}

// Weight returns the molecular weight in kiloDaltons. Each peptide
// bond costs one water, so n residues lose n-1 waters.
// An empty protein weighs exactly zero.
func (p *Protein) Weight() float64 {
	if len(p.seq) == 0 {
		return 0
	}
	var w float64
	for _, c := range p.seq {
		r, _ := residue.Lookup(c)
		w += r.Mass
	}
	w -= float64(len(p.seq)-1) * residue.Water
	return w / 1000
}

// Volume is the sum of the residue volumes in cubic Angstrom.
func (p *Protein) Volume() float64 {
	var v float64
	for _, c := range p.seq {
		r, _ := residue.Lookup(c)
		v += r.Volume
	}
	return v
}

// Counts says how often each residue occurs. The order is that of
// residue.Alphabet.
func (p *Protein) Counts() (cnt [residue.NSym]int) {
	for _, c := range p.seq {
		cnt[residue.Index(c)]++
	}
	return
}

// Copy returns a protein with its own copy of the residues.
func (p *Protein) Copy() *Protein {
	t := &Protein{cmmt: p.cmmt}
	t.seq = append([]byte(nil), p.seq...)
	return t
}

// String returns the protein in fasta format, comment first, then the
// residues broken into lines.
func (p *Protein) String() string {
	var b strings.Builder
	b.WriteByte(cmmtChar)
	b.WriteString(p.cmmt)
	b.WriteByte('\n')
	s := p.seq
	for ; len(s) > cPerLine; s = s[cPerLine:] {
		b.Write(s[:cPerLine])
		b.WriteByte('\n')
	}
	b.Write(s)
	return b.String()
}
