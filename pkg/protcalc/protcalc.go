// 6 Apr 2020
// protcalc does simple, common calculations on a set of proteins.

package protcalc

import (
	"github.com/andrew-torda/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/andrew-torda/protein/pkg/protein"
	"github.com/andrew-torda/protein/pkg/residue"
)

// Composition counts the residues in each protein. Row i is for
// residue.Alphabet[i] and column j for prots[j].
func Composition(prots []*protein.Protein) *matrix.FMatrix2d {
	counts := matrix.NewFMatrix2d(residue.NSym, len(prots))
	for j, p := range prots {
		cnt := p.Counts()
		for i, n := range cnt {
			counts.Mat[i][j] = float32(n)
		}
	}
	return counts
}

// CompFrac turns the counts in each column into fractions, in place.
// A column with no residues (an empty protein) is left as zeroes.
func CompFrac(counts *matrix.FMatrix2d) {
	nrow, ncol := counts.Size()
	for j := 0; j < ncol; j++ {
		var tot float32
		for i := 0; i < nrow; i++ {
			tot += counts.Mat[i][j]
		}
		if tot == 0 {
			continue
		}
		for i := 0; i < nrow; i++ {
			counts.Mat[i][j] /= tot
		}
	}
}

// Stats summarises the molecular weights (kDa) of a set of proteins.
type Stats struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// WeightStats calculates Stats over the weights of prots.
// With no proteins, everything is zero. With one, StdDev is zero.
func WeightStats(prots []*protein.Protein) Stats {
	if len(prots) == 0 {
		return Stats{}
	}
	w := make([]float64, len(prots))
	for i, p := range prots {
		w[i] = p.Weight()
	}
	s := Stats{
		N:    len(w),
		Mean: stat.Mean(w, nil),
		Min:  floats.Min(w),
		Max:  floats.Max(w),
	}
	if len(w) > 1 {
		s.StdDev = stat.StdDev(w, nil)
	}
	return s
}
