package protcalc_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	. "github.com/andrew-torda/protein/pkg/protcalc"
	"github.com/andrew-torda/protein/pkg/protein"
	"github.com/andrew-torda/protein/pkg/residue"
)

func mkProts(ss ...string) []*protein.Protein {
	prots := make([]*protein.Protein, len(ss))
	for i, s := range ss {
		prots[i] = protein.NewStr(s)
	}
	return prots
}

// column pulls out column j, in alphabet order
func column(mat [][]float32, j int) []float32 {
	col := make([]float32, len(mat))
	for i := range mat {
		col[i] = mat[i][j]
	}
	return col
}

func TestComposition(t *testing.T) {
	prots := mkProts("AAG", "", "WBZ", "a1")
	counts := Composition(prots)
	if nr, nc := counts.Size(); nr != residue.NSym || nc != len(prots) {
		t.Fatalf("composition is %d x %d", nr, nc)
	}
	want := make([]float32, residue.NSym)
	want[residue.Index('A')] = 2
	want[residue.Index('G')] = 1
	if diff := cmp.Diff(want, column(counts.Mat, 0)); diff != "" {
		t.Fatalf("column 0 (-want +got):\n%s", diff)
	}
	for _, j := range []int{1, 3} {
		if diff := cmp.Diff(make([]float32, residue.NSym), column(counts.Mat, j)); diff != "" {
			t.Fatalf("empty column %d (-want +got):\n%s", j, diff)
		}
	}
	for j, p := range prots {
		var sum float32
		for _, x := range column(counts.Mat, j) {
			sum += x
		}
		if int(sum) != p.Len() {
			t.Fatalf("column %d sums to %v, protein length %d", j, sum, p.Len())
		}
	}
}

func TestCompFrac(t *testing.T) {
	counts := Composition(mkProts("AAGW", ""))
	CompFrac(counts)
	want := make([]float32, residue.NSym)
	want[residue.Index('A')] = 0.5
	want[residue.Index('G')] = 0.25
	want[residue.Index('W')] = 0.25
	if diff := cmp.Diff(want, column(counts.Mat, 0), cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Fatalf("fractions (-want +got):\n%s", diff)
	}
	for _, x := range column(counts.Mat, 1) {
		if x != 0 {
			t.Fatal("empty protein got non-zero fraction")
		}
	}
}

func TestWeightStats(t *testing.T) {
	if diff := cmp.Diff(Stats{}, WeightStats(nil)); diff != "" {
		t.Fatalf("no proteins (-want +got):\n%s", diff)
	}

	p := protein.NewStr("AG")
	got := WeightStats([]*protein.Protein{p})
	want := Stats{N: 1, Mean: p.Weight(), Min: p.Weight(), Max: p.Weight()}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("one protein (-want +got):\n%s", diff)
	}

	prots := mkProts("G", "GG", "GGG")
	w := []float64{prots[0].Weight(), prots[1].Weight(), prots[2].Weight()}
	got = WeightStats(prots)
	mean := (w[0] + w[1] + w[2]) / 3
	var ss float64
	for _, x := range w {
		ss += (x - mean) * (x - mean)
	}
	want = Stats{N: 3, Mean: mean, StdDev: math.Sqrt(ss / 2), Min: w[0], Max: w[2]}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("three proteins (-want +got):\n%s", diff)
	}
}
