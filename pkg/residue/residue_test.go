package residue_test

import (
	"testing"

	. "github.com/andrew-torda/protein/pkg/residue"
)

func TestAlphabet(t *testing.T) {
	if NSym != 22 {
		t.Fatalf("NSym got %d wanted 22", NSym)
	}
	seen := make(map[byte]bool)
	for i := 0; i < NSym; i++ {
		c := Alphabet[i]
		if seen[c] {
			t.Fatalf("duplicate %c in alphabet", c)
		}
		seen[c] = true
		if !Valid(c) {
			t.Fatalf("%c from alphabet is not valid", c)
		}
		if Index(c) != i {
			t.Fatalf("Index(%c) got %d wanted %d", c, Index(c), i)
		}
		r, ok := Lookup(c)
		if !ok || r.Name == "" || r.Mass <= 0 || r.Volume <= 0 {
			t.Fatalf("Lookup(%c) gave %+v %v", c, r, ok)
		}
	}
}

func TestInvalid(t *testing.T) {
	for _, c := range []byte("JOUX*-1 a\n\xff") {
		if Valid(c) {
			t.Fatalf("%q should not be valid", c)
		}
		if Index(c) != -1 {
			t.Fatalf("Index(%q) should be -1", c)
		}
		if _, ok := Lookup(c); ok {
			t.Fatalf("Lookup(%q) should fail", c)
		}
	}
}

func TestLookup(t *testing.T) {
	var tests = []struct {
		c    byte
		name string
		mass float64
		vol  float64
	}{
		{'A', "Alanine", 89.09, 88.6},
		{'G', "Glycine", 75.07, 60.1},
		{'W', "Tryptophan", 204.23, 227.8},
		{'B', "Asparagine/Aspartic Acid", 132.67, 112.6},
		{'Z', "Glutamine/Glutamic Acid", 146.76, 146.6},
	}
	for _, tt := range tests {
		r, _ := Lookup(tt.c)
		if r.Name != tt.name || r.Mass != tt.mass || r.Volume != tt.vol {
			t.Fatalf("Lookup(%c) got %+v", tt.c, r)
		}
	}
}

func TestValidStr(t *testing.T) {
	var tests = []struct {
		s    string
		want bool
	}{
		{"", true},
		{"ARNDBCQEZGHILKMFPSTWYV", true},
		{"AG", true},
		{"ag", false},
		{"A1B", false},
		{"AX", false},
	}
	for _, tt := range tests {
		if got := ValidStr(tt.s); got != tt.want {
			t.Fatalf("ValidStr(%q) got %v wanted %v", tt.s, got, tt.want)
		}
	}
}

func TestUpper(t *testing.T) {
	s := []byte("aBc-1z")
	Upper(s)
	if string(s) != "ABC-1Z" {
		t.Fatalf("Upper got %s", s)
	}
}
