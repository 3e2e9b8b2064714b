// 12 Feb 2020

// Package residue holds the table of amino acids we recognise.
// There are 22 codes. The 20 standard amino acids and B and Z which
// say we cannot tell asparagine from aspartic acid or glutamine from
// glutamic acid.
// The table is built once and is read only. Everything is indexed
// by the byte, so lookups are just array accesses.
package residue

// Alphabet is the set of valid one letter codes. The order matters. It
// is the row order used in composition tables.
const Alphabet = "ARNDBCQEZGHILKMFPSTWYV"

// NSym is the number of symbols in Alphabet.
const NSym = len(Alphabet)

// Water is the mass in Daltons of the water molecule lost each time
// a peptide bond is formed.
const Water = 18.0153

// We only look at ascii, so anything bigger is not valid.
const maxSym = 128

// Residue is what we know about one amino acid.
type Residue struct {
	Name   string
	Mass   float64 // Daltons, free amino acid
	Volume float64 // Cubic Angstrom
}

var table = [maxSym]Residue{
	'A': {"Alanine", 89.09, 88.6},
	'R': {"Arginine", 174.20, 173.4},
	'N': {"Asparagine", 132.12, 114.1},
	'D': {"Aspartic Acid", 133.10, 111.1},
	'C': {"Cysteine", 121.15, 108.5},
	'Q': {"Glutamine", 146.15, 143.8},
	'E': {"Glutamic Acid", 147.13, 138.4},
	'G': {"Glycine", 75.07, 60.1},
	'H': {"Histidine", 155.16, 153.2},
	'I': {"Isoleucine", 131.17, 166.7},
	'L': {"Leucine", 131.17, 166.7},
	'K': {"Lysine", 146.19, 168.6},
	'M': {"Methionine", 149.21, 162.9},
	'F': {"Phenylalanine", 165.19, 189.9},
	'P': {"Proline", 115.13, 112.7},
	'S': {"Serine", 105.09, 89.0},
	'T': {"Threonine", 119.12, 116.1},
	'W': {"Tryptophan", 204.23, 227.8},
	'Y': {"Tyrosine", 181.19, 193.6},
	'V': {"Valine", 117.15, 140.0},
	'B': {"Asparagine/Aspartic Acid", 132.67, 112.6},
	'Z': {"Glutamine/Glutamic Acid", 146.76, 146.6},
}

// index['A'] tells us the position of A in Alphabet. Unused entries are -1.
var index = func() (ndx [maxSym]int8) {
	for i := range ndx {
		ndx[i] = -1
	}
	for i := 0; i < NSym; i++ {
		ndx[Alphabet[i]] = int8(i)
	}
	return
}()

// Valid says whether c is one of our 22 codes. Lower case is not valid.
func Valid(c byte) bool { return c < maxSym && index[c] >= 0 }

// ValidStr returns true if every byte in s is valid. An empty string
// is valid.
func ValidStr(s string) bool {
	for i := 0; i < len(s); i++ {
		if !Valid(s[i]) {
			return false
		}
	}
	return true
}

// Lookup returns the entry for c. ok is false if c is not one of ours.
func Lookup(c byte) (r Residue, ok bool) {
	if !Valid(c) {
		return Residue{}, false
	}
	return table[c], true
}

// Index gives the position of c in Alphabet or -1.
func Index(c byte) int {
	if c >= maxSym {
		return -1
	}
	return int(index[c])
}

// Upper changes lower case letters to upper case, in place.
// It is much smaller than the library version. Anything that is not a
// lower case ascii letter is left alone, so it will be caught later
// when we check the symbols.
func Upper(s []byte) {
	const diff = 'a' - 'A'
	for i, c := range s {
		if 'a' <= c && c <= 'z' {
			s[i] = c - diff
		}
	}
}
