// 10 Apr 2020
/*

protein reads an amino acid sequence and tells you how long it is and
what it weighs.

Usage:
 protein [options] < sequence

By default, the first word on standard input is taken as the sequence.
Case does not matter. The sequence, the number of residues and the
molecular weight in kiloDaltons are printed. If the sequence contains
anything that is not one of ARNDBCQEZGHILKMFPSTWYV, it is thrown away
completely and you are told about a protein with zero residues that
weighs zero. This is not treated as an error.

Flags:
  -p text
	Print text as a prompt before reading.
  -f filename
	Read proteins from a fasta file. Use "-" for standard input.
	Each protein is reported with its comment, followed by a line
	with the mean, standard deviation, smallest and largest weights.
  -c	With -f, print the fraction of each residue type in each
	protein. There is one row per residue type and one column per
	protein.
  -v N
	Verbosity. Anything above zero writes some chatter to standard error.

The weight is the sum of the amino acid weights, minus one water for
each peptide bond.

*/
package main
