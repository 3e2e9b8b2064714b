// 25 May 2020

// Package white knows about white space in sequence input. Only the
// six ascii white space characters count. Unicode spaces, such as a
// no-break space, are just more bytes and end up rejected as residues.
package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// IsWhite says whether c is ascii white space.
func IsWhite(c byte) bool { return asciiSpace[c] }

// ScanWords is a bufio.SplitFunc like bufio.ScanWords, but it only
// splits on ascii white space.
func ScanWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && IsWhite(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if IsWhite(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil // need more data
}
