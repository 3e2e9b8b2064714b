// brokenio wraps an io.Reader so that it fails. It is for testing the
// error paths of code that reads sequences.
// Typical use: you have a reader from a file or a string. You write
// reader = brokenio.NewReader(reader) and set when it should go wrong.
// Everything works as before until then.

package brokenio

import (
	"errors"
	"io"
	"math/rand"
)

// ErrBroken is what a broken reader returns when it fails.
var ErrBroken = errors.New("brokenio: artificial read failure")

// A Reader passes reads through to the wrapped reader until it has
// delivered failAfter bytes. Then it returns ErrBroken.
// If probZeroFile is set, the first read may return io.EOF, which is
// what one often sees with a zero length file.
type Reader struct {
	rdrOrig      io.Reader
	rnd          *rand.Rand
	failAfter    int
	probZeroFile float32
	nCalled      int
	nByte        int
}

// NewReader returns a reader that never fails until told otherwise.
func NewReader(rIn io.Reader) *Reader {
	return &Reader{rdrOrig: rIn, failAfter: -1, rnd: rand.New(rand.NewSource(1))}
}

// SetFailAfter makes the reader fail once n bytes have gone through.
// A negative n means never.
func (r *Reader) SetFailAfter(n int) { r.failAfter = n }

// SetProbZeroFile sets the rate at which we return nothing on the first
// read. It must be from 0 to 1. We do not check.
func (r *Reader) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// NByte is how many bytes have been delivered.
func (r *Reader) NByte() int { return r.nByte }

// Read wraps the original Read.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		r.nCalled++
		return 0, io.EOF
	}
	r.nCalled++
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}
