package vm

import "errors"

// Status is the small-negative-integer error channel used throughout this
// package, kept bit-compatible with the legacy caller contract: callers
// that only care about "did it work" can compare against zero, while
// callers that need the taxonomy can compare against the named codes.
type Status int

const (
	// StatusOK indicates success.
	StatusOK Status = 0
	// StatusIO covers allocation failure, short reads, and other I/O errors.
	StatusIO Status = -1
	// StatusBounds indicates an out-of-bounds memory or stack address.
	StatusBounds Status = -9
	// StatusMisaligned indicates a word access at a non-word-aligned address.
	StatusMisaligned Status = -23
	// StatusNeedsFetch is returned by a single-step call made before the
	// first instruction has been loaded into the instruction register.
	StatusNeedsFetch Status = -259
)

var statusText = map[Status]string{
	StatusOK:         "ok",
	StatusIO:         "allocation, I/O, or short read failure",
	StatusBounds:     "address out of bounds",
	StatusMisaligned: "misaligned word access",
	StatusNeedsFetch: "instruction fetch needed",
}

// Error adapts a Status to the error interface so it composes with fmt.Errorf
// and errors.Is/As at package boundaries that prefer idiomatic Go errors
// over raw integers.
func (s Status) Error() string {
	if text, ok := statusText[s]; ok {
		return text
	}
	return "unknown status"
}

// Ok reports whether s represents success.
func (s Status) Ok() bool {
	return s == StatusOK
}

// ErrShortRead describes EOF hit mid-instruction, distinct from a clean EOF
// between instructions. The codec in this package does not return it: its
// native decoder reports a buffer that ends mid-instruction as StatusIO.
var ErrShortRead = errors.New("short read: EOF mid-instruction")
