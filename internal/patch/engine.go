package patch

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"io/fs"
	"os"
)

// Result classifies the outcome of applying a Descriptor to its target file.
type Result int

const (
	// Applied means the patch window contained the original bytes and the
	// replacement bytes were written. Under Verify it means the window
	// contains the original bytes and the patch would apply cleanly.
	Applied Result = iota
	// AlreadyApplied means the patch window already contained the
	// replacement bytes and nothing was written.
	AlreadyApplied
	// Mismatch means the patch window matched neither the original nor the
	// replacement bytes. The file is left untouched.
	Mismatch
	// NotFound means the target file does not exist.
	NotFound
	// IOFailure means the target could not be opened, read, or written.
	IOFailure
)

func (r Result) String() string {
	switch r {
	case Applied:
		return "applied"
	case AlreadyApplied:
		return "already applied"
	case Mismatch:
		return "mismatch"
	case NotFound:
		return "not found"
	case IOFailure:
		return "io failure"
	}
	return "unknown"
}

// Outcome is the full report of one Apply or Verify call.
type Outcome struct {
	Result Result
	// Found holds the pre-image read from the patch window when Result is
	// Mismatch; nil otherwise.
	Found []byte
	// Err carries the underlying error for NotFound and IOFailure results.
	Err error
	// LengthMismatch is set when the original and replacement byte counts
	// differ. Advisory only; it never blocks application.
	LengthMismatch bool
}

// Apply writes the descriptor's replacement bytes to its target file if and
// only if the patch window currently contains exactly the original bytes. A
// window already containing the replacement bytes reports AlreadyApplied
// with no write, which makes repeated application of the same descriptor a
// no-op. Any other window content refuses the write entirely, since an
// unexpected pre-image usually means the binary is a different build than
// the one the patch was authored against.
//
// The engine keeps no state between calls; every call re-derives the file's
// state by reading it.
func Apply(d Descriptor) Outcome {
	return run(d, true)
}

// Verify performs the same classification as Apply without ever writing.
func Verify(d Descriptor) Outcome {
	return run(d, false)
}

func run(d Descriptor, write bool) Outcome {
	out := Outcome{LengthMismatch: len(d.Original) != len(d.Replacement)}

	flag := os.O_RDONLY
	if write {
		flag = os.O_RDWR
	}

	file, err := os.OpenFile(d.TargetPath, flag, 0666)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			out.Result = NotFound
		} else {
			out.Result = IOFailure
		}
		out.Err = err
		return out
	}
	defer file.Close()

	window := make([]byte, len(d.Original))
	n, err := file.ReadAt(window, d.Offset)
	if err != nil && !errors.Is(err, io.EOF) {
		out.Result = IOFailure
		out.Err = err
		return out
	}
	if n < len(window) {
		// The file ends before the patch window does. Treated as an
		// ordinary mismatch rather than an error.
		out.Result = Mismatch
		out.Found = window[:n]
		return out
	}

	switch {
	case bytes.Equal(window, d.Original):
		out.Result = Applied
		if write {
			if _, err := file.WriteAt(d.Replacement, d.Offset); err != nil {
				out.Result = IOFailure
				out.Err = err
				return out
			}
			if err := file.Sync(); err != nil {
				out.Result = IOFailure
				out.Err = err
			}
		}
	case bytes.Equal(window, d.Replacement):
		out.Result = AlreadyApplied
	default:
		out.Result = Mismatch
		out.Found = window
	}
	return out
}

// HexPreview renders up to maxBytes bytes of b as a hex string, appending an
// ellipsis when b is longer. Used for mismatch diagnostics.
func HexPreview(b []byte, maxBytes int) string {
	if len(b) <= maxBytes {
		return hex.EncodeToString(b)
	}
	return hex.EncodeToString(b[:maxBytes]) + "..."
}
