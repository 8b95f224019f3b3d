package patch

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedHex is returned when a patch's byte data cannot be decoded
// from its hex string form.
var ErrMalformedHex = errors.New("malformed hex data")

// Descriptor defines a single verified patch: the file to modify, the byte
// offset at which the patch window begins, and the bytes expected to occupy
// that window in the unpatched and patched states. Descriptors are built
// once and never mutated.
type Descriptor struct {
	TargetPath  string
	Offset      int64
	Original    []byte
	Replacement []byte
}

// NewDescriptor decodes the original and replacement hex strings and returns
// a Descriptor. The hex strings may contain whitespace and mixed case, the
// usual copy/paste format out of a hex editor.
func NewDescriptor(targetPath string, offset int64, originalHex, replacementHex string) (Descriptor, error) {
	if offset < 0 {
		return Descriptor{}, fmt.Errorf("offset must be non-negative, got %d", offset)
	}

	original, err := decodeHex(originalHex)
	if err != nil {
		return Descriptor{}, fmt.Errorf("original bytes: %w", err)
	}
	replacement, err := decodeHex(replacementHex)
	if err != nil {
		return Descriptor{}, fmt.Errorf("replacement bytes: %w", err)
	}

	if len(original) == 0 || len(replacement) == 0 {
		return Descriptor{}, errors.New("original and replacement bytes must be non-empty")
	}

	return Descriptor{
		TargetPath:  targetPath,
		Offset:      offset,
		Original:    original,
		Replacement: replacement,
	}, nil
}

func decodeHex(s string) ([]byte, error) {
	stripped := strings.Join(strings.Fields(s), "")
	b, err := hex.DecodeString(stripped)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return b, nil
}
