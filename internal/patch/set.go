package patch

import (
	"fmt"
	"path/filepath"
)

// Data is the source form of one patch as authored: hex strings plus an
// offset, with the target named relative to the server directory. Decoding
// to a Descriptor is deferred to load time so that bad hex in one patch can
// be reported without discarding its siblings.
type Data struct {
	File           string
	Offset         int64
	OriginalHex    string
	ReplacementHex string
}

// Set is a named group of patches that together fix one server bug.
type Set struct {
	Name        string
	Description string
	Patches     []Data
}

// Descriptors decodes every patch in the set, resolving target files against
// dir. Patches that fail to decode are returned as errors alongside the
// descriptors that decoded cleanly; a bad patch never prevents its siblings
// from loading.
func (s Set) Descriptors(dir string) ([]Descriptor, []error) {
	var descriptors []Descriptor
	var errs []error

	for _, p := range s.Patches {
		d, err := NewDescriptor(filepath.Join(dir, p.File), p.Offset, p.OriginalHex, p.ReplacementHex)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %s at offset 0x%X: %w", s.Name, p.File, p.Offset, err))
			continue
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, errs
}
