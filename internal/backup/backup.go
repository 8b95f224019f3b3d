// Package backup copies target files aside before they are modified, so
// that a bad patch can always be rolled back by hand.
package backup

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Ensure copies the file at path to path+suffix unless that backup already
// exists. It returns the backup path and whether a new copy was written. An
// existing backup is never overwritten; the first copy taken is the one
// closest to the pristine binary.
func Ensure(path, suffix string) (string, bool, error) {
	backupPath := path + suffix

	if _, err := os.Stat(backupPath); err == nil {
		return backupPath, false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", false, fmt.Errorf("checking for existing backup: %w", err)
	}

	src, err := os.Open(path)
	if err != nil {
		return "", false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", false, fmt.Errorf("stat %s: %w", path, err)
	}

	dst, err := os.OpenFile(backupPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, info.Mode())
	if err != nil {
		return "", false, fmt.Errorf("creating %s: %w", backupPath, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(backupPath)
		return "", false, fmt.Errorf("copying to %s: %w", backupPath, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(backupPath)
		return "", false, fmt.Errorf("closing %s: %w", backupPath, err)
	}
	return backupPath, true, nil
}
