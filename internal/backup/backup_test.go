package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnsure(t *testing.T) {
	original := []byte("pristine server binary")
	path := filepath.Join(t.TempDir(), "bf1942_lnxded.static")
	if err := os.WriteFile(path, original, 0644); err != nil {
		t.Fatalf("error writing fixture file: %v", err)
	}

	backupPath, written, err := Ensure(path, ".bak")
	if err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	if !written {
		t.Error("Ensure() reported no backup written on first call")
	}
	if backupPath != path+".bak" {
		t.Errorf("backup path = %s, want %s", backupPath, path+".bak")
	}

	backedUp, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("error reading backup: %v", err)
	}
	if diff := cmp.Diff(original, backedUp); diff != "" {
		t.Errorf("backup contents did not match source; diff:\n%s", diff)
	}

	// A second call after the source changes must not clobber the first
	// backup; that copy is the closest thing to the pristine binary.
	if err := os.WriteFile(path, []byte("patched server binary!"), 0644); err != nil {
		t.Fatalf("error modifying fixture file: %v", err)
	}
	if _, written, err = Ensure(path, ".bak"); err != nil {
		t.Fatalf("second Ensure() error = %v", err)
	}
	if written {
		t.Error("second Ensure() overwrote the existing backup")
	}

	backedUp, err = os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("error rereading backup: %v", err)
	}
	if diff := cmp.Diff(original, backedUp); diff != "" {
		t.Errorf("existing backup was altered; diff:\n%s", diff)
	}
}

func TestEnsure_MissingSource(t *testing.T) {
	if _, _, err := Ensure(filepath.Join(t.TempDir(), "no_such_binary"), ".bak"); err == nil {
		t.Error("Ensure() succeeded on a missing source file")
	}
}
