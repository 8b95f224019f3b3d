package history

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"
)

// Creates a history database for testing. A new database is created on every
// invocation since it is relatively cheap to do so.
func setUpDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Initialize(filepath.Join(t.TempDir(), "patchkit.db"))
	if err != nil {
		t.Fatalf("error initializing test database: %s", err)
	}
	return db
}

func TestRecordAndListApplications(t *testing.T) {
	db := setUpDatabase(t)

	recorded := []*Application{
		{PatchSet: "ctf-respawn", TargetPath: "bf1942_lnxded.static", Offset: 0x249DCD, Result: "applied"},
		{PatchSet: "ctf-respawn", TargetPath: "bf1942_lnxded.dynamic", Offset: 0x250E3D, Result: "mismatch"},
		{PatchSet: "ctf-flags-map", TargetPath: "bf1942_lnxded.static", Offset: 0x249E80, Result: "already applied", DryRun: true},
	}
	for _, a := range recorded {
		if err := Record(db, a); err != nil {
			t.Fatalf("error recording application: %v", err)
		}
	}

	applications, err := ListApplications(db)
	if err != nil {
		t.Fatalf("error listing applications: %v", err)
	}
	if len(applications) != len(recorded) {
		t.Fatalf("len(applications) = %d, want %d", len(applications), len(recorded))
	}

	// Most recent first.
	if applications[0].PatchSet != "ctf-flags-map" {
		t.Errorf("first listed application = %s, want ctf-flags-map", applications[0].PatchSet)
	}
	if !applications[0].DryRun {
		t.Error("dry run flag was not persisted")
	}
	if applications[0].CreatedAt.IsZero() || applications[0].CreatedAt.After(time.Now()) {
		t.Errorf("implausible CreatedAt: %v", applications[0].CreatedAt)
	}
}

func TestListApplications_Empty(t *testing.T) {
	db := setUpDatabase(t)

	applications, err := ListApplications(db)
	if err != nil {
		t.Fatalf("error listing applications: %v", err)
	}
	if len(applications) != 0 {
		t.Errorf("len(applications) = %d, want 0", len(applications))
	}
}
