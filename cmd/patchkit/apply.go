// The apply command is the driver for the patch engine: it walks the
// selected patch sets and applies each descriptor in sequence, logging a
// status line per patch. No descriptor's failure ever stops processing of
// the descriptors after it; patches at independent offsets are unrelated
// failure domains.
//
// Stop the bf1942 server process before running this. The engine assumes it
// has exclusive access to the binaries; nothing enforces that here.
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"patchkit/internal/backup"
	"patchkit/internal/bf1942"
	"patchkit/internal/core"
	"patchkit/internal/history"
	"patchkit/internal/patch"
)

var applyCmd = &cobra.Command{
	Use:   "apply [set ...]",
	Short: "Apply patch sets to the server binaries (default: all of them)",
	Run:   ApplyCommand,
}

// Bytes of hex shown per line in mismatch diagnostics.
const mismatchPreviewLen = 15

func ApplyCommand(cmd *cobra.Command, args []string) {
	runSets(args, false)
}

func runSets(names []string, dryRun bool) {
	cfg := core.LoadConfig(ConfigFlag)
	if DirFlag != "" {
		cfg.ServerDir = DirFlag
	}

	log, err := core.NewLogger(cfg)
	if err != nil {
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	var db *gorm.DB
	if cfg.History.Enabled {
		db, err = history.Initialize(cfg.HistoryPath())
		if err != nil {
			log.Warnf("history disabled: %v", err)
		}
	}

	for _, set := range selectSets(log, names) {
		log.Infof("processing %s", set.Name)

		descriptors, errs := set.Descriptors(cfg.ServerDir)
		for _, err := range errs {
			log.Errorf("skipping patch with bad data: %v", err)
		}
		for _, d := range descriptors {
			applyOne(log, db, cfg, set.Name, d, dryRun)
		}
	}
}

func selectSets(log *logrus.Logger, names []string) []patch.Set {
	if len(names) == 0 {
		return bf1942.Sets()
	}

	var sets []patch.Set
	for _, name := range names {
		s, ok := bf1942.Find(name)
		if !ok {
			log.Errorf("unknown patch set: %s", name)
			continue
		}
		sets = append(sets, s)
	}
	return sets
}

func applyOne(log *logrus.Logger, db *gorm.DB, cfg *core.Config, setName string, d patch.Descriptor, dryRun bool) {
	log.Debug(spew.Sdump(d))

	outcome := patch.Verify(d)
	if !dryRun && outcome.Result == patch.Applied {
		// The write is about to happen; take the backup first.
		if cfg.Backup.Enabled && !NoBackupFlag {
			backupPath, written, err := backup.Ensure(d.TargetPath, cfg.Backup.Suffix)
			if err != nil {
				log.Errorf("not patching %s: backup failed: %v", d.TargetPath, err)
				return
			}
			if written {
				log.Infof("backed up %s to %s", d.TargetPath, backupPath)
			}
		}
		outcome = patch.Apply(d)
	}

	if outcome.LengthMismatch {
		log.Warnf("replacement length (%d) does not match original length (%d)",
			len(d.Replacement), len(d.Original))
	}

	switch outcome.Result {
	case patch.Applied:
		if dryRun {
			log.Infof("%s: patch would apply cleanly at offset 0x%X", d.TargetPath, d.Offset)
		} else {
			log.Infof("patched %s at offset 0x%X", d.TargetPath, d.Offset)
		}
	case patch.AlreadyApplied:
		log.Infof("%s appears to be already patched at offset 0x%X; no changes made", d.TargetPath, d.Offset)
	case patch.Mismatch:
		log.Errorf("byte mismatch at offset 0x%X in %s", d.Offset, d.TargetPath)
		log.Errorf("expected: %s", patch.HexPreview(d.Original, mismatchPreviewLen))
		log.Errorf("found:    %s", patch.HexPreview(outcome.Found, mismatchPreviewLen))
		log.Error("refusing to write to prevent corrupting the binary")
	case patch.NotFound:
		log.Errorf("file not found: %s", d.TargetPath)
	case patch.IOFailure:
		log.Errorf("could not open/write %s: %v", d.TargetPath, outcome.Err)
	}

	if db != nil {
		err := history.Record(db, &history.Application{
			PatchSet:   setName,
			TargetPath: d.TargetPath,
			Offset:     d.Offset,
			Result:     outcome.Result.String(),
			DryRun:     dryRun,
		})
		if err != nil {
			log.Warnf("failed to record history: %v", err)
		}
	}
}
