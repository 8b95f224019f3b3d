package bf1942

import (
	"testing"
)

func TestSets_DecodeCleanly(t *testing.T) {
	sets := Sets()
	if len(sets) == 0 {
		t.Fatal("no built-in patch sets")
	}

	for _, set := range sets {
		t.Run(set.Name, func(t *testing.T) {
			descriptors, errs := set.Descriptors(t.TempDir())
			if len(errs) != 0 {
				t.Fatalf("set contains undecodable patches: %v", errs)
			}
			if len(descriptors) != len(set.Patches) {
				t.Fatalf("decoded %d descriptors from %d patches", len(descriptors), len(set.Patches))
			}

			for _, d := range descriptors {
				// All of the BF1942 patches overwrite instruction bytes
				// in place, so the windows must line up exactly.
				if len(d.Original) != len(d.Replacement) {
					t.Errorf("%s at 0x%X: original is %d bytes but replacement is %d",
						d.TargetPath, d.Offset, len(d.Original), len(d.Replacement))
				}
				if d.Offset <= 0 {
					t.Errorf("%s: suspicious offset 0x%X", d.TargetPath, d.Offset)
				}
			}
		})
	}
}

func TestSets_KnownData(t *testing.T) {
	set, ok := Find("ctf-respawn")
	if !ok {
		t.Fatal("ctf-respawn set missing")
	}

	descriptors, errs := set.Descriptors("")
	if len(errs) != 0 {
		t.Fatalf("errors decoding ctf-respawn: %v", errs)
	}

	d := descriptors[0]
	if d.Offset != 0x249DCD {
		t.Errorf("static offset = 0x%X, want 0x249DCD", d.Offset)
	}
	if len(d.Original) != 28 {
		t.Errorf("window length = %d, want 28", len(d.Original))
	}
	if d.Original[0] != 0x50 || d.Replacement[0] != 0x56 {
		t.Errorf("unexpected leading bytes: original 0x%02X, replacement 0x%02X",
			d.Original[0], d.Replacement[0])
	}
}

func TestFind_UnknownName(t *testing.T) {
	if _, ok := Find("no-such-set"); ok {
		t.Error("Find() reported an unknown set as present")
	}
}
