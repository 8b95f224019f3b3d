// Package bf1942 holds the built-in patch sets for the Battlefield 1942
// Linux dedicated server binaries (bf1942_lnxded.static and
// bf1942_lnxded.dynamic, retail v1.61).
//
// The offsets and byte sequences were derived by hand with a disassembler
// and are specific to those builds. Original patch credit: uuuzbf
// (https://github.com/uuuzbf/bf1942-patches).
package bf1942

import "patchkit/internal/patch"

const (
	staticBinary  = "bf1942_lnxded.static"
	dynamicBinary = "bf1942_lnxded.dynamic"
)

// ctfRespawn fixes the CTF flag respawn counter failing to reset when a
// flag is picked up or dropped.
var ctfRespawn = patch.Set{
	Name:        "ctf-respawn",
	Description: "Fix the CTF flag respawn counter not resetting on pickup/drop",
	Patches: []patch.Data{
		{
			File:           staticBinary,
			Offset:         0x249DCD,
			OriginalHex:    "50 56 E8 EC 0C DC FF 5A 59 50 A1 18 D9 70 08 50 FF 53 68 83 C4 20 EB A8 90 8D 76 00",
			ReplacementHex: "56 50 ff 53 68 8b 5d 08 8b 43 4c 8b 80 70 01 00 00 89 83 1c 01 00 00 83 c4 20 eb a4",
		},
		{
			File:           dynamicBinary,
			Offset:         0x250E3D,
			OriginalHex:    "50 56 E8 EC 0C DC FF 5A 59 50 A1 18 B4 6B 08 50 FF 53 68 83 C4 20 EB A8 90 8D 76 00",
			ReplacementHex: "56 50 ff 53 68 8b 5d 08 8b 43 4c 8b 80 70 01 00 00 89 83 1c 01 00 00 83 c4 20 eb a4",
		},
	},
}

// ctfFlagsMap fixes CTF flags falling through map objects: dropped flags
// always land on the terrain, passing through any building the carrier was
// standing on.
var ctfFlagsMap = patch.Set{
	Name:        "ctf-flags-map",
	Description: "Fix dropped CTF flags falling through buildings onto the terrain",
	Patches: []patch.Data{
		{
			File:   staticBinary,
			Offset: 0x249E80,
			OriginalHex: "D8 05 D0 E4 6B 08 58 8B 45 98 89 45 B8 5A 8B 45 9C 8B 55 08 89 45 BC 8B 45 A0 D9 45 AC D9 45 B0 " +
				"89 45 C0 D9 45 C0 D9 45 BC D9 CC D9 5D DC D9 C2 D9 C2 D9 C9 D8 CA D9 45 A8 D9 CA D8 CE D9 45 B8 " +
				"D9 CA DE E1 D9 C2 D9 CE D8 CA D9 CB D8 CF D9 C9 D9 55 C8 D9 CE D8 CC D9 C9 DE E3 D9 CC D8 C9 D9 " +
				"C3 D8 CE D9 C9 DE E5 D9 C6 D9 CB D9 55 D0 DC CB D9 CD D9 55 CC D9 CD D8 CA D9 CC D8 CD D9 C9 DE " +
				"E4 D9 C9 DE CC DE E9 D9 CC DE CB D9 5D AC DE E1 D9 C9 D9 5D A8 D9 5D B0",
			ReplacementHex: "d9 54 24 04 c7 04 24 00 02 00 02 8B 75 0C 8B 06 56 FF 50 3C 89 04 24 68 38 bb 71 08 6a c0 50 50 " +
				"d8 63 34 d9 5c 24 00 50 8d 43 30 ff 70 08 ff 70 04 ff 30 83 ec 20 8d 44 24 38 50 83 e8 0c 50 83 " +
				"e8 0c 50 83 e8 04 50 83 e8 0c 50 83 e8 0c 50 83 e8 04 50 a1 24 dc 71 08 50 8b 08 ff 51 48 83 c4 " +
				"20 84 c0 74 06 D9 44 24 08 eb 04 D9 44 24 44 a1 f0 35 74 08 50 8b 08 ff 51 5c dd e1 df e0 f6 c4 " +
				"45 74 04 dd d8 eb 02 dd d9 d8 05 d0 e4 6b 08 D9 5D DC 83 c4 4c 8B 55 08",
		},
		{
			File:   dynamicBinary,
			Offset: 0x250EF0,
			OriginalHex: "D8 05 D0 27 67 08 58 8B 45 98 89 45 B8 5A 8B 45 9C 8B 55 08 89 45 BC 8B 45 A0 D9 45 AC D9 45 B0 " +
				"89 45 C0 D9 45 C0 D9 45 BC D9 CC D9 5D DC D9 C2 D9 C2 D9 C9 D8 CA D9 45 A8 D9 CA D8 CE D9 45 B8 " +
				"D9 CA DE E1 D9 C2 D9 CE D8 CA D9 CB D8 CF D9 C9 D9 55 C8 D9 CE D8 CC D9 C9 DE E3 D9 CC D8 C9 D9 " +
				"C3 D8 CE D9 C9 DE E5 D9 C6 D9 CB D9 55 D0 DC CB D9 CD D9 55 CC D9 CD D8 CA D9 CC D8 CD D9 C9 DE " +
				"E4 D9 C9 DE CC DE E9 D9 CC DE CB D9 5D AC DE E1 D9 C9 D9 5D A8 D9 5D B0",
			ReplacementHex: "d9 54 24 04 c7 04 24 00 02 00 02 8B 75 0C 8B 06 56 FF 50 3C 89 04 24 68 38 96 6c 08 31 c0 50 50 " +
				"d8 63 34 d9 5c 24 00 50 8d 43 30 ff 70 08 ff 70 04 ff 30 83 ec 20 8d 44 24 38 50 83 e8 0c 50 83 " +
				"e8 0c 50 83 e8 04 50 83 e8 0c 50 83 e8 0c 50 83 e8 04 50 a1 24 b7 6c 08 50 8b 08 ff 51 48 83 c4 " +
				"20 84 c0 74 06 D9 44 24 08 eb 04 D9 44 24 44 a1 f0 10 6f 08 50 8b 08 ff 51 5c dd e1 df e0 f6 c4 " +
				"45 74 04 dd d8 eb 02 dd d9 d8 05 D0 27 67 08 D9 5D DC 83 c4 4c 8B 55 08",
		},
	},
}

// Sets returns every built-in patch set.
func Sets() []patch.Set {
	return []patch.Set{ctfRespawn, ctfFlagsMap}
}

// Find returns the built-in set with the given name, or false if no set by
// that name exists.
func Find(name string) (patch.Set, bool) {
	for _, s := range Sets() {
		if s.Name == name {
			return s, true
		}
	}
	return patch.Set{}, false
}
