package core

import (
	"path/filepath"
	"testing"
)

func TestConfig_HistoryPath(t *testing.T) {
	tests := []struct {
		name      string
		serverDir string
		filename  string
		want      string
	}{
		{
			name:      "relative filename resolves against the server dir",
			serverDir: "/opt/bf1942",
			filename:  "patchkit.db",
			want:      filepath.Join("/opt/bf1942", "patchkit.db"),
		},
		{
			name:      "absolute filename is used as-is",
			serverDir: "/opt/bf1942",
			filename:  "/var/lib/patchkit/patchkit.db",
			want:      "/var/lib/patchkit/patchkit.db",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ServerDir: tt.serverDir}
			cfg.History.Filename = tt.filename

			if got := cfg.HistoryPath(); got != tt.want {
				t.Errorf("HistoryPath() = %s, want %s", got, tt.want)
			}
		})
	}
}
