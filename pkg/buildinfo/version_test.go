package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestMerge(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	tests := []struct {
		name string
		in   Info
		want string
	}{
		{
			name: "unset falls back to module info",
			in:   Info{Version: "dev", Commit: "none", Date: "unknown"},
			want: "version: v0.3.0\ncommit: 0123456789ab-dirty\nbuilt: 2026-01-02T03:04:05Z",
		},
		{
			name: "ldflags win",
			in:   Info{Version: "v1.0.0", Commit: "abc", Date: "today"},
			want: "version: v1.0.0\ncommit: abc-dirty\nbuilt: today",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := merge(tt.in, bi).String(); got != tt.want {
				t.Errorf("merge() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMergeDevelVersion(t *testing.T) {
	got := merge(Info{Version: "dev"}, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if got.Version != "dev" {
		t.Errorf("Version = %q, want dev", got.Version)
	}
}

func TestTemplate(t *testing.T) {
	if tpl := Template(); !strings.HasPrefix(tpl, "{{.Name}} ") {
		t.Errorf("Template() = %q", tpl)
	}
}
