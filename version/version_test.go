package version

import (
	"runtime/debug"
	"testing"
)

func TestGetDefaults(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()
	Version = "dev"

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
}

func TestApplyBuildInfo(t *testing.T) {
	tests := []struct {
		name      string
		info      Info
		settings  []debug.BuildSetting
		wantShort string
	}{
		{
			"vcs revision is truncated",
			Info{Version: "1.2.0"},
			[]debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
			"1.2.0-0123456",
		},
		{
			"ldflags commit wins",
			Info{Version: "1.2.0", GitCommit: "abc1234"},
			[]debug.BuildSetting{{Key: "vcs.revision", Value: "fffffffffff"}},
			"1.2.0-abc1234",
		},
		{
			"dirty tree",
			Info{Version: "dev"},
			[]debug.BuildSetting{{Key: "vcs.modified", Value: "true"}},
			"dev-dirty",
		},
		{
			"no vcs",
			Info{Version: "dev"},
			nil,
			"dev",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info := tc.info
			applyBuildInfo(&info, &debug.BuildInfo{GoVersion: "go1.26.0", Settings: tc.settings})
			if got := info.Short(); got != tc.wantShort {
				t.Errorf("Short() = %q, want %q", got, tc.wantShort)
			}
			if info.GoVersion != "go1.26.0" {
				t.Errorf("GoVersion = %q", info.GoVersion)
			}
		})
	}
}
