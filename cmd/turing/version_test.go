package main

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		info    *debug.BuildInfo
		want    string
	}{
		{
			name:    "No Build Info",
			version: "v0.1.0-dev\n",
			want:    "turing version v0.1.0-dev\n",
		},
		{
			name:    "Dev Build Uses Module Version",
			version: "v0.1.0-dev",
			info: &debug.BuildInfo{
				GoVersion: "go1.25.4",
				Main:      debug.Module{Path: "github.com/aretw0/turing", Version: "v0.2.1"},
			},
			want: "turing version v0.2.1\ngo: go1.25.4\n",
		},
		{
			name:    "Release Version Wins",
			version: "v1.0.0",
			info: &debug.BuildInfo{
				Main: debug.Module{Version: "v0.2.1"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef0123"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: "turing version v1.0.0\ncommit: 0123456789ab (modified)\n",
		},
		{
			name:    "Local Checkout",
			version: "v0.1.0-dev",
			info: &debug.BuildInfo{
				Main:     debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
			},
			want: "turing version v0.1.0-dev\ncommit: abc123\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writeVersion(&buf, tt.version, tt.info)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "turing version ")
}
