package main

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/turing"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of turing",
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		writeVersion(cmd.OutOrStdout(), turing.Version, info)
	},
}

// writeVersion prints the release version. Development builds fall back to
// the module version recorded by `go install` and list the VCS revision.
func writeVersion(w io.Writer, version string, info *debug.BuildInfo) {
	version = strings.TrimSpace(version)
	if info == nil {
		fmt.Fprintf(w, "turing version %s\n", version)
		return
	}

	if strings.HasSuffix(version, "-dev") && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	fmt.Fprintf(w, "turing version %s\n", version)

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	if rev := settings["vcs.revision"]; rev != "" {
		if len(rev) > 12 {
			rev = rev[:12]
		}
		if settings["vcs.modified"] == "true" {
			rev += " (modified)"
		}
		fmt.Fprintf(w, "commit: %s\n", rev)
	}
	if info.GoVersion != "" {
		fmt.Fprintf(w, "go: %s\n", info.GoVersion)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
