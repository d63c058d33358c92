package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/spigell/workfit/cmd.version=...".
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		printVersion(cmd.OutOrStdout(), resolveVersion(version, debug.ReadBuildInfo))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// resolveVersion prefers the linked version, then the module version from build info.
func resolveVersion(linked string, info func() (*debug.BuildInfo, bool)) string {
	if linked != "" {
		return linked
	}
	if bi, ok := info(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "unknown"
}

func printVersion(w io.Writer, v string) {
	fmt.Fprintf(w, "%s version: %s\n", app, v)
}
