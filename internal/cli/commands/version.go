package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// BuildInfo is stamped into the binary at link time.
type BuildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Built   string `json:"built"`
	Go      string `json:"go"`
}

// NewVersionCommand reports the build the binary was stamped with.
func NewVersionCommand(version, commit, buildDate string) *cobra.Command {
	var short bool
	info := BuildInfo{Version: version, Commit: commit, Built: buildDate, Go: runtime.Version()}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Print the piper-site release, the commit it was built from and the Go toolchain.`,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			if short {
				_, _ = fmt.Fprintln(w, info.Version)
				return
			}
			_, _ = fmt.Fprintf(w, "piper-site v%s\ncommit %s, built %s, %s\n", info.Version, info.Commit, info.Built, info.Go)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}
