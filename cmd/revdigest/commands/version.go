package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/revlog/digest/version"
)

// VersionCmd prints the version of the digest core.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Run: func(cmd *cobra.Command, _ []string) {
		v := version.CoreSemVer
		if version.GitCommitHash != "" {
			v += "+" + version.GitCommitHash
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
	},
}
