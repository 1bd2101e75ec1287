package main

import (
	"os"

	cmd "github.com/revlog/digest/cmd/revdigest/commands"
)

func main() {
	rootCmd := cmd.RootCmd
	rootCmd.AddCommand(
		cmd.SumCmd,
		cmd.ValidateCmd,
		cmd.VersionCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
