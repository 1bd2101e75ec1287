package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/revlog/digest/libs/log"
)

var logger = log.NewNopLogger()

func init() {
	registerFlagsRootCmd(RootCmd)
}

func registerFlagsRootCmd(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log_level", "info", "log level (debug|info|warn|error)")
}

// RootCmd is the root command for revdigest.
var RootCmd = &cobra.Command{
	Use:   "revdigest",
	Short: "Content digests and checksums for revlog repositories",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		level, err := log.ParseLevel(viper.GetString("log_level"))
		if err != nil {
			return err
		}
		logger = log.NewLogger(os.Stderr, level)
		return nil
	},
}
