package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/revlog/digest"
)

// ValidateCmd checks that a digest string has the right shape before the
// host uses it to look up an object.
var ValidateCmd = &cobra.Command{
	Use:   "validate <sha1|sha256> <hex-digest>",
	Short: "Check that a digest string is syntactically valid",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		algo, err := digest.ParseAlgorithm(args[0])
		if err != nil {
			return err
		}

		switch algo {
		case digest.SHA1:
			err = digest.ValidateSha1(args[1])
		case digest.SHA256:
			err = digest.ValidateSha256(args[1])
		default:
			return fmt.Errorf("validate supports sha1 and sha256, not %s", algo)
		}
		if err != nil {
			return fmt.Errorf("invalid %s digest: %w", algo, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "OK")
		return nil
	},
}
