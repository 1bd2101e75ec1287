package commands

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/revlog/digest"
)

var (
	flagAlgorithm string
	flagFormat    string
)

func init() {
	SumCmd.Flags().StringVarP(&flagAlgorithm, "algorithm", "a",
		digest.Default().String(), "digest algorithm (sha1|sha256|crc32)")
	SumCmd.Flags().StringVarP(&flagFormat, "format", "f",
		"hex", "output format (hex|dec); dec is only defined for crc32")
}

// SumCmd prints the digest of each named file, or of stdin when no files are
// given.
var SumCmd = &cobra.Command{
	Use:   "sum [file ...]",
	Short: "Print the digest of each file (or stdin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		algo, err := digest.ParseAlgorithm(flagAlgorithm)
		if err != nil {
			return err
		}
		if flagFormat != "hex" && flagFormat != "dec" {
			return fmt.Errorf("unknown output format %q (expected hex|dec)", flagFormat)
		}
		if flagFormat == "dec" && algo != digest.CRC32 {
			return fmt.Errorf("decimal output is only defined for crc32, not %s", algo)
		}

		if len(args) == 0 {
			bz, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			sum, err := digest.Sum(algo, bz)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render(sum))
			return nil
		}

		for _, path := range args {
			sum, err := digest.SumFile(algo, path)
			if err != nil {
				return err
			}
			logger.Debug("hashed file", "path", path, "algorithm", algo.String(), "bytes", len(sum))
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", render(sum), path)
		}
		return nil
	},
}

func render(sum digest.Bytes) string {
	if flagFormat == "dec" {
		return digest.Decimal(binary.BigEndian.Uint32(sum))
	}
	return digest.Hex(sum)
}
