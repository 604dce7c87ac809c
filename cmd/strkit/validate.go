package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/c9s/strkit"
)

func init() {
	ValidateCmd.Flags().StringP("file", "f", "", "read values from a file, one per line, \"-\" for stdin")
	RootCmd.AddCommand(ValidateCmd)
}

var ValidateCmd = &cobra.Command{
	Use:   "validate KIND [VALUE...]",
	Short: "validate card numbers, iranian national codes and mobile numbers",
	Long:  "validate values with one of the validators: luhn, card, national-code, mobile",
	Args:  cobra.MinimumNArgs(1),

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
	RunE:         validate,
}

func validate(cmd *cobra.Command, args []string) error {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}

	values := args[1:]
	if file != "" {
		lines, err := readLines(cmd, file)
		if err != nil {
			return err
		}

		values = append(values, lines...)
	}

	if len(values) == 0 {
		return errors.New("no values to validate")
	}

	t := startTimer("validate")
	set := strkit.NewValidatorSet(config.MobileValidator())
	verdicts, err := set.Check(args[0], values...)
	if err != nil {
		return err
	}

	t.done("validated %d values with %s", len(verdicts), args[0])

	strkit.RenderVerdicts(cmd.OutOrStdout(), verdicts)
	return nil
}

func readLines(cmd *cobra.Command, file string) ([]string, error) {
	if file == "-" {
		return strkit.ReadValues(cmd.InOrStdin())
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", file)
	}

	defer f.Close()

	values, err := strkit.ReadValues(f)
	return values, errors.Wrapf(err, "failed to read %s", file)
}
