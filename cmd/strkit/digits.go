package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c9s/strkit"
)

func init() {
	DigitsCmd.Flags().String("to", "", "target alphabet: persian, arabic or western, defaults to digitAlphabet of the config")
	DigitsCmd.Flags().Bool("letters", false, "also replace arabic letter variants with persian letters")
	RootCmd.AddCommand(DigitsCmd)
}

var DigitsCmd = &cobra.Command{
	Use:   "digits INPUT...",
	Short: "transliterate digits between persian, arabic-indic and western alphabets",
	Args:  cobra.MinimumNArgs(1),

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
	RunE:         transliterate,
}

func transliterate(cmd *cobra.Command, args []string) error {
	toName, err := cmd.Flags().GetString("to")
	if err != nil {
		return err
	}

	letters, err := cmd.Flags().GetBool("letters")
	if err != nil {
		return err
	}

	to := config.Alphabet()
	if toName != "" {
		to, err = strkit.ParseDigitAlphabet(toName)
		if err != nil {
			return err
		}
	}

	for _, arg := range args {
		if letters {
			arg = strkit.ArabicToPersian(arg)
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), strkit.Translate(arg, to)); err != nil {
			return err
		}
	}

	return nil
}
