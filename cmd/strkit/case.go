package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c9s/strkit"
)

func init() {
	CaseCmd.Flags().String("from", "camel", "source style: camel, pascal, snake, kebab or screaming-snake")
	CaseCmd.Flags().String("to", "snake", "target style: camel, pascal, snake, kebab or screaming-snake")
	CaseCmd.Flags().Bool("text", false, "treat the input as free text instead of an identifier")
	RootCmd.AddCommand(CaseCmd)
}

var CaseCmd = &cobra.Command{
	Use:   "case INPUT...",
	Short: "convert identifiers between case styles",
	Args:  cobra.MinimumNArgs(1),

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
	RunE:         convertCase,
}

func convertCase(cmd *cobra.Command, args []string) error {
	fromName, err := cmd.Flags().GetString("from")
	if err != nil {
		return err
	}

	toName, err := cmd.Flags().GetString("to")
	if err != nil {
		return err
	}

	isText, err := cmd.Flags().GetBool("text")
	if err != nil {
		return err
	}

	from, err := strkit.ParseCaseStyle(fromName)
	if err != nil {
		return err
	}

	to, err := strkit.ParseCaseStyle(toName)
	if err != nil {
		return err
	}

	for _, arg := range args {
		var out string
		if isText {
			out = strkit.TextToCase(arg, to)
		} else {
			out = strkit.ConvertCase(arg, from, to)
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
			return err
		}
	}

	return nil
}
