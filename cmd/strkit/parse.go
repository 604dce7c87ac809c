package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/c9s/strkit"
)

func init() {
	ParseCmd.Flags().StringP("kind", "k", "int", "numeric kind: byte, short, int, long, float or double")
	RootCmd.AddCommand(ParseCmd)
	RootCmd.AddCommand(FormatCmd)
}

var ParseCmd = &cobra.Command{
	Use:   "parse INPUT START LENGTH",
	Short: "parse a substring as a number, START is 1-based",
	Args:  cobra.ExactArgs(3),

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
	RunE:         parse,
}

var FormatCmd = &cobra.Command{
	Use:   "format NUMBER...",
	Short: "format numbers with thousands separators",
	Args:  cobra.MinimumNArgs(1),

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
	RunE:         format,
}

func parse(cmd *cobra.Command, args []string) error {
	kindName, err := cmd.Flags().GetString("kind")
	if err != nil {
		return err
	}

	kind, err := strkit.ParseNumericKind(kindName)
	if err != nil {
		return err
	}

	start, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(args[2])
	if err != nil {
		return err
	}

	number, err := strkit.ParseSubstring(args[0], start, n, kind)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), number)
	return err
}

func format(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), strkit.FormatThousandsString(arg)); err != nil {
			return err
		}
	}

	return nil
}
