package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/c9s/strkit"
)

func init() {
	DaysCmd.Flags().String("layout", strkit.DefaultTimestampLayout, "go time layout of both arguments")
	RootCmd.AddCommand(DaysCmd)
}

var DaysCmd = &cobra.Command{
	Use:   "days FROM TO",
	Short: "print the number of whole days from FROM to TO",
	Args:  cobra.ExactArgs(2),

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
	RunE:         days,
}

func days(cmd *cobra.Command, args []string) error {
	layout, err := cmd.Flags().GetString("layout")
	if err != nil {
		return err
	}

	from, err := strkit.ParseTimestamp(args[0], layout, time.UTC)
	if err != nil {
		return err
	}

	to, err := strkit.ParseTimestamp(args[1], layout, time.UTC)
	if err != nil {
		return err
	}

	d := strkit.DaysDifference(time.UnixMilli(to), time.UnixMilli(from))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), d)
	return err
}
