package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/c9s/strkit"
)

func init() {
	SimilarityCmd.Flags().Int("digits", -1, "decimal places of the score, defaults to similarityDigits of the config")
	RootCmd.AddCommand(DistanceCmd)
	RootCmd.AddCommand(SimilarityCmd)
}

var DistanceCmd = &cobra.Command{
	Use:   "distance A B",
	Short: "print the levenshtein distance of two strings",
	Args:  cobra.ExactArgs(2),

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
	RunE:         distance,
}

var SimilarityCmd = &cobra.Command{
	Use:   "similarity [A] [B]",
	Short: "print the similarity percentage of two strings",
	Long:  "print the similarity percentage of two strings, a missing argument is treated as an absent value",
	Args:  cobra.RangeArgs(0, 2),

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
	RunE:         similarity,
}

func distance(cmd *cobra.Command, args []string) error {
	t := startTimer("distance")
	d := strkit.Distance(args[0], args[1])
	t.done("distance(%q, %q) = %d", args[0], args[1], d)

	_, err := fmt.Fprintln(cmd.OutOrStdout(), d)
	return err
}

func similarity(cmd *cobra.Command, args []string) error {
	digits, err := cmd.Flags().GetInt("digits")
	if err != nil {
		return err
	}

	if digits < 0 {
		digits = config.SimilarityDigits
	}

	var a, b *string
	if len(args) > 0 {
		a = &args[0]
	}
	if len(args) > 1 {
		b = &args[1]
	}

	score := strkit.Similarity(a, b, digits)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(score, 'f', -1, 64))
	return err
}
