package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/c9s/strkit"
)

func init() {
	EncodeCmd.Flags().StringP("method", "m", "base64", "encoding method: md5, base64 or base64-decode")
	RootCmd.AddCommand(EncodeCmd)
}

var EncodeCmd = &cobra.Command{
	Use:   "encode INPUT...",
	Short: "hash or base64 encode strings",
	Args:  cobra.MinimumNArgs(1),

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
	RunE:         encode,
}

func encode(cmd *cobra.Command, args []string) error {
	method, err := cmd.Flags().GetString("method")
	if err != nil {
		return err
	}

	var fn func(string) (string, error)
	switch method {
	case "md5":
		fn = func(s string) (string, error) { return strkit.MD5(s), nil }
	case "base64":
		fn = func(s string) (string, error) { return strkit.EncodeBase64(s), nil }
	case "base64-decode":
		fn = strkit.DecodeBase64
	default:
		return errors.Errorf("unknown encoding method %q", method)
	}

	for _, arg := range args {
		out, err := fn(arg)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
			return err
		}
	}

	return nil
}
