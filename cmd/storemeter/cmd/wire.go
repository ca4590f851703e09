/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/suparena/storemeter/wirestring"
)

func newWireCmd(a *app) *cobra.Command {
	wireCmd := &cobra.Command{
		Use:   "wire",
		Short: "Convert strings to and from UTF-16LE bytes (base64)",
	}

	wireCmd.AddCommand(
		&cobra.Command{
			Use:   "encode <text>",
			Short: "Print the base64 of the text's UTF-16LE bytes",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(wirestring.ToBytes(args[0])))
				return nil
			},
		},
		&cobra.Command{
			Use:   "decode <base64>",
			Short: "Print the text held in base64 UTF-16LE bytes",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := base64.StdEncoding.DecodeString(args[0])
				if err != nil {
					return fmt.Errorf("invalid base64: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), wirestring.FromBytes(b))
				return nil
			},
		},
	)
	return wireCmd
}
