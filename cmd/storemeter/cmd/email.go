/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/suparena/storemeter/errors"
	"github.com/suparena/storemeter/validation"
)

func newEmailCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "email <address>...",
		Short: "Check email address syntax",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, addr := range args {
				verdict := "valid"
				if !validation.ValidateEmailSyntax(addr) {
					verdict = "invalid"
					invalid++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", addr, verdict)
			}
			if invalid > 0 {
				return errors.NewValidationError("email", fmt.Sprintf("%d of %d addresses invalid", invalid, len(args)))
			}
			return nil
		},
	}
}
