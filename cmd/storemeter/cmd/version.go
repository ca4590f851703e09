/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/suparena/storemeter"
)

func newVersionCmd(a *app) *cobra.Command {
	var asJSON bool
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := storemeter.GetVersionInfo()
			if asJSON {
				out, err := json.Marshal(info)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), info)
			return nil
		},
	}
	versionCmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return versionCmd
}
