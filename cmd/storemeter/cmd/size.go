/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/suparena/storemeter/sizing"
	"github.com/suparena/storemeter/storagemodels"
)

func newSizeCmd(a *app) *cobra.Command {
	var (
		human      bool
		storeNulls bool
		used       int64
		quota      int64
	)

	sizeCmd := &cobra.Command{
		Use:   "size [file]",
		Short: "Estimate the stored size of a JSON record",
		Long: `Reads a JSON object from file, or stdin, and prints its estimated
stored size in bytes. With --quota the size is added to --used and checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			rec, err := storagemodels.RecordFromJSON(data)
			if err != nil {
				return err
			}

			var opts []sizing.Option
			if storeNulls {
				opts = append(opts, sizing.WithStoreNullAccounting())
			}
			size := sizing.NewEstimator(opts...).Estimate(rec)

			if human {
				fmt.Fprintln(cmd.OutOrStdout(), sizing.FormatSize(size, true))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), size)
			}
			return sizing.CheckQuota(used+size, quota)
		},
	}

	sizeCmd.Flags().BoolVarP(&human, "human", "H", false, "Print a human-readable size")
	sizeCmd.Flags().BoolVar(&storeNulls, "store-nulls", false, "Charge one byte per null value")
	sizeCmd.Flags().Int64Var(&used, "used", 0, "Bytes already used")
	sizeCmd.Flags().Int64Var(&quota, "quota", 0, "Quota in bytes (0 disables the check)")
	return sizeCmd
}
