/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/suparena/storemeter/errors"
	"github.com/suparena/storemeter/ttl"
)

func newTTLCmd(a *app) *cobra.Command {
	ttlCmd := &cobra.Command{
		Use:   "ttl",
		Short: "Convert between times and TTL epoch seconds",
	}

	epochCmd := &cobra.Command{
		Use:   "epoch [date-time]",
		Short: "Print the epoch seconds of an RFC 3339 time (default now)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := a.now()
			if len(args) == 1 {
				parsed, err := ttl.ParseExpiration(args[0])
				if err != nil {
					return err
				}
				t = parsed
			}
			fmt.Fprintln(cmd.OutOrStdout(), ttl.ToEpochSeconds(t))
			return nil
		},
	}

	dateCmd := &cobra.Command{
		Use:   "date <epoch-seconds>",
		Short: "Print the UTC time of epoch seconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sec, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.NewValidationError("epoch-seconds", "must be an integer")
			}
			fmt.Fprintln(cmd.OutOrStdout(), ttl.ToDate(sec).Format(time.RFC3339))
			return nil
		},
	}

	var hour int
	nextCmd := &cobra.Command{
		Use:   "next",
		Short: "Print the next daily trigger and the milliseconds until it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := a.cfg.Usage.Hour
			if cmd.Flags().Changed("hour") {
				h = hour
			}
			now := a.now()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n",
				ttl.NextDailyTrigger(now, h).Format(time.RFC3339),
				ttl.MsUntilNextDailyTrigger(now, h))
			return nil
		},
	}
	nextCmd.Flags().IntVar(&hour, "hour", 0, "UTC trigger hour (default from config)")

	ttlCmd.AddCommand(epochCmd, dateCmd, nextCmd)
	return ttlCmd
}
