/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/suparena/storemeter/errors"
	"github.com/suparena/storemeter/sizing"
	"github.com/suparena/storemeter/ttl"
	"github.com/suparena/storemeter/usage"
)

func newUsageCmd(a *app) *cobra.Command {
	var (
		table       string
		daily       bool
		storeNulls  bool
		metricsAddr string
	)

	usageCmd := &cobra.Command{
		Use:   "usage",
		Short: "Recompute the storage used by a table",
		Long: `Walks every page of the table, totals the estimated size of its items
and checks it against the configured quota. With --daily the recomputation
runs every day at the configured UTC hour until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if table == "" {
				table = a.cfg.AWS.Table
			}
			if table == "" {
				return errors.NewValidationError("table", "set --table or AWS_DDB_TABLE")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pager, err := a.newPager(ctx, a.cfg, table, a.logger)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			estimator := sizing.NewEstimator()
			if storeNulls {
				estimator = sizing.NewEstimator(sizing.WithStoreNullAccounting())
			}
			r := usage.NewRecomputer(table, pager,
				usage.WithQuota(a.cfg.Usage.QuotaBytes),
				usage.WithEstimator(estimator),
				usage.WithMetrics(usage.NewMetrics(reg)),
				usage.WithLogger(a.logger),
			)

			if metricsAddr != "" {
				srv := &http.Server{
					Addr:              metricsAddr,
					Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
					ReadHeaderTimeout: 5 * time.Second,
				}
				go func() {
					if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						a.logger.WithError(err).Error("metrics server stopped")
					}
				}()
				defer srv.Close()
				a.logger.WithField("addr", metricsAddr).Info("serving metrics")
			}

			if daily {
				err := ttl.NewDaily(a.cfg.Usage.Hour, r.Job(), a.logger).Run(ctx)
				if err == context.Canceled {
					return nil
				}
				return err
			}

			report, err := r.Run(ctx)
			if report != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d items\t%d bytes\t%s\n",
					report.Table, report.Items, report.Bytes, sizing.FormatSize(report.Bytes, true))
			}
			return err
		},
	}

	usageCmd.Flags().StringVarP(&table, "table", "t", "", "Table to measure (default AWS_DDB_TABLE)")
	usageCmd.Flags().BoolVar(&daily, "daily", false, "Run every day at the configured hour")
	usageCmd.Flags().BoolVar(&storeNulls, "store-nulls", false, "Charge one byte per null value")
	usageCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	return usageCmd
}
