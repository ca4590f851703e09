/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/suparena/storemeter/config"
	"github.com/suparena/storemeter/datastore"
	"github.com/suparena/storemeter/datastore/ddb"
	"github.com/suparena/storemeter/logging"
	"github.com/suparena/storemeter/storagemodels"
)

// app carries what PersistentPreRunE loads to the subcommands.
type app struct {
	configPath string
	envFile    string

	cfg    *config.Config
	logger *logrus.Logger

	now      func() time.Time
	newPager func(ctx context.Context, cfg *config.Config, table string, logger logrus.FieldLogger) (datastore.Pager, error)
}

func newApp() *app {
	return &app{
		now:      time.Now,
		newPager: dynamoPager,
	}
}

func dynamoPager(ctx context.Context, cfg *config.Config, table string, logger logrus.FieldLogger) (datastore.Pager, error) {
	client, err := ddb.NewDynamoDBClient(ctx, cfg.AWS, logger)
	if err != nil {
		return nil, err
	}
	return ddb.NewDynamodbDataStore(client, table, logger, storagemodels.WithPageSize(cfg.Usage.PageSize)), nil
}

// NewRootCmd returns the storemeter command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "storemeter",
		Short: "Storage accounting and pagination cursors for DynamoDB records",
		Long: `storemeter estimates the stored size of records, encodes and decodes
next-page tokens, converts TTL timestamps, validates email addresses and
recomputes the storage used by a table.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var envFiles []string
			if a.envFile != "" {
				envFiles = append(envFiles, a.envFile)
			}
			cfg, err := config.Load(a.configPath, envFiles...)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "env file to load instead of .env")

	rootCmd.AddCommand(
		newSizeCmd(a),
		newCursorCmd(a),
		newTTLCmd(a),
		newEmailCmd(a),
		newWireCmd(a),
		newUsageCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// Execute runs the command tree. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
