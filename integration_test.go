//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storemeter_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/suparena/storemeter"
	"github.com/suparena/storemeter/config"
	"github.com/suparena/storemeter/datastore/ddb"
	"github.com/suparena/storemeter/logging"
	"github.com/suparena/storemeter/registry"
	"github.com/suparena/storemeter/storagemodels"
	"github.com/suparena/storemeter/usage"
)

func setupTestStore(t *testing.T) (*config.Config, *ddb.DynamodbDataStore) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.AWS.Table == "" {
		t.Skip("AWS_DDB_TABLE not set, skipping integration test")
	}

	logger, err := logging.New(cfg.Log, nil)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	store, err := ddb.NewDynamodbDataStoreFromConfig(context.Background(), cfg.AWS, logger)
	if err != nil {
		t.Fatalf("Failed to create datastore: %v", err)
	}
	return cfg, store
}

func TestIntegrationListPages(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg, store := setupTestStore(t)

	reg := registry.NewSchemaRegistry()
	schema := storagemodels.KeySchema{
		{Name: "PK", Kind: storagemodels.KindString},
		{Name: "SK", Kind: storagemodels.KindString},
	}
	if err := reg.Register(cfg.AWS.Table, schema); err != nil {
		t.Fatalf("Failed to register schema: %v", err)
	}

	svc := storemeter.NewService()
	if err := svc.RegisterFromRegistry(reg, cfg.AWS.Table, store); err != nil {
		t.Fatalf("Failed to register table: %v", err)
	}

	token := ""
	for i := 0; i < 3; i++ {
		res, err := svc.ListPage(ctx, cfg.AWS.Table, storagemodels.QueryParams{Limit: aws.Int32(5)}, token)
		if err != nil {
			t.Fatalf("ListPage failed: %v", err)
		}
		for _, rec := range res.Items {
			t.Logf("item size: %d", svc.ItemSize(rec))
		}
		if !res.HasMore {
			break
		}
		token = res.NextPageToken
	}
}

func TestIntegrationUsage(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg, store := setupTestStore(t)
	r := usage.NewRecomputer(cfg.AWS.Table, store,
		usage.WithQuota(cfg.Usage.QuotaBytes),
		usage.WithMetrics(usage.NewMetrics(prometheus.NewRegistry())),
	)
	report, err := r.Run(context.Background())
	if err != nil && report == nil {
		t.Fatalf("usage run failed: %v", err)
	}
	t.Logf("run %s: %d items, %d bytes", report.RunID, report.Items, report.Bytes)
}
