//go:build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"testing"

	"github.com/suparena/storemeter/config"
	"github.com/suparena/storemeter/datastore"
	"github.com/suparena/storemeter/sizing"
	"github.com/suparena/storemeter/storagemodels"
)

func getTableStore(t *testing.T) *DynamodbDataStore {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.AWS.Table == "" {
		t.Skip("AWS_DDB_TABLE not set")
	}

	store, err := NewDynamodbDataStoreFromConfig(context.Background(), cfg.AWS, quietLogger())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestDynamoDBScanFirstPage(t *testing.T) {
	store := getTableStore(t)

	page, err := store.QueryPage(context.Background(), &storagemodels.QueryParams{Limit: aws32(10)})
	if err != nil {
		t.Fatalf("QueryPage failed: %v", err)
	}
	t.Logf("read %d items, more: %v", len(page.Items), page.HasMore())
}

func TestDynamoDBTableSize(t *testing.T) {
	store := getTableStore(t)

	var total int64
	err := datastore.Walk(context.Background(), store, storagemodels.QueryParams{}, func(p *storagemodels.Page) error {
		for _, rec := range p.Items {
			total += sizing.Estimate(rec)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	t.Logf("table %s: %s", store.TableName(), sizing.FormatSize(total, true))
}

func aws32(v int32) *int32 { return &v }
