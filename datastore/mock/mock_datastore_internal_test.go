/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/suparena/storemeter/errors"
	"github.com/suparena/storemeter/storagemodels"
)

func TestQueryPageReportsUnkeyedRow(t *testing.T) {
	schema := storagemodels.KeySchema{
		{Name: "PK", Kind: storagemodels.KindString},
		{Name: "SK", Kind: storagemodels.KindString},
	}
	m := New(schema)
	for _, sk := range []string{"1", "2"} {
		if err := m.Put(storagemodels.Record{"PK": storagemodels.String("a"), "SK": storagemodels.String(sk)}); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	// A row without its sort key sorts first and ends the page.
	m.data["unkeyed"] = storagemodels.Record{"PK": storagemodels.String("a")}

	page, err := m.QueryPage(context.Background(), &storagemodels.QueryParams{Limit: aws.Int32(1)})
	if err == nil {
		t.Fatalf("Expected error, got page %+v", page)
	}
	if !errors.IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}
