/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/storemeter/storagemodels"
)

// Pager reads one page of records at a time. A page's LastEvaluatedKey is
// passed back as the next call's ExclusiveStartKey to continue.
type Pager interface {
	QueryPage(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.Page, error)
}

// PageHandler receives each page of a walk. Returning an error stops the walk.
type PageHandler func(page *storagemodels.Page) error

// Walk reads every page matching params, starting at params.ExclusiveStartKey,
// and hands each to fn. params is not modified.
func Walk(ctx context.Context, pager Pager, params storagemodels.QueryParams, fn PageHandler) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		page, err := pager.QueryPage(ctx, &params)
		if err != nil {
			return err
		}
		if err := fn(page); err != nil {
			return err
		}
		if !page.HasMore() {
			return nil
		}
		params.ExclusiveStartKey = page.LastEvaluatedKey
	}
}
