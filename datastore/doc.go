/*
Package datastore defines how storemeter reads pages of records from a table.

	type Pager interface {
	    QueryPage(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.Page, error)
	}

Implementations:
  - ddb: DynamoDB Query/Scan with retry on throttling
  - mock: in-memory, key-ordered table for tests

Walk drives a Pager across every page of a table, which is how usage totals
are recomputed.
*/
package datastore
