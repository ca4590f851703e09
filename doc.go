/*
Package storemeter provides storage accounting and pagination cursors for
services that keep application records in DynamoDB.

Without a round trip to the store it can:
  - Estimate the stored byte size of any nested record, for quota checks
    and usage reporting (package sizing)
  - Issue and consume opaque next-page tokens that let API clients resume a
    paginated read (package cursor)
  - Convert between times and TTL epoch seconds, and schedule daily work
    (package ttl)
  - Validate email syntax (package validation)
  - Encode strings as UTF-16LE bytes for client-side crypto (package wirestring)

Basic Usage:

	svc := storemeter.NewService(storemeter.WithLogger(logger))

	store, _ := ddb.NewDynamodbDataStoreFromConfig(ctx, cfg.AWS, logger)
	_ = svc.Register("apps", store, storagemodels.KeySchema{
	    {Name: "PK", Kind: storagemodels.KindString},
	    {Name: "SK", Kind: storagemodels.KindString},
	})

	// token comes from the client's previous response; "" starts over
	res, err := svc.ListPage(ctx, "apps", params, token)
	if errors.IsBadPaginationToken(err) {
	    // respond 400 "next page token invalid"
	}
	// res.Items, res.NextPageToken, res.HasMore

	bytes := svc.ItemSize(record)

Usage of a whole table is recomputed by usage.Recomputer, typically once a
day through ttl.Daily. The storemeter command in cmd/storemeter exposes every
component from the shell.
*/
package storemeter
