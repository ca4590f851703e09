/*
Package ddb reads pages of records from DynamoDB.

DynamodbDataStore implements datastore.Pager. A page is read with Query when
QueryParams carries a key condition and with Scan otherwise; both convert
items to storagemodels.Record and LastEvaluatedKey to storagemodels.Key.

	store, err := ddb.NewDynamodbDataStoreFromConfig(ctx, cfg.AWS, logger,
	    storagemodels.WithPageSize(25),
	    storagemodels.WithMaxRetries(3),
	)
	page, err := store.QueryPage(ctx, &storagemodels.QueryParams{
	    KeyConditionExpression: "PK = :pk",
	    ExpressionAttributeValues: map[string]types.AttributeValue{
	        ":pk": &types.AttributeValueMemberS{Value: "APP#123"},
	    },
	})

Throttling (ProvisionedThroughputExceeded, RequestLimitExceeded) and internal
server errors are retried with linear backoff. Tests against a live table are
behind the integration build tag and read AWS_* variables from .env.
*/
package ddb
