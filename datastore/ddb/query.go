/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
	"github.com/suparena/storemeter/storagemodels"
)

// QueryPage reads one page from the store's table. It issues a Query when
// params has a key condition and a Scan otherwise. The store's table name is
// always used; params.TableName is ignored. Throttling and other retryable
// errors are retried with linear backoff.
func (d *DynamodbDataStore) QueryPage(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.Page, error) {
	limit := params.Limit
	if limit == nil && d.options.PageSize > 0 {
		limit = aws.Int32(d.options.PageSize)
	}
	startKey := storagemodels.ToItem(params.ExclusiveStartKey)

	var (
		items   []map[string]types.AttributeValue
		lastKey map[string]types.AttributeValue
	)
	if params.KeyConditionExpression != "" {
		input := &dynamodb.QueryInput{
			TableName:                 aws.String(d.tableName),
			KeyConditionExpression:    aws.String(params.KeyConditionExpression),
			ExpressionAttributeValues: params.ExpressionAttributeValues,
			FilterExpression:          params.FilterExpression,
			IndexName:                 params.IndexName,
			Limit:                     limit,
			ScanIndexForward:          params.ScanIndexForward,
			ExclusiveStartKey:         startKey,
		}
		out, err := withRetry(ctx, d.options, d.logger, func() (*dynamodb.QueryOutput, error) {
			return d.client.Query(ctx, input)
		})
		if err != nil {
			return nil, fmt.Errorf("query error: %w", err)
		}
		items, lastKey = out.Items, out.LastEvaluatedKey
	} else {
		input := &dynamodb.ScanInput{
			TableName:                 aws.String(d.tableName),
			ExpressionAttributeValues: params.ExpressionAttributeValues,
			FilterExpression:          params.FilterExpression,
			IndexName:                 params.IndexName,
			Limit:                     limit,
			ExclusiveStartKey:         startKey,
		}
		out, err := withRetry(ctx, d.options, d.logger, func() (*dynamodb.ScanOutput, error) {
			return d.client.Scan(ctx, input)
		})
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		items, lastKey = out.Items, out.LastEvaluatedKey
	}

	page := &storagemodels.Page{Items: make([]storagemodels.Record, 0, len(items))}
	for _, item := range items {
		page.Items = append(page.Items, storagemodels.FromItem(item))
	}
	if len(lastKey) > 0 {
		page.LastEvaluatedKey = storagemodels.Key(storagemodels.FromItem(lastKey))
	}

	d.logger.WithFields(logrus.Fields{
		"items":    len(page.Items),
		"has_more": page.HasMore(),
	}).Debug("read page")
	return page, nil
}
