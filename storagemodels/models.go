/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// QueryParams defines parameters for reading one page from a table.
// When KeyConditionExpression is empty the page is read with a Scan.
type QueryParams struct {
	// TableName is the DynamoDB table name.
	TableName string
	// KeyConditionExpression is the primary condition for the query.
	KeyConditionExpression string
	// FilterExpression is an optional filter expression.
	FilterExpression *string
	// ExpressionAttributeValues contains the values for expression placeholders.
	ExpressionAttributeValues map[string]types.AttributeValue
	// IndexName is optional if you wish to query a secondary index.
	IndexName *string
	// Limit defines an optional limit per page.
	Limit *int32
	// ExclusiveStartKey resumes the read after this key; nil starts from the beginning.
	ExclusiveStartKey Key
	// ScanIndexForward specifies the order for index traversal.
	// If true (default), traversal is in ascending order.
	ScanIndexForward *bool
}

// Page is one page of records plus the key to resume after.
type Page struct {
	Items []Record
	// LastEvaluatedKey is nil when there are no more pages.
	LastEvaluatedKey Key
}

// HasMore reports whether another page may follow.
func (p *Page) HasMore() bool {
	return p != nil && len(p.LastEvaluatedKey) > 0
}
