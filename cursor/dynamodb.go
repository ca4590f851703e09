/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cursor

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/storemeter/storagemodels"
)

// StartKey is DynamoDB's LastEvaluatedKey / ExclusiveStartKey shape.
type StartKey = map[string]types.AttributeValue

// KeyFromItem converts a LastEvaluatedKey into a Key of this codec's schema.
// An empty item means there are no more pages and yields a nil key.
func (c *Codec) KeyFromItem(item StartKey) (storagemodels.Key, error) {
	if len(item) == 0 {
		return nil, nil
	}
	key := storagemodels.Key(storagemodels.FromItem(item))
	if err := c.schema.Conforms(key); err != nil {
		return nil, err
	}
	return key, nil
}

// KeyToItem converts a key into an ExclusiveStartKey.
func (c *Codec) KeyToItem(key storagemodels.Key) StartKey {
	return storagemodels.ToItem(key)
}

// GetStartKeyToken turns a LastEvaluatedKey into a next page token. No more
// pages gives an empty token.
func (c *Codec) GetStartKeyToken(_ context.Context, startKey StartKey) (string, error) {
	key, err := c.KeyFromItem(startKey)
	if err != nil {
		return "", err
	}
	return c.Encode(key)
}

// GetStartKey turns a next page token back into an ExclusiveStartKey; an
// empty token gives a nil start key.
func (c *Codec) GetStartKey(_ context.Context, token string) (StartKey, error) {
	key, err := c.Decode(token)
	if err != nil {
		return nil, err
	}
	return c.KeyToItem(key), nil
}
