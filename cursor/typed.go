/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cursor

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/suparena/storemeter/errors"
	"github.com/suparena/storemeter/storagemodels"
)

// Typed is a Codec over a caller-defined key struct. The struct is converted
// with attributevalue, so fields are named by their `dynamodbav` tags and
// must marshal to exactly the schema's attributes.
type Typed[K any] struct {
	codec *Codec
}

// NewTyped returns a Typed codec for K using the given schema.
func NewTyped[K any](schema storagemodels.KeySchema) (*Typed[K], error) {
	c, err := New(schema)
	if err != nil {
		return nil, err
	}
	return &Typed[K]{codec: c}, nil
}

// Codec returns the underlying schema codec.
func (t *Typed[K]) Codec() *Codec {
	return t.codec
}

// Encode marshals key and encodes it as a token.
func (t *Typed[K]) Encode(key K) (string, error) {
	item, err := attributevalue.MarshalMap(key)
	if err != nil {
		return "", errors.NewValidationError("key", fmt.Sprintf("failed to marshal key: %v", err))
	}
	return t.codec.Encode(storagemodels.Key(storagemodels.FromItem(item)))
}

// Decode decodes token into a K. An empty token returns nil and no error.
// Validators run on the typed key; their failures are reported the same way
// as malformed tokens.
func (t *Typed[K]) Decode(token string, validators ...func(K) error) (*K, error) {
	key, err := t.codec.Decode(token)
	if err != nil || IsNoCursor(key) {
		return nil, err
	}

	out := new(K)
	if err := attributevalue.UnmarshalMap(storagemodels.ToItem(key), out); err != nil {
		return nil, errors.NewBadPaginationTokenError(err)
	}
	for _, validate := range validators {
		if validate == nil {
			continue
		}
		if err := validate(*out); err != nil {
			return nil, errors.NewBadPaginationTokenError(err)
		}
	}
	return out, nil
}
