/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// FromAttributeValue converts a DynamoDB attribute into a Value.
// String, number and binary sets become Lists of their members; anything
// unrecognized becomes Null.
func FromAttributeValue(av types.AttributeValue) Value {
	switch tv := av.(type) {
	case *types.AttributeValueMemberS:
		return String(tv.Value)
	case *types.AttributeValueMemberN:
		return Number(tv.Value)
	case *types.AttributeValueMemberBOOL:
		return Bool(tv.Value)
	case *types.AttributeValueMemberB:
		return Binary(tv.Value)
	case *types.AttributeValueMemberL:
		items := make([]Value, len(tv.Value))
		for i, item := range tv.Value {
			items[i] = FromAttributeValue(item)
		}
		return List(items...)
	case *types.AttributeValueMemberM:
		return Map(FromItem(tv.Value))
	case *types.AttributeValueMemberSS:
		items := make([]Value, len(tv.Value))
		for i, s := range tv.Value {
			items[i] = String(s)
		}
		return List(items...)
	case *types.AttributeValueMemberNS:
		items := make([]Value, len(tv.Value))
		for i, n := range tv.Value {
			items[i] = Number(n)
		}
		return List(items...)
	case *types.AttributeValueMemberBS:
		items := make([]Value, len(tv.Value))
		for i, b := range tv.Value {
			items[i] = Binary(b)
		}
		return List(items...)
	default:
		// NULL and unknown members
		return Null()
	}
}

// ToAttributeValue converts a Value into its DynamoDB attribute.
func ToAttributeValue(v Value) types.AttributeValue {
	switch v.kind {
	case KindString:
		return &types.AttributeValueMemberS{Value: v.text}
	case KindNumber:
		return &types.AttributeValueMemberN{Value: v.text}
	case KindBoolean:
		return &types.AttributeValueMemberBOOL{Value: v.flag}
	case KindBinary:
		return &types.AttributeValueMemberB{Value: v.bin}
	case KindList:
		items := make([]types.AttributeValue, len(v.list))
		for i, item := range v.list {
			items[i] = ToAttributeValue(item)
		}
		return &types.AttributeValueMemberL{Value: items}
	case KindMap:
		return &types.AttributeValueMemberM{Value: ToItem(v.attr)}
	default:
		return &types.AttributeValueMemberNULL{Value: true}
	}
}

// FromItem converts a raw DynamoDB item into a Record.
func FromItem(item map[string]types.AttributeValue) Record {
	if item == nil {
		return nil
	}
	rec := make(Record, len(item))
	for name, av := range item {
		rec[name] = FromAttributeValue(av)
	}
	return rec
}

// ToItem converts a Record (or any attribute map, including a Key) into a raw DynamoDB item.
func ToItem[M ~map[string]Value](rec M) map[string]types.AttributeValue {
	if rec == nil {
		return nil
	}
	item := make(map[string]types.AttributeValue, len(rec))
	for name, v := range rec {
		item[name] = ToAttributeValue(v)
	}
	return item
}
