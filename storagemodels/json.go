/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// RecordFromJSON decodes a plain JSON object into a Record. Numbers keep their
// literal text; JSON has no binary type, so Binary values never result.
func RecordFromJSON(data []byte) (Record, error) {
	v, err := ValueFromJSON(data)
	if err != nil {
		return nil, err
	}
	attrs, ok := v.Attributes()
	if !ok {
		return nil, fmt.Errorf("record must be a JSON object, got %s", v.Kind())
	}
	return attrs, nil
}

// ValueFromJSON decodes any JSON document into a Value.
func ValueFromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, fmt.Errorf("failed to decode JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("unexpected data after JSON document")
	}
	return FromInterface(raw), nil
}

// FromInterface converts the output of encoding/json (decoded with UseNumber)
// into a Value.
func FromInterface(raw any) Value {
	switch tv := raw.(type) {
	case nil:
		return Null()
	case string:
		return String(tv)
	case json.Number:
		return Number(tv.String())
	case float64:
		return Float(tv)
	case bool:
		return Bool(tv)
	case []byte:
		return Binary(tv)
	case []any:
		items := make([]Value, len(tv))
		for i, item := range tv {
			items[i] = FromInterface(item)
		}
		return List(items...)
	case map[string]any:
		attrs := make(map[string]Value, len(tv))
		for name, item := range tv {
			attrs[name] = FromInterface(item)
		}
		return Map(attrs)
	default:
		return Null()
	}
}

// Interface converts v into plain Go values suitable for encoding/json.
// Numbers become json.Number so their text is preserved.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.text
	case KindNumber:
		return json.Number(v.text)
	case KindBoolean:
		return v.flag
	case KindBinary:
		return v.bin
	case KindList:
		items := make([]any, len(v.list))
		for i, item := range v.list {
			items[i] = item.Interface()
		}
		return items
	case KindMap:
		attrs := make(map[string]any, len(v.attr))
		for name, item := range v.attr {
			attrs[name] = item.Interface()
		}
		return attrs
	default:
		return nil
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}
