/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"bytes"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindNull is the zero Kind, so the zero Value is Null.
	KindNull Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindBinary
	KindList
	KindMap
)

var kindNames = [...]string{
	KindNull:    "NULL",
	KindString:  "S",
	KindNumber:  "N",
	KindBoolean: "BOOL",
	KindBinary:  "B",
	KindList:    "L",
	KindMap:     "M",
}

// String returns the DynamoDB type descriptor for the kind (S, N, BOOL, ...).
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsScalarKey reports whether values of this kind may appear in a Key.
func (k Kind) IsScalarKey() bool {
	return k == KindString || k == KindNumber
}

// Value is a tagged union over the attribute shapes the service persists.
// Exactly one payload field is meaningful, selected by kind.
type Value struct {
	kind Kind
	text string // String and Number (decimal text)
	flag bool
	bin  []byte
	list []Value
	attr map[string]Value
}

// Record is a root-level map of attribute names to values, persisted as one item.
type Record map[string]Value

// Key is the scalar subset of a Record that addresses it for pagination.
type Key map[string]Value

// String builds a String value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Number builds a Number value from its decimal text, e.g. "42" or "-1.5e3".
// The text is kept verbatim.
func Number(text string) Value { return Value{kind: KindNumber, text: text} }

// Int builds a Number value from an integer.
func Int(i int64) Value { return Number(strconv.FormatInt(i, 10)) }

// Float builds a Number value using the shortest decimal text that round trips.
func Float(f float64) Value { return Number(strconv.FormatFloat(f, 'f', -1, 64)) }

// Bool builds a Boolean value.
func Bool(b bool) Value { return Value{kind: KindBoolean, flag: b} }

// Binary builds a Binary value. The slice is not copied.
func Binary(b []byte) Value { return Value{kind: KindBinary, bin: b} }

// List builds a List value.
func List(items ...Value) Value { return Value{kind: KindList, list: items} }

// Map builds a Map value.
func Map(attrs map[string]Value) Value { return Value{kind: KindMap, attr: attrs} }

// Null returns the Null value.
func Null() Value { return Value{} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Text returns the payload of a String or Number and whether v is one of them.
func (v Value) Text() (string, bool) {
	if v.kind == KindString || v.kind == KindNumber {
		return v.text, true
	}
	return "", false
}

func (v Value) Bool() (bool, bool) { return v.flag, v.kind == KindBoolean }

func (v Value) Bytes() ([]byte, bool) { return v.bin, v.kind == KindBinary }

func (v Value) Elements() ([]Value, bool) { return v.list, v.kind == KindList }

func (v Value) Attributes() (map[string]Value, bool) { return v.attr, v.kind == KindMap }

// Equal reports deep equality. Numbers compare by their text.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString, KindNumber:
		return v.text == o.text
	case KindBoolean:
		return v.flag == o.flag
	case KindBinary:
		return bytes.Equal(v.bin, o.bin)
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return mapsEqual(v.attr, o.attr)
	}
	return false
}

// Equal reports whether two keys hold the same attributes with equal values.
func (k Key) Equal(o Key) bool { return mapsEqual(k, o) }

func mapsEqual(a, b map[string]Value) bool {
	if len(a) != len(b) {
		return false
	}
	for name, av := range a {
		bv, ok := b[name]
		if !ok || !av.Equal(bv) {
			return false
		}
	}
	return true
}
