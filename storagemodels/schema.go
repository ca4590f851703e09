/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"fmt"

	"github.com/suparena/storemeter/errors"
)

// KeyField declares one attribute of a key schema.
type KeyField struct {
	Name string `yaml:"name" json:"name"`
	Kind Kind   `yaml:"kind" json:"kind"`
}

// KeySchema is the ordered attribute list that identifies a storage position,
// e.g. PK (S) followed by SK (S). Order is the canonical serialization order.
type KeySchema []KeyField

// Validate checks that the schema is usable as a key: non-empty, unique names
// and only String or Number attributes.
func (s KeySchema) Validate() error {
	if len(s) == 0 {
		return errors.NewValidationError("schema", "key schema has no fields")
	}
	seen := make(map[string]struct{}, len(s))
	for _, f := range s {
		if f.Name == "" {
			return errors.NewValidationError("schema", "key field name is empty")
		}
		if _, dup := seen[f.Name]; dup {
			return errors.NewValidationError(f.Name, "duplicate key field")
		}
		if !f.Kind.IsScalarKey() {
			return errors.NewValidationError(f.Name, fmt.Sprintf("key fields must be S or N, got %s", f.Kind))
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

// Conforms reports why key does not match the schema, or nil if it does.
// The key must hold exactly the schema's attributes with the declared kinds.
func (s KeySchema) Conforms(key Key) error {
	if len(key) != len(s) {
		return errors.NewValidationError("key", fmt.Sprintf("expected %d attributes, got %d", len(s), len(key)))
	}
	for _, f := range s {
		v, ok := key[f.Name]
		if !ok {
			return errors.NewValidationError(f.Name, "missing key attribute")
		}
		if v.Kind() != f.Kind {
			return errors.NewValidationError(f.Name, fmt.Sprintf("expected %s, got %s", f.Kind, v.Kind()))
		}
	}
	return nil
}

// Names returns the attribute names in schema order.
func (s KeySchema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// ParseKind maps a DynamoDB type descriptor to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return KindNull, errors.NewValidationError("kind", fmt.Sprintf("unknown attribute type %q", s))
}

// UnmarshalText lets kinds be written as "S", "N", ... in YAML and JSON.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
