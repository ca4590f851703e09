/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cursor

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/suparena/storemeter/errors"
	"github.com/suparena/storemeter/storagemodels"
)

// MaxTokenLength bounds the work spent on a client supplied token.
const MaxTokenLength = 16 * 1024

// Validator inspects a decoded key before it is handed back to the caller,
// for example to check that it belongs to the requesting user's partition.
type Validator func(storagemodels.Key) error

// Codec turns keys of one schema into opaque, URL-safe tokens and back.
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	schema storagemodels.KeySchema
	fields map[string]storagemodels.KeyField
}

// New returns a Codec for the given key schema.
func New(schema storagemodels.KeySchema) (*Codec, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	c := &Codec{
		schema: append(storagemodels.KeySchema(nil), schema...),
		fields: make(map[string]storagemodels.KeyField, len(schema)),
	}
	for _, f := range schema {
		c.fields[f.Name] = f
	}
	return c, nil
}

// MustNew is like New but panics on an invalid schema. Intended for
// package-level codecs built from constant schemas.
func MustNew(schema storagemodels.KeySchema) *Codec {
	c, err := New(schema)
	if err != nil {
		panic(fmt.Sprintf("cursor: %v", err))
	}
	return c
}

// Schema returns a copy of the codec's key schema.
func (c *Codec) Schema() storagemodels.KeySchema {
	return append(storagemodels.KeySchema(nil), c.schema...)
}

// IsNoCursor reports whether a decoded key means "start from the beginning".
func IsNoCursor(key storagemodels.Key) bool {
	return key == nil
}

// Encode serializes key as a JSON object with attributes in schema order and
// returns it base64url encoded without padding. A nil key encodes to "".
func (c *Codec) Encode(key storagemodels.Key) (string, error) {
	if key == nil {
		return "", nil
	}
	if err := c.schema.Conforms(key); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range c.schema {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return "", errors.NewValidationError(f.Name, err.Error())
		}
		buf.Write(name)
		buf.WriteByte(':')

		raw, err := marshalScalar(f, key[f.Name])
		if err != nil {
			return "", err
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')

	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

func marshalScalar(f storagemodels.KeyField, v storagemodels.Value) ([]byte, error) {
	text, _ := v.Text()
	if f.Kind == storagemodels.KindNumber {
		// encoding/json writes an empty json.Number as 0
		if text == "" {
			return nil, errors.NewValidationError(f.Name, "empty number")
		}
		raw, err := json.Marshal(json.Number(text))
		if err != nil {
			return nil, errors.NewValidationError(f.Name, fmt.Sprintf("invalid number %q", text))
		}
		return raw, nil
	}
	raw, err := json.Marshal(text)
	if err != nil {
		return nil, errors.NewValidationError(f.Name, err.Error())
	}
	return raw, nil
}

// Decode reverses Encode. An empty token returns a nil key and no error,
// meaning the scan starts from the beginning. Any other failure, including a
// validator rejecting the key, is reported as a BadPaginationTokenError.
func (c *Codec) Decode(token string, validators ...Validator) (storagemodels.Key, error) {
	if token == "" {
		return nil, nil
	}
	if len(token) > MaxTokenLength {
		return nil, errors.NewBadPaginationTokenError(fmt.Errorf("token length %d exceeds %d", len(token), MaxTokenLength))
	}

	raw, err := decodeBase64(token)
	if err != nil {
		return nil, errors.NewBadPaginationTokenError(err)
	}

	key, err := c.parse(raw)
	if err != nil {
		return nil, errors.NewBadPaginationTokenError(err)
	}

	for _, validate := range validators {
		if validate == nil {
			continue
		}
		if err := validate(key); err != nil {
			return nil, errors.NewBadPaginationTokenError(err)
		}
	}
	return key, nil
}

// decodeBase64 accepts the current unpadded URL-safe alphabet and the padded
// standard alphabet used by tokens issued before it.
func decodeBase64(token string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err == nil {
		return raw, nil
	}
	if legacy, legacyErr := base64.StdEncoding.DecodeString(token); legacyErr == nil {
		return legacy, nil
	}
	return nil, fmt.Errorf("decode base64: %w", err)
}

// parse reads exactly one flat JSON object whose attributes are the schema's.
func (c *Codec) parse(raw []byte) (storagemodels.Key, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	key := make(storagemodels.Key, len(c.schema))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected attribute name, got %v", tok)
		}
		field, ok := c.fields[name]
		if !ok {
			return nil, fmt.Errorf("unexpected attribute %q", name)
		}
		if _, dup := key[name]; dup {
			return nil, fmt.Errorf("duplicate attribute %q", name)
		}

		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		v, err := scalarFromToken(field, tok)
		if err != nil {
			return nil, err
		}
		key[name] = v
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after key object")
	}
	if err := c.schema.Conforms(key); err != nil {
		return nil, err
	}
	return key, nil
}

func scalarFromToken(f storagemodels.KeyField, tok json.Token) (storagemodels.Value, error) {
	switch f.Kind {
	case storagemodels.KindString:
		if s, ok := tok.(string); ok {
			return storagemodels.String(s), nil
		}
	case storagemodels.KindNumber:
		if n, ok := tok.(json.Number); ok {
			return storagemodels.Number(n.String()), nil
		}
	}
	return storagemodels.Value{}, fmt.Errorf("attribute %q: expected %s, got %T", f.Name, f.Kind, tok)
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
