/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of datastore.Pager for testing
package mock

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"

	"github.com/suparena/storemeter/errors"
	"github.com/suparena/storemeter/storagemodels"
)

// Table is an in-memory table whose pages are returned in key order
type Table struct {
	mu        sync.RWMutex
	schema    storagemodels.KeySchema
	data      map[string]storagemodels.Record
	queryFunc func(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.Page, error)
	failures  int
	failErr   error
	calls     int
}

// New creates an empty table keyed by schema
func New(schema storagemodels.KeySchema) *Table {
	return &Table{
		schema: schema,
		data:   make(map[string]storagemodels.Record),
	}
}

// WithQueryFunc replaces QueryPage with f
func (m *Table) WithQueryFunc(f func(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.Page, error)) *Table {
	m.queryFunc = f
	return m
}

// WithFailures makes the next n QueryPage calls return err
func (m *Table) WithFailures(n int, err error) *Table {
	m.failures = n
	m.failErr = err
	return m
}

// Put stores a record, replacing any record with the same key
func (m *Table) Put(rec storagemodels.Record) error {
	key, err := m.keyOf(rec)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[m.id(key)] = copyRecord(rec)
	return nil
}

// Get returns the record stored under key
func (m *Table) Get(key storagemodels.Key) (storagemodels.Record, error) {
	if err := m.schema.Conforms(key); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.data[m.id(key)]
	if !ok {
		return nil, errors.NewNotFoundError("Record", m.id(key))
	}
	return copyRecord(rec), nil
}

// Delete removes the record stored under key
func (m *Table) Delete(key storagemodels.Key) error {
	if err := m.schema.Conforms(key); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id(key)
	if _, ok := m.data[id]; !ok {
		return errors.NewNotFoundError("Record", id)
	}
	delete(m.data, id)
	return nil
}

// QueryPage returns up to params.Limit records (all remaining when nil)
// after params.ExclusiveStartKey. Key conditions and filters are ignored.
func (m *Table) QueryPage(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.Page, error) {
	m.mu.Lock()
	m.calls++
	if m.failures > 0 {
		m.failures--
		m.mu.Unlock()
		return nil, m.failErr
	}
	m.mu.Unlock()

	if m.queryFunc != nil {
		return m.queryFunc(ctx, params)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	descending := params.ScanIndexForward != nil && !*params.ScanIndexForward
	if params.ExclusiveStartKey != nil {
		if err := m.schema.Conforms(params.ExclusiveStartKey); err != nil {
			return nil, err
		}
	}

	m.mu.RLock()
	rows := make([]storagemodels.Record, 0, len(m.data))
	for _, rec := range m.data {
		rows = append(rows, rec)
	}
	m.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		c := m.compare(rows[i], rows[j])
		if descending {
			return c > 0
		}
		return c < 0
	})

	start := 0
	if params.ExclusiveStartKey != nil {
		after := storagemodels.Record(params.ExclusiveStartKey)
		start = sort.Search(len(rows), func(i int) bool {
			c := m.compare(rows[i], after)
			if descending {
				return c < 0
			}
			return c > 0
		})
	}

	end := len(rows)
	if params.Limit != nil && *params.Limit > 0 && start+int(*params.Limit) < end {
		end = start + int(*params.Limit)
	}

	page := &storagemodels.Page{Items: make([]storagemodels.Record, 0, end-start)}
	for _, rec := range rows[start:end] {
		page.Items = append(page.Items, copyRecord(rec))
	}
	if end < len(rows) && end > start {
		last, err := m.keyOf(rows[end-1])
		if err != nil {
			return nil, fmt.Errorf("failed to build last evaluated key: %w", err)
		}
		page.LastEvaluatedKey = last
	}
	return page, nil
}

// Count returns the number of stored records
func (m *Table) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Calls returns how many times QueryPage has been called
func (m *Table) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

// Clear removes all records
func (m *Table) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]storagemodels.Record)
}

func (m *Table) keyOf(rec storagemodels.Record) (storagemodels.Key, error) {
	key := make(storagemodels.Key, len(m.schema))
	for _, f := range m.schema {
		v, ok := rec[f.Name]
		if !ok {
			return nil, errors.NewValidationError(f.Name, "record is missing key attribute")
		}
		key[f.Name] = v
	}
	if err := m.schema.Conforms(key); err != nil {
		return nil, err
	}
	return key, nil
}

func (m *Table) id(key storagemodels.Key) string {
	parts := make([]string, len(m.schema))
	for i, f := range m.schema {
		text, _ := key[f.Name].Text()
		if f.Kind == storagemodels.KindNumber {
			if n, ok := new(big.Float).SetString(text); ok {
				text = n.Text('g', -1)
			}
		}
		parts[i] = fmt.Sprintf("%d:%s", len(text), text)
	}
	return strings.Join(parts, "|")
}

// compare orders two records by their key attributes in schema order.
func (m *Table) compare(a, b storagemodels.Record) int {
	for _, f := range m.schema {
		at, _ := a[f.Name].Text()
		bt, _ := b[f.Name].Text()
		var c int
		if f.Kind == storagemodels.KindNumber {
			an, _ := new(big.Float).SetString(at)
			bn, _ := new(big.Float).SetString(bt)
			if an != nil && bn != nil {
				c = an.Cmp(bn)
			} else {
				c = strings.Compare(at, bt)
			}
		} else {
			c = strings.Compare(at, bt)
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

func copyRecord(rec storagemodels.Record) storagemodels.Record {
	out := make(storagemodels.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}
