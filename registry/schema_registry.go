/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"sort"
	"sync"

	"github.com/suparena/storemeter/errors"
	"github.com/suparena/storemeter/storagemodels"
)

// SchemaRegistry maps table names to the key schema of their cursors.
type SchemaRegistry struct {
	mu      sync.RWMutex
	schemas map[string]storagemodels.KeySchema
}

func NewSchemaRegistry() *SchemaRegistry {
	return &SchemaRegistry{schemas: make(map[string]storagemodels.KeySchema)}
}

// Register associates a validated schema with table. Registering a table
// twice returns an AlreadyExistsError.
func (r *SchemaRegistry) Register(table string, schema storagemodels.KeySchema) error {
	if table == "" {
		return errors.NewValidationError("table", "table name is empty")
	}
	if err := schema.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.schemas[table]; exists {
		return errors.NewAlreadyExistsError("KeySchema", table)
	}
	r.schemas[table] = append(storagemodels.KeySchema(nil), schema...)
	return nil
}

// Get returns a copy of the schema registered for table.
func (r *SchemaRegistry) Get(table string) (storagemodels.KeySchema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	schema, ok := r.schemas[table]
	if !ok {
		return nil, errors.NewNotFoundError("KeySchema", table)
	}
	return append(storagemodels.KeySchema(nil), schema...), nil
}

// Tables returns the registered table names, sorted.
func (r *SchemaRegistry) Tables() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
