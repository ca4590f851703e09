/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"

	"github.com/suparena/storemeter/config"
)

// FromConfig returns a registry holding every table listed in cfg.
func FromConfig(cfg *config.Config) (*SchemaRegistry, error) {
	r := NewSchemaRegistry()
	for _, t := range cfg.Tables {
		if err := r.Register(t.Name, t.KeySchema); err != nil {
			return nil, fmt.Errorf("failed to register table %s: %w", t.Name, err)
		}
	}
	return r, nil
}
