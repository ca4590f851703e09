/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/suparena/storemeter/errors"
	"github.com/suparena/storemeter/registry"
	"github.com/suparena/storemeter/storagemodels"
)

// readInput returns args[0] read as a file, or stdin when it is absent or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return data, nil
}

// parseSchema parses "PK:S,SK:N" into a key schema.
func parseSchema(s string) (storagemodels.KeySchema, error) {
	var schema storagemodels.KeySchema
	for _, part := range strings.Split(s, ",") {
		name, kind, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, errors.NewValidationError("schema", fmt.Sprintf("expected name:kind, got %q", part))
		}
		k, err := storagemodels.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		schema = append(schema, storagemodels.KeyField{Name: name, Kind: k})
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return schema, nil
}

// resolveSchema prefers an explicit --schema over the configured schema of --table.
func (a *app) resolveSchema(schemaFlag, table string) (storagemodels.KeySchema, error) {
	if schemaFlag != "" {
		return parseSchema(schemaFlag)
	}
	if table == "" {
		return nil, errors.NewValidationError("schema", "either --schema or --table is required")
	}
	reg, err := registry.FromConfig(a.cfg)
	if err != nil {
		return nil, err
	}
	return reg.Get(table)
}
