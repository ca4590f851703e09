/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/storemeter/config"
	"github.com/suparena/storemeter/errors"
	"github.com/suparena/storemeter/storagemodels"
)

var pkSK = storagemodels.KeySchema{
	{Name: "PK", Kind: storagemodels.KindString},
	{Name: "SK", Kind: storagemodels.KindString},
}

func TestRegisterAndGet(t *testing.T) {
	r := NewSchemaRegistry()
	require.NoError(t, r.Register("apps", pkSK))

	got, err := r.Get("apps")
	require.NoError(t, err)
	assert.Equal(t, pkSK, got)

	got[0].Name = "changed"
	again, _ := r.Get("apps")
	assert.Equal(t, "PK", again[0].Name)
}

func TestRegisterErrors(t *testing.T) {
	r := NewSchemaRegistry()
	require.NoError(t, r.Register("apps", pkSK))

	assert.True(t, errors.IsAlreadyExists(r.Register("apps", pkSK)))
	assert.True(t, errors.IsValidationError(r.Register("", pkSK)))
	assert.True(t, errors.IsValidationError(r.Register("bad", storagemodels.KeySchema{{Name: "PK", Kind: storagemodels.KindMap}})))

	_, err := r.Get("missing")
	assert.True(t, errors.IsNotFound(err))
}

func TestTablesSorted(t *testing.T) {
	r := NewSchemaRegistry()
	for _, name := range []string{"users", "apps", "events"} {
		require.NoError(t, r.Register(name, pkSK))
	}
	assert.Equal(t, []string{"apps", "events", "users"}, r.Tables())
}

func TestConcurrentRegister(t *testing.T) {
	r := NewSchemaRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("table-%d", i)
			assert.NoError(t, r.Register(name, pkSK))
			_, err := r.Get(name)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Len(t, r.Tables(), 50)
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Tables = []config.TableConfig{{Name: "apps", KeySchema: pkSK}}
	r, err := FromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"apps"}, r.Tables())

	cfg.Tables = append(cfg.Tables, config.TableConfig{Name: "apps", KeySchema: pkSK})
	_, err = FromConfig(cfg)
	assert.True(t, errors.IsAlreadyExists(err))
}
