/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/storemeter/errors"
	"github.com/suparena/storemeter/storagemodels"
)

const sampleYAML = `
aws:
  region: us-east-1
  table: apps
log:
  level: debug
  format: json
usage:
  hour: 3
  quota_bytes: 1048576
tables:
  - name: apps
    key_schema:
      - name: PK
        kind: S
      - name: SK
        kind: S
  - name: events
    key_schema:
      - name: id
        kind: N
`

func envFrom(vars map[string]string) func(string) string {
	return func(name string) string { return vars[name] }
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 9, cfg.Usage.Hour)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Parse([]byte(sampleYAML)))

	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Usage.Hour)
	assert.Equal(t, int64(1048576), cfg.Usage.QuotaBytes)
	assert.Equal(t, int32(DefaultPageSize), cfg.Usage.PageSize)
	require.Len(t, cfg.Tables, 2)
	assert.Equal(t, storagemodels.KeySchema{
		{Name: "PK", Kind: storagemodels.KindString},
		{Name: "SK", Kind: storagemodels.KindString},
	}, cfg.Tables[0].KeySchema)
	assert.Equal(t, storagemodels.KindNumber, cfg.Tables[1].KeySchema[0].Kind)
	assert.NoError(t, cfg.Validate())
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Parse(nil))
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.Parse([]byte("usage:\n  hours: 3\n")))
}

func TestParseRejectsUnknownKind(t *testing.T) {
	cfg := Default()
	err := cfg.Parse([]byte("tables:\n  - name: t\n    key_schema:\n      - name: PK\n        kind: SS\n"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envFrom(map[string]string{
		EnvAWSAccessKey: "AKID",
		EnvAWSSecretKey: "secret",
		EnvAWSRegion:    "eu-west-1",
		EnvAWSTable:     "apps",
		EnvLogLevel:     "warn",
		EnvUsageHour:    "23",
		EnvQuotaBytes:   "5000",
	}))
	require.NoError(t, err)

	assert.Equal(t, AWSConfig{AccessKey: "AKID", SecretKey: "secret", Region: "eu-west-1", Table: "apps"}, cfg.AWS)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 23, cfg.Usage.Hour)
	assert.Equal(t, int64(5000), cfg.Usage.QuotaBytes)
}

func TestApplyEnvRejectsBadNumbers(t *testing.T) {
	err := Default().ApplyEnv(envFrom(map[string]string{EnvUsageHour: "nine"}))
	assert.True(t, errors.IsValidationError(err))

	err = Default().ApplyEnv(envFrom(map[string]string{EnvQuotaBytes: "1e6"}))
	assert.True(t, errors.IsValidationError(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"hour too large", func(c *Config) { c.Usage.Hour = 24 }},
		{"negative hour", func(c *Config) { c.Usage.Hour = -1 }},
		{"negative quota", func(c *Config) { c.Usage.QuotaBytes = -1 }},
		{"zero page size", func(c *Config) { c.Usage.PageSize = 0 }},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }},
		{"unnamed table", func(c *Config) {
			c.Tables = []TableConfig{{KeySchema: storagemodels.KeySchema{{Name: "PK", Kind: storagemodels.KindString}}}}
		}},
		{"duplicate table", func(c *Config) {
			schema := storagemodels.KeySchema{{Name: "PK", Kind: storagemodels.KindString}}
			c.Tables = []TableConfig{{Name: "a", KeySchema: schema}, {Name: "a", KeySchema: schema}}
		}},
		{"empty schema", func(c *Config) { c.Tables = []TableConfig{{Name: "a"}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.True(t, errors.IsValidationError(err), "got %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storemeter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("STOREMETER_USAGE_HOUR=5\n"), 0o600))
	t.Setenv(EnvUsageHour, "")
	os.Unsetenv(EnvUsageHour)
	t.Setenv(EnvQuotaBytes, "2048")

	cfg, err := Load(path, envFile)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Usage.Hour)
	assert.Equal(t, int64(2048), cfg.Usage.QuotaBytes)
	assert.Equal(t, "apps", cfg.Tables[0].Name)
}

func TestLoadMissingEnvFile(t *testing.T) {
	cfg, err := Load("", filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}
