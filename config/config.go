/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/suparena/storemeter/errors"
	"github.com/suparena/storemeter/storagemodels"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvAWSAccessKey = "AWS_ACCESS_KEY"
	EnvAWSSecretKey = "AWS_SECRET_KEY"
	EnvAWSRegion    = "AWS_REGION"
	EnvAWSTable     = "AWS_DDB_TABLE"
	EnvLogLevel     = "STOREMETER_LOG_LEVEL"
	EnvLogFormat    = "STOREMETER_LOG_FORMAT"
	EnvUsageHour    = "STOREMETER_USAGE_HOUR"
	EnvQuotaBytes   = "STOREMETER_QUOTA_BYTES"
)

const (
	DefaultUsageHour = 9
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultPageSize  = 100
)

// Config is the process configuration.
type Config struct {
	AWS    AWSConfig     `yaml:"aws"`
	Log    LogConfig     `yaml:"log"`
	Usage  UsageConfig   `yaml:"usage"`
	Tables []TableConfig `yaml:"tables"`
}

// AWSConfig holds the DynamoDB connection settings.
type AWSConfig struct {
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Region    string `yaml:"region"`
	Table     string `yaml:"table"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// UsageConfig controls the usage recomputation job.
type UsageConfig struct {
	// Hour is the UTC hour the daily recomputation runs at.
	Hour int `yaml:"hour"`
	// QuotaBytes is the per-table storage quota; 0 disables the check.
	QuotaBytes int64 `yaml:"quota_bytes"`
	PageSize   int32 `yaml:"page_size"`
}

// TableConfig names a table and the key schema of its pagination cursors.
type TableConfig struct {
	Name      string                  `yaml:"name"`
	KeySchema storagemodels.KeySchema `yaml:"key_schema"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Usage: UsageConfig{
			Hour:     DefaultUsageHour,
			PageSize: DefaultPageSize,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment. Variables from envFiles, or from .env
// when none are given, are loaded first; a missing env file is not an error.
func Load(path string, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := cfg.Parse(data); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML over the current values. Unknown keys are rejected.
func (c *Config) Parse(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !stderrors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from the variables getenv returns non-empty.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	setString := func(dst *string, name string) {
		if v := getenv(name); v != "" {
			*dst = v
		}
	}
	setString(&c.AWS.AccessKey, EnvAWSAccessKey)
	setString(&c.AWS.SecretKey, EnvAWSSecretKey)
	setString(&c.AWS.Region, EnvAWSRegion)
	setString(&c.AWS.Table, EnvAWSTable)
	setString(&c.Log.Level, EnvLogLevel)
	setString(&c.Log.Format, EnvLogFormat)

	if v := getenv(EnvUsageHour); v != "" {
		hour, err := strconv.Atoi(v)
		if err != nil {
			return errors.NewValidationError(EnvUsageHour, "must be an integer")
		}
		c.Usage.Hour = hour
	}
	if v := getenv(EnvQuotaBytes); v != "" {
		quota, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.NewValidationError(EnvQuotaBytes, "must be an integer")
		}
		c.Usage.QuotaBytes = quota
	}
	return nil
}

// Validate checks ranges and every table's key schema.
func (c *Config) Validate() error {
	if c.Usage.Hour < 0 || c.Usage.Hour > 23 {
		return errors.NewValidationError("usage.hour", fmt.Sprintf("must be between 0 and 23, got %d", c.Usage.Hour))
	}
	if c.Usage.QuotaBytes < 0 {
		return errors.NewValidationError("usage.quota_bytes", "must not be negative")
	}
	if c.Usage.PageSize <= 0 {
		return errors.NewValidationError("usage.page_size", "must be positive")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.NewValidationError("log.format", fmt.Sprintf("unknown format %q", c.Log.Format))
	}

	seen := make(map[string]struct{}, len(c.Tables))
	for _, t := range c.Tables {
		if t.Name == "" {
			return errors.NewValidationError("tables.name", "table name is empty")
		}
		if _, dup := seen[t.Name]; dup {
			return errors.NewValidationError("tables.name", fmt.Sprintf("duplicate table %q", t.Name))
		}
		seen[t.Name] = struct{}{}
		if err := t.KeySchema.Validate(); err != nil {
			return fmt.Errorf("table %s: %w", t.Name, err)
		}
	}
	return nil
}
