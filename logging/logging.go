/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/suparena/storemeter/config"
)

// VisiblePrefix is how many characters of a sensitive value stay readable.
const VisiblePrefix = 8

// SensitiveFields are log fields truncated by SensitiveFieldHook by default.
var SensitiveFields = []string{"session_id", "token", "next_page_token", "access_key"}

// New returns a logger configured from cfg that writes to out, or to stderr
// when out is nil. Sensitive fields are truncated before formatting.
func New(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if out == nil {
		out = os.Stderr
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	logger.AddHook(NewSensitiveFieldHook(SensitiveFields...))
	return logger, nil
}

// TruncateSessionID keeps the first VisiblePrefix characters of id.
func TruncateSessionID(id string) string {
	r := []rune(id)
	if len(r) <= VisiblePrefix {
		return id
	}
	return string(r[:VisiblePrefix]) + "..."
}

// SensitiveFieldHook truncates string values of the named fields.
type SensitiveFieldHook struct {
	fields map[string]struct{}
}

func NewSensitiveFieldHook(fields ...string) *SensitiveFieldHook {
	h := &SensitiveFieldHook{fields: make(map[string]struct{}, len(fields))}
	for _, f := range fields {
		h.fields[strings.ToLower(f)] = struct{}{}
	}
	return h
}

func (h *SensitiveFieldHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *SensitiveFieldHook) Fire(entry *logrus.Entry) error {
	for key, value := range entry.Data {
		if _, ok := h.fields[strings.ToLower(key)]; !ok {
			continue
		}
		if s, ok := value.(string); ok {
			entry.Data[key] = TruncateSessionID(s)
		}
	}
	return nil
}
