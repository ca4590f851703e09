/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/storemeter/config"
)

func TestTruncateSessionID(t *testing.T) {
	assert.Equal(t, "", TruncateSessionID(""))
	assert.Equal(t, "abcdefgh", TruncateSessionID("abcdefgh"))
	assert.Equal(t, "abcdefgh...", TruncateSessionID("abcdefghijk"))
	assert.Equal(t, "ééééééé1...", TruncateSessionID("ééééééé12345"))
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithFields(logrus.Fields{
		"session_id": "0123456789abcdef",
		"table":      "apps",
	}).Debug("listed page")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "listed page", entry["msg"])
	assert.Equal(t, "01234567...", entry["session_id"])
	assert.Equal(t, "apps", entry["table"])
}

func TestNewTextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Empty(t, buf.String())
	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud", Format: "text"}, nil)
	assert.Error(t, err)

	_, err = New(config.LogConfig{Level: "info", Format: "xml"}, nil)
	assert.Error(t, err)
}

func TestSensitiveFieldHookLeavesOtherValues(t *testing.T) {
	hook := NewSensitiveFieldHook("Token")
	entry := &logrus.Entry{Data: logrus.Fields{
		"token": "aaaaaaaaaaaaaaaa",
		"count": 42,
		"other": "bbbbbbbbbbbbbbbb",
	}}
	require.NoError(t, hook.Fire(entry))
	assert.Equal(t, "aaaaaaaa...", entry.Data["token"])
	assert.Equal(t, 42, entry.Data["count"])
	assert.Equal(t, "bbbbbbbbbbbbbbbb", entry.Data["other"])
}
