package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"page": "forms"}).Debug("rendered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "rendered", entry["message"])
	assert.Equal(t, "forms", entry["page"])
	assert.Contains(t, entry, "time")
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "WARN", Writer: &buf})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestInvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestHumanReadable(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{HumanReadable: true, Writer: &buf})
	require.NoError(t, err)

	log.With("demo", "counter").Error(errors.New("boom"), "demo failed")
	out := buf.String()
	assert.False(t, strings.HasPrefix(out, "{"), "console output should not be JSON")
	assert.Contains(t, out, "demo failed")
	assert.Contains(t, out, "boom")
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger
	assert.NotPanics(t, func() {
		log.Info("x")
		log.Debug("x")
		log.Warn("x")
		log.Error(nil, "x")
		_ = log.WithFields(map[string]any{"a": 1})
		_ = log.With("a", "b")
		log.Zerolog().Info().Msg("x")
	})
	Nop().Info("nothing")
}
