package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&Config{Level: "debug", Format: "json", Writer: &buf})
	require.NoError(t, err)

	l.Info("processing pitcher", String("name", "Shane Baz"), Int("pitches", 812), Float64("score", 0.7))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "info", got["level"])
	assert.Equal(t, "processing pitcher", got["message"])
	assert.Equal(t, "Shane Baz", got["name"])
	assert.EqualValues(t, 812, got["pitches"])
	assert.InDelta(t, 0.7, got["score"], 1e-9)
}

func TestWithCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&Config{Level: "info", Format: "json", Writer: &buf})
	require.NoError(t, err)

	l.With(String("run_id", "abc")).Warn("cohort degenerate", Error(errors.New("boom")))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "abc", got["run_id"])
	assert.Equal(t, "boom", got["error"])
}

func TestInvalidLevel(t *testing.T) {
	_, err := New(&Config{Level: "loud"})
	assert.Error(t, err)
}
