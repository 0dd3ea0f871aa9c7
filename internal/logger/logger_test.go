package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, int(slog.LevelInfo), "text")

	l.Info("account created", "email", "jane@example.com")
	l.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "msg=\"account created\"")
	assert.Contains(t, out, "email=jane@example.com")
	assert.NotContains(t, out, "hidden")
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, int(slog.LevelDebug), "JSON").With("component", "accounts")

	l.Debug("lookup", "email", "jane@example.com")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "lookup", rec["msg"])
	assert.Equal(t, "accounts", rec["component"])
	assert.Equal(t, "jane@example.com", rec["email"])
}
