package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Stdout", func(t *testing.T) {
		l, err := New("", "debug", "json")
		require.NoError(t, err)
		assert.NoError(t, l.Close())
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		l, err := New(path, "info", "console")
		require.NoError(t, err)

		l.Info("booking %d created", 7)
		require.NoError(t, l.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "booking 7 created")
	})

	t.Run("BadPath", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "missing", "app.log"), "info", "")
		assert.Error(t, err)
	})
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn")

	l.Info("hidden")
	l.Warn("slot %s is full", "10:00")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "slot 10:00 is full", entry["message"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info").With("request_id", "abc")

	l.Info("handled")

	assert.Contains(t, buf.String(), `"request_id":"abc"`)
}
