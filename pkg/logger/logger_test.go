package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONWithLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "info", Output: &buf})
	require.NoError(t, err)

	log.Debug("скрыто")
	log.Infof("опций: %d", 3)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "опций: 3", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestWithFieldsAddsContext(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Output: &buf})
	require.NoError(t, err)

	log.WithFields(map[string]interface{}{"area": "IMMO"}).Warn("пусто")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "IMMO", entry["area"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNewWritesFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	log, err := New(Config{Dir: dir, FilePattern: "test_%s.log", Output: &buf})
	require.NoError(t, err)

	log.Error("ошибка")

	files, err := filepath.Glob(filepath.Join(dir, "test_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "ошибка")
	assert.Contains(t, buf.String(), "ошибка")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLevel("громко")
	assert.Error(t, err)

	_, err = New(Config{Level: "громко"})
	assert.Error(t, err)
}
