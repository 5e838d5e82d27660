package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", conf.BaseURL)
	assert.Equal(t, "/", conf.PagePath)
	assert.Equal(t, 30*time.Second, conf.HTTPTimeout)
	assert.Equal(t, "8080", conf.APPPORT)
	assert.Equal(t, 5.0, conf.RateLimit)
	assert.Equal(t, 10, conf.RateBurst)
	assert.Equal(t, 5*time.Minute, conf.OptionsTTL)
	assert.Equal(t, "disable", conf.SSLMode)
	assert.Equal(t, "info", conf.Level)
	assert.False(t, conf.HasDatabase())
}

func TestLoadFromEnvFileAndEnvironment(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nAPP_OPTIONS_TTL=30s\nDBHOST=db.local\nOPTIONS_PAGE_PATH=/pt-br/ocorrencia/\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0600))

	// значения окружения важнее файла
	t.Setenv("APP_PORT", "7070")
	t.Setenv("APP_RATE_LIMIT", "0.5")
	// godotenv выставляет переменные процесса, t.Setenv вернет их после теста
	t.Setenv("APP_OPTIONS_TTL", "")
	os.Unsetenv("APP_OPTIONS_TTL")
	t.Setenv("DBHOST", "")
	os.Unsetenv("DBHOST")
	t.Setenv("OPTIONS_PAGE_PATH", "")
	os.Unsetenv("OPTIONS_PAGE_PATH")

	conf, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "7070", conf.APPPORT)
	assert.Equal(t, 0.5, conf.RateLimit)
	assert.Equal(t, 30*time.Second, conf.OptionsTTL)
	assert.Equal(t, "/pt-br/ocorrencia/", conf.PagePath)
	assert.True(t, conf.HasDatabase())
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("APP_RATE_BURST", "muitos")

	_, err := Load("")
	assert.Error(t, err)
}

func TestInitSetsFile(t *testing.T) {
	t.Cleanup(func() { File = nil })

	require.NoError(t, Init(""))
	require.NotNil(t, File)
	assert.Equal(t, "localhost", File.APPIP)
}
