package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emurenMRz/mailpanel/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mailpanel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, ".", cfg.Mailboxes.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Server.EditMode)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
  read_timeout: 10s
  edit_mode: true
mailboxes:
  path: /var/mail
logging:
  level: debug
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	// Unset values keep their defaults.
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.True(t, cfg.Server.EditMode)
	assert.Equal(t, "/var/mail", cfg.Mailboxes.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := config.Load(writeConfig(t, "server: [broken"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Addr = ""
	assert.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.Mailboxes.Path = ""
	assert.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.Logging.Level = "loud"
	assert.Error(t, cfg.Validate())
}
