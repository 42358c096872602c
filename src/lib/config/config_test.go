package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boggle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "0.0.0.0:1337", cfg.Addr())
	assert.Equal(t, 4, cfg.DefaultSize)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
port: "8080"
dictionary: https://example.com/words.txt
default_size: 5
read_timeout: 2s
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host, "unset keys keep defaults")
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://example.com/words.txt", cfg.Dictionary)
	assert.Equal(t, 5, cfg.DefaultSize)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.WriteTimeout)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not yaml", body: "port: [1337"},
		{name: "zero size", body: "default_size: 0"},
		{name: "empty dictionary", body: `dictionary: ""`},
		{name: "negative timeout", body: "write_timeout: -1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
