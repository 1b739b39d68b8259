package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabula-historica/snapshot/internal/testutils"
)

func TestLoad_NoDefaultFile(t *testing.T) {
	testutils.Chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "../projects/final_project/project.json", cfg.Input)
	assert.Equal(t, "../static/static-project.json", cfg.Output)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_DefaultFile(t *testing.T) {
	dir := t.TempDir()
	testutils.Chdir(t, dir)
	content := `
input: project.json
strip: [references, historyManager, notes]
allow_missing: true
indent: "\t"
log_level: debug
redis:
  addr: localhost:6379
  db: 2
  key: site:project
  ttl: 90s
serve:
  addr: 127.0.0.1:9000
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte(content), 0644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "project.json", cfg.Input)
	// Unset keys keep their defaults.
	assert.Equal(t, Default().Output, cfg.Output)
	assert.Equal(t, "static-project.json", cfg.Serve.Name)

	assert.Equal(t, []string{"references", "historyManager", "notes"}, cfg.Strip)
	assert.True(t, cfg.AllowMissing)
	assert.Equal(t, "\t", cfg.Indent)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "site:project", cfg.Redis.Key)
	assert.Equal(t, 90*time.Second, cfg.Redis.TTL)
	assert.Equal(t, "127.0.0.1:9000", cfg.Serve.Addr)
}

func TestDecode_CommaSeparatedStrip(t *testing.T) {
	cfg := Default()
	require.NoError(t, Decode([]byte(`strip: "references,historyManager"`), &cfg))
	assert.Equal(t, []string{"references", "historyManager"}, cfg.Strip)
}

func TestDecode_UnknownKey(t *testing.T) {
	cfg := Default()
	err := Decode([]byte(`outptu: typo.json`), &cfg)
	assert.Error(t, err)
}

func TestDecode_Empty(t *testing.T) {
	cfg := Default()
	require.NoError(t, Decode([]byte(``), &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestDecode_InvalidYAML(t *testing.T) {
	cfg := Default()
	assert.Error(t, Decode([]byte("input: [unterminated"), &cfg))
}
