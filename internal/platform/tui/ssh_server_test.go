package tui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-automata/internal/config"
)

func testServerConfig(dir string) config.Config {
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(dir, "library.db")
	cfg.Server.Addr = "127.0.0.1:0"
	cfg.Server.IdleTimeout = time.Minute
	return cfg
}

func TestSSHServerSetup(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cfg := testServerConfig(dir)
	srv, err := NewSSHServer(cfg)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
	assert.NotNil(t, srv.store)
	assert.DirExists(t, filepath.Join(dir, ".automata", ".ssh"))
	require.NoError(t, srv.Shutdown())
}

func TestResolveHostKey(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "keys", "host")

	got, err := resolveHostKey(abs)
	require.NoError(t, err)
	assert.Equal(t, abs, got)
	assert.DirExists(t, filepath.Join(dir, "keys"))
}
