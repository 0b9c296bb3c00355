package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		require.Equal(t, 8080, cfg.ServerPort)
		require.Equal(t, "postgres", cfg.DBDriver)
		require.Equal(t, "notifications", cfg.NotificationsTable)
		require.False(t, cfg.Migrations)
	})

	t.Run("file values and env override", func(t *testing.T) {
		dir := t.TempDir()
		content := "APP_NAME=Acme\nAPP_URL=https://acme.test/\nDB_DRIVER=sqlite\nSERVER_PORT=9000\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))
		t.Setenv("SERVER_PORT", "9100")
		t.Setenv("MIGRATIONS", "true")

		cfg, err := Load(dir)
		require.NoError(t, err)
		require.Equal(t, "Acme", cfg.AppName)
		require.Equal(t, "https://acme.test", cfg.AppURL)
		require.Equal(t, "sqlite", cfg.DBDriver)
		require.Equal(t, 9100, cfg.ServerPort)
		require.True(t, cfg.Migrations)
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "oracle")
		_, err := Load(t.TempDir())
		require.Error(t, err)
	})
}
