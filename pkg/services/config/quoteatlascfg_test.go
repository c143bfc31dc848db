package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".quoteatlascfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRegistry(t *testing.T) {
	path := writeConfig(t, `
[default]
db_path = ./crm.db

[staging]
db_path = /srv/quote-atlas/staging.db
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("lists profiles", func(t *testing.T) {
		profiles, err := registry.GetProfiles(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"default", "staging"}, profiles)
	})

	t.Run("loads a profile", func(t *testing.T) {
		profile, err := registry.GetProfile(ctx, "staging")
		require.NoError(t, err)
		assert.Equal(t, "/srv/quote-atlas/staging.db", profile.DbPath)
	})

	t.Run("unknown profile errors", func(t *testing.T) {
		_, err := registry.GetProfile(ctx, "production")
		assert.Error(t, err)
	})

	t.Run("profile without db_path errors", func(t *testing.T) {
		path := writeConfig(t, "[default]\ncurrency = USD\n")
		registry, err := NewRegistry(path)
		require.NoError(t, err)

		_, err = registry.GetProfile(ctx, "default")
		assert.Error(t, err)
	})
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry("/nonexistent/.quoteatlascfg")
	assert.Error(t, err)
}
