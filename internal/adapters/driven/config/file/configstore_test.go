package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/granola-scoop/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0600))
}

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	store, err := NewConfigStore("")

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(home, ".granola-scoop", "config.toml"), store.Path())
}

func TestNewConfigStore_DoesNotCreateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "absent")

	_, err := NewConfigStore(dir)
	require.NoError(t, err)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConfigStore_MissingFile(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get(domain.SettingCachePath)
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString(domain.SettingCachePath))
	assert.Equal(t, 0, store.GetInt(domain.SettingDefaultDays))
}

func TestConfigStore_NestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
[paths]
cache = "/data/cache-v3.json"
output = "/data/notes"

[defaults]
days = 14
`)

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/data/cache-v3.json", store.GetString("paths.cache"))
	assert.Equal(t, "/data/notes", store.GetString("paths.output"))
	assert.Equal(t, 14, store.GetInt("defaults.days"))

	val, ok := store.Get("defaults.days")
	assert.True(t, ok)
	assert.Equal(t, int64(14), val)
}

func TestConfigStore_WrongTypes(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
[paths]
cache = 3

[defaults]
days = "fourteen"
`)

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("paths.cache"))
	assert.Equal(t, 0, store.GetInt("defaults.days"))
}

func TestConfigStore_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `paths = { output = "~/meetings" }`)

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "meetings"), store.GetString("paths.output"))
}

func TestConfigStore_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `[paths
cache = `)

	_, err := NewConfigStore(tmpDir)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfigStore_Reload(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `defaults = { days = 3 }`)

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 3, store.GetInt("defaults.days"))

	writeConfig(t, tmpDir, `defaults = { days = 30 }`)
	require.NoError(t, store.Load())
	assert.Equal(t, 30, store.GetInt("defaults.days"))
}

func TestFlattenMap(t *testing.T) {
	input := map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[string]any{"d": "deep"},
		},
		"top": true,
	}

	got := flattenMap(input, "")

	assert.Equal(t, map[string]any{
		"a.b":   1,
		"a.c.d": "deep",
		"top":   true,
	}, got)
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/ann", "x"), expandHome("~/x", "/home/ann"))
	assert.Equal(t, "/abs/x", expandHome("/abs/x", "/home/ann"))
	assert.Equal(t, "~/x", expandHome("~/x", ""))
}
