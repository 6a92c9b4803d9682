package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ThemeAuto, cfg.UI.Theme)
	assert.Equal(t, DefaultPageSize, cfg.UI.PageSize)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Empty(t, cfg.Catalog.Path)
	assert.NotEmpty(t, cfg.Cache.Dir)
}

func TestLoadConfigFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFrom_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`
catalog:
  path: /srv/books.yaml
ui:
  theme: NIGHT
  page_size: 12
logging:
  level: debug
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644))

	cfg, err := LoadConfigFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/books.yaml", cfg.Catalog.Path)
	assert.Equal(t, ThemeNight, cfg.UI.Theme)
	assert.Equal(t, 12, cfg.UI.PageSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, DefaultConfig().Cache.Dir, cfg.Cache.Dir)
}

func TestLoadConfigFrom_NormalizesBadValues(t *testing.T) {
	dir := t.TempDir()
	data := []byte("ui:\n  theme: sepia\n  page_size: -3\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644))

	cfg, err := LoadConfigFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, ThemeAuto, cfg.UI.Theme)
	assert.Equal(t, DefaultPageSize, cfg.UI.PageSize)
}

func TestLoadConfigFrom_EnvOverrides(t *testing.T) {
	t.Setenv("BOOKSHELF_UI_PAGE_SIZE", "7")
	t.Setenv("BOOKSHELF_CATALOG_PATH", "/env/catalog.yaml")

	cfg, err := LoadConfigFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.UI.PageSize)
	assert.Equal(t, "/env/catalog.yaml", cfg.Catalog.Path)
}

func TestLoadConfigFrom_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("ui: [\n"), 0644))

	_, err := LoadConfigFrom(dir)
	assert.Error(t, err)
}

func TestSaveTheme_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	require.NoError(t, saveTheme(dir, ThemeDay))

	cfg, err := LoadConfigFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, ThemeDay, cfg.UI.Theme)
}

func TestSaveTheme_KeepsOnlyFileKeys(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	data := []byte("ui:\n  page_size: 12\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(configFile, data, 0644))
	t.Setenv("BOOKSHELF_CATALOG_PATH", "/env/catalog.yaml")

	_, err := LoadConfigFrom(dir)
	require.NoError(t, err)
	require.NoError(t, saveTheme(dir, ThemeNight))

	written := viper.New()
	written.SetConfigFile(configFile)
	require.NoError(t, written.ReadInConfig())

	assert.Equal(t, ThemeNight, written.GetString("ui.theme"))
	assert.Equal(t, 12, written.GetInt("ui.page_size"))
	assert.Equal(t, "debug", written.GetString("logging.level"))
	assert.False(t, written.IsSet("catalog.path"))
	assert.False(t, written.IsSet("cache.dir"))
	assert.False(t, written.IsSet("logging.file"))
}
