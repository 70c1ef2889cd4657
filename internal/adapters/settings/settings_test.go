package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jackramireznewacc/webp-converter/internal/core/domain"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfig(t *testing.T) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	viper.AddConfigPath(dir)
	viper.SetConfigType("toml")

	return dir
}

func TestStoreLoadDefaults(t *testing.T) {
	setupConfig(t)

	viper.SetDefault("converter.quality", domain.DefaultQuality)
	viper.SetDefault("converter.method", domain.DefaultMethod)
	viper.SetDefault("converter.output_dir", domain.DefaultOutputDir)

	settings := NewStore().Load()

	assert.Equal(t, domain.DefaultQuality, settings.Quality)
	assert.Equal(t, domain.DefaultMethod, settings.Method)
	assert.Equal(t, domain.DefaultOutputDir, settings.OutputDir)
	assert.False(t, settings.Lossless)
}

func TestStoreSaveCreatesConfigFile(t *testing.T) {
	dir := setupConfig(t)
	store := NewStore()

	err := store.Save(domain.Settings{Quality: 85, Method: 4, OutputDir: "out", Lossless: true})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)

	require.NoError(t, viper.ReadInConfig())

	settings := store.Load()
	assert.Equal(t, 85, settings.Quality)
	assert.Equal(t, 4, settings.Method)
	assert.Equal(t, "out", settings.OutputDir)
	assert.True(t, settings.Lossless)
}

func TestStoreSaveOverwritesConfigFile(t *testing.T) {
	dir := setupConfig(t)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[converter]\nquality = 50\n"), 0o644))
	require.NoError(t, viper.ReadInConfig())

	store := NewStore()
	require.NoError(t, store.Save(domain.Settings{Quality: 70, Method: 6, OutputDir: "converted"}))

	viper.Reset()
	viper.AddConfigPath(dir)
	viper.SetConfigType("toml")
	require.NoError(t, viper.ReadInConfig())

	assert.Equal(t, 70, store.Load().Quality)
}
