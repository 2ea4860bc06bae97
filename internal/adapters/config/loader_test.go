package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.webdroid.dev/webdroid/internal/adapters/config"
	"go.webdroid.dev/webdroid/internal/core/domain"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ANDROID_HOME", "/opt/android-sdk")

	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/opt/android-sdk", cfg.SDKRoot)
	assert.Equal(t, "34.0.0", cfg.BuildTools)
	assert.Equal(t, "android-34", cfg.Platform)
	assert.Equal(t, "androiddebugkey", cfg.KeystoreAlias)
	assert.Equal(t, 5*time.Minute, cfg.StageTimeout)
	assert.False(t, cfg.KeepWorkspace)
}

func TestLoad_EnvFallback(t *testing.T) {
	t.Setenv("ANDROID_HOME", "")
	t.Setenv("ANDROID_SDK_ROOT", "/srv/sdk")

	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "/srv/sdk", cfg.SDKRoot)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	content := `
sdk:
  root: /custom/sdk
  build_tools: "35.0.0"
keystore:
  path: /keys/release.keystore
  alias: release
build:
  keep_workspace: true
  stage_timeout_seconds: 60
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/custom/sdk", cfg.SDKRoot)
	assert.Equal(t, "35.0.0", cfg.BuildTools)
	assert.Equal(t, "android-34", cfg.Platform, "unset fields keep defaults")
	assert.Equal(t, "/keys/release.keystore", cfg.KeystorePath)
	assert.Equal(t, "release", cfg.KeystoreAlias)
	assert.True(t, cfg.KeepWorkspace)
	assert.Equal(t, time.Minute, cfg.StageTimeout)
}

func TestLoad_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, config.FileName), []byte("sdk:\n  root: /up/sdk\n"), 0o644))

	cfg, err := config.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, "/up/sdk", cfg.SDKRoot)
}

func TestLoad_ParseError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("sdk: [broken"), 0o644))

	_, err := config.Load(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigParseFailed))
}
