// Package config provides the configuration loader for webdroid.
package config

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
	"go.webdroid.dev/webdroid/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file.
const FileName = "webdroid.yaml"

const (
	defaultBuildTools   = "34.0.0"
	defaultPlatform     = "android-34"
	defaultAlias        = "androiddebugkey"
	defaultStorePass    = "android"
	defaultKeyPass      = "android"
	defaultStageTimeout = 5 * time.Minute
)

// Config is the resolved process-wide configuration. It is explicit state
// passed into each component so builds can run in isolated contexts in tests.
type Config struct {
	SDKRoot       string
	BuildTools    string
	Platform      string
	KeystorePath  string
	KeystoreAlias string
	StorePass     string
	KeyPass       string
	BuildDir      string
	OutputDir     string
	KeepWorkspace bool
	StageTimeout  time.Duration
}

// Load reads webdroid.yaml by walking up from cwd. A missing file is not an
// error; defaults apply.
func Load(cwd string) (*Config, error) {
	cfg := defaults()

	path, found := findConfiguration(cwd)
	if !found {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // discovered config path
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	apply(cfg, file)
	return cfg, nil
}

func defaults() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return &Config{
		SDKRoot:       sdkRootFromEnv(),
		BuildTools:    defaultBuildTools,
		Platform:      defaultPlatform,
		KeystorePath:  filepath.Join(home, ".webdroid", "debug.keystore"),
		KeystoreAlias: defaultAlias,
		StorePass:     defaultStorePass,
		KeyPass:       defaultKeyPass,
		BuildDir:      os.TempDir(),
		OutputDir:     ".",
		StageTimeout:  defaultStageTimeout,
	}
}

func sdkRootFromEnv() string {
	if root := os.Getenv("ANDROID_HOME"); root != "" {
		return root
	}
	return os.Getenv("ANDROID_SDK_ROOT")
}

func apply(cfg *Config, file File) {
	if file.SDK.Root != "" {
		cfg.SDKRoot = file.SDK.Root
	}
	if file.SDK.BuildTools != "" {
		cfg.BuildTools = file.SDK.BuildTools
	}
	if file.SDK.Platform != "" {
		cfg.Platform = file.SDK.Platform
	}
	if file.Keystore.Path != "" {
		cfg.KeystorePath = file.Keystore.Path
	}
	if file.Keystore.Alias != "" {
		cfg.KeystoreAlias = file.Keystore.Alias
	}
	if file.Keystore.StorePass != "" {
		cfg.StorePass = file.Keystore.StorePass
	}
	if file.Keystore.KeyPass != "" {
		cfg.KeyPass = file.Keystore.KeyPass
	}
	if file.Build.Dir != "" {
		cfg.BuildDir = file.Build.Dir
	}
	if file.Build.OutputDir != "" {
		cfg.OutputDir = file.Build.OutputDir
	}
	if file.Build.KeepWorkspace {
		cfg.KeepWorkspace = true
	}
	if file.Build.StageTimeoutSeconds > 0 {
		cfg.StageTimeout = time.Duration(file.Build.StageTimeoutSeconds) * time.Second
	}
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		path := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}
