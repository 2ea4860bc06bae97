// Package toolchain locates the Android SDK and runs its external tools.
package toolchain

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"go.trai.ch/zerr"
	"go.webdroid.dev/webdroid/internal/adapters/config"
	"go.webdroid.dev/webdroid/internal/core/domain"
	"go.webdroid.dev/webdroid/internal/core/ports"
)

// Locator resolves the Android toolchain from an SDK root.
type Locator struct {
	cfg    *config.Config
	logger ports.Logger

	// lookPath is swappable in tests.
	lookPath func(file string) (string, error)
}

// NewLocator creates a Locator for the configured SDK.
func NewLocator(cfg *config.Config, logger ports.Logger) *Locator {
	return &Locator{cfg: cfg, logger: logger, lookPath: exec.LookPath}
}

// Locate resolves every tool the build needs. SDK tools come from the
// build-tools directory, JDK tools from PATH. A missing bundletool.jar is
// tolerated; the pipeline rejects bundle builds without it.
func (l *Locator) Locate() (domain.Toolchain, error) {
	var tc domain.Toolchain

	if l.cfg.SDKRoot == "" {
		return tc, zerr.Wrap(domain.ErrToolUnavailable, "no Android SDK root configured, set ANDROID_HOME or sdk.root in webdroid.yaml")
	}

	buildTools := filepath.Join(l.cfg.SDKRoot, "build-tools", l.cfg.BuildTools)
	if !dirExists(buildTools) {
		return tc, zerr.With(zerr.Wrap(domain.ErrToolUnavailable, "build-tools directory not found"), "path", buildTools)
	}

	var err error
	if tc.AAPT2, err = l.sdkTool(buildTools, "aapt2"); err != nil {
		return tc, err
	}
	if tc.D8, err = l.sdkBatchTool(buildTools, "d8"); err != nil {
		return tc, err
	}
	if tc.Zipalign, err = l.sdkTool(buildTools, "zipalign"); err != nil {
		return tc, err
	}
	if tc.Apksigner, err = l.sdkBatchTool(buildTools, "apksigner"); err != nil {
		return tc, err
	}

	tc.AndroidJar = filepath.Join(l.cfg.SDKRoot, "platforms", l.cfg.Platform, "android.jar")
	if !fileExists(tc.AndroidJar) {
		return tc, zerr.With(zerr.Wrap(domain.ErrToolUnavailable, "android.jar not found, install the platform"), "path", tc.AndroidJar)
	}

	for _, jdk := range []struct {
		name string
		dst  *string
	}{
		{"javac", &tc.Javac},
		{"java", &tc.Java},
		{"keytool", &tc.Keytool},
		{"jarsigner", &tc.Jarsigner},
	} {
		path, err := l.lookPath(jdk.name)
		if err != nil {
			return tc, zerr.With(zerr.Wrap(domain.ErrToolUnavailable, "JDK tool not found on PATH"), "tool", jdk.name)
		}
		*jdk.dst = path
	}

	// Optional. Only bundle builds need it.
	bundletool := filepath.Join(l.cfg.SDKRoot, "bundletool.jar")
	if fileExists(bundletool) {
		tc.Bundletool = bundletool
	}

	return tc, nil
}

func (l *Locator) sdkTool(dir, name string) (string, error) {
	return l.resolve(dir, name, ".exe")
}

// sdkBatchTool resolves tools that ship as batch scripts on Windows.
func (l *Locator) sdkBatchTool(dir, name string) (string, error) {
	return l.resolve(dir, name, ".bat")
}

func (l *Locator) resolve(dir, name, winExt string) (string, error) {
	if runtime.GOOS == "windows" {
		name += winExt
	}
	path := filepath.Join(dir, name)
	if !fileExists(path) {
		return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrToolUnavailable, "SDK tool not found"), "tool", name), "path", path)
	}
	return path, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
