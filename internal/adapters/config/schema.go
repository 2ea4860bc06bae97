package config

// File represents the structure of the webdroid.yaml configuration file.
type File struct {
	SDK      SDKSection      `yaml:"sdk"`
	Keystore KeystoreSection `yaml:"keystore"`
	Build    BuildSection    `yaml:"build"`
}

// SDKSection configures where the Android toolchain is found.
type SDKSection struct {
	// Root is the SDK root directory. Defaults to $ANDROID_HOME or
	// $ANDROID_SDK_ROOT when empty.
	Root string `yaml:"root"`
	// BuildTools is the build-tools version directory name.
	BuildTools string `yaml:"build_tools"`
	// Platform is the platform directory name holding android.jar.
	Platform string `yaml:"platform"`
}

// KeystoreSection configures the persistent signing identity.
type KeystoreSection struct {
	Path      string `yaml:"path"`
	Alias     string `yaml:"alias"`
	StorePass string `yaml:"store_pass"`
	KeyPass   string `yaml:"key_pass"`
}

// BuildSection configures build behavior.
type BuildSection struct {
	// Dir is where build workspaces are created. Defaults to the system
	// temp directory.
	Dir string `yaml:"dir"`
	// OutputDir is where final artifacts are written. Defaults to the
	// current working directory.
	OutputDir string `yaml:"output_dir"`
	// KeepWorkspace retains the workspace after the build for diagnostics.
	KeepWorkspace bool `yaml:"keep_workspace"`
	// StageTimeoutSeconds bounds each external tool invocation.
	StageTimeoutSeconds int `yaml:"stage_timeout_seconds"`
}
