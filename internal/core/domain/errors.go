package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidSpec is returned when a project spec fails input validation.
	ErrInvalidSpec = zerr.New("invalid project spec")

	// ErrAssetRejected is returned when the entry file or icon cannot be embedded.
	ErrAssetRejected = zerr.New("asset rejected")

	// ErrScaffoldConflict is returned when the workspace path already exists and is not empty.
	ErrScaffoldConflict = zerr.New("workspace path already exists and is not empty")

	// ErrToolUnavailable is returned when a native build tool is missing or cannot be spawned.
	ErrToolUnavailable = zerr.New("build tool unavailable")

	// ErrStageFailed is returned when a build tool ran and exited with a non-zero status.
	ErrStageFailed = zerr.New("build tool exited with an error")

	// ErrSigningIdentity is returned when the keystore is missing, corrupt, or the alias does not match.
	ErrSigningIdentity = zerr.New("signing identity unusable")

	// ErrSigningRejected is returned when the signing step rejects the keystore or package.
	ErrSigningRejected = zerr.New("signing rejected")

	// ErrVerificationFailed is returned when a produced artifact fails its structural or signature check.
	ErrVerificationFailed = zerr.New("artifact verification failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrBuildFailed is the top-level error for a build that reached the Failed state.
	// The failing stage and its diagnostics are attached as metadata by the pipeline.
	ErrBuildFailed = zerr.New("build failed")
)
