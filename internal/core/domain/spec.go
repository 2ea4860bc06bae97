// Package domain defines the core data model of the webdroid build pipeline.
package domain

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// OutputKind selects which artifacts a build produces.
type OutputKind string

const (
	// OutputAPK produces a signed, zip-aligned APK.
	OutputAPK OutputKind = "apk"
	// OutputAAB produces a signed Android App Bundle.
	OutputAAB OutputKind = "aab"
	// OutputBoth produces both artifact kinds.
	OutputBoth OutputKind = "both"
)

// ParseOutputKind parses a user-supplied output kind string.
func ParseOutputKind(s string) (OutputKind, error) {
	switch OutputKind(strings.ToLower(s)) {
	case OutputAPK, OutputAAB, OutputBoth:
		return OutputKind(strings.ToLower(s)), nil
	case "":
		return OutputAPK, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidSpec, "unknown output kind"), "output", s)
	}
}

// WantsAPK reports whether the kind includes an APK.
func (k OutputKind) WantsAPK() bool { return k == OutputAPK || k == OutputBoth }

// WantsAAB reports whether the kind includes an AAB.
func (k OutputKind) WantsAAB() bool { return k == OutputAAB || k == OutputBoth }

// packageIDRegexp matches a valid reverse-domain application identifier:
// at least two dot-separated segments, each starting with a letter.
var packageIDRegexp = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*(\.[a-zA-Z][a-zA-Z0-9_]*)+$`)

// ProjectSpec is the immutable description of one build request.
type ProjectSpec struct {
	// EntryFile is the path to the HTML entry point of the web project.
	EntryFile string
	// AppName is the display name of the generated application.
	AppName string
	// PackageID is the reverse-domain application identifier.
	PackageID string
	// VersionName is the human-readable version string.
	VersionName string
	// VersionCode is the monotonic integer version.
	VersionCode int
	// IconFile is an optional path to a launcher icon image.
	IconFile string
	// Output selects which artifact kinds the build produces.
	Output OutputKind
}

// DefaultPackageID derives a package identifier from an app name,
// matching the historical "com.example.<name>" convention.
func DefaultPackageID(appName string) string {
	name := strings.ToLower(strings.ReplaceAll(appName, " ", ""))
	return "com.example." + name
}

// Validate checks the spec's invariants. All violations are reported as
// ErrInvalidSpec so the caller can distinguish input errors from toolchain
// errors before any stage runs.
func (s ProjectSpec) Validate() error {
	if strings.TrimSpace(s.AppName) == "" {
		return zerr.Wrap(ErrInvalidSpec, "app name must not be empty")
	}
	if s.VersionCode < 1 {
		return zerr.With(zerr.Wrap(ErrInvalidSpec, "version code must be a positive integer"), "version_code", s.VersionCode)
	}
	if strings.TrimSpace(s.VersionName) == "" {
		return zerr.Wrap(ErrInvalidSpec, "version name must not be empty")
	}
	if !packageIDRegexp.MatchString(s.PackageID) {
		return zerr.With(zerr.Wrap(ErrInvalidSpec, "package identifier is not a valid reverse-domain token"), "package", s.PackageID)
	}
	f, err := os.Open(s.EntryFile)
	if err != nil {
		return zerr.With(zerr.Wrap(ErrInvalidSpec, "entry file does not exist or is not readable"), "entry", s.EntryFile)
	}
	_ = f.Close()
	return nil
}

// BaseName returns the artifact base name, e.g. "Demo-1.0".
// Spaces are replaced so the name is usable as a file name.
func (s ProjectSpec) BaseName() string {
	return strings.ReplaceAll(s.AppName, " ", "_") + "-" + s.VersionName
}

// Fingerprint returns a stable hash of the spec and the entry file contents.
// Identical specs yield identical fingerprints, which makes workspace naming
// deterministic and the unsigned package reproducible.
func (s ProjectSpec) Fingerprint() (string, error) {
	h := xxhash.New()
	_, _ = fmt.Fprintf(h, "%s\x00%s\x00%s\x00%d\x00%s\x00%s\x00",
		s.AppName, s.PackageID, s.VersionName, s.VersionCode, s.Output, s.IconFile)

	f, err := os.Open(s.EntryFile)
	if err != nil {
		return "", zerr.With(zerr.Wrap(ErrInvalidSpec, "entry file does not exist or is not readable"), "entry", s.EntryFile)
	}
	defer func() { _ = f.Close() }()
	if _, err := io.Copy(h, f); err != nil {
		return "", zerr.Wrap(err, "failed to hash entry file")
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
