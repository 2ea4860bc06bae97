// Package verify performs the structural and signature checks that gate
// artifact delivery.
package verify

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"go.webdroid.dev/webdroid/internal/core/domain"
	"go.webdroid.dev/webdroid/internal/core/ports"
)

// requiredAPKEntries must exist in a finished APK.
var requiredAPKEntries = []string{
	"AndroidManifest.xml",
	"resources.arsc",
	"classes.dex",
}

// requiredAABEntries must exist in a finished bundle.
var requiredAABEntries = []string{
	"base/manifest/AndroidManifest.xml",
	"base/dex/classes.dex",
}

// Verifier implements ports.Verifier. The structural check fully reads every
// required entry so the zip CRC catches corrupted bytes, then the signature
// is checked with the toolchain's own verifier.
type Verifier struct {
	runner ports.ToolRunner
}

// New creates a Verifier.
func New(runner ports.ToolRunner) *Verifier {
	return &Verifier{runner: runner}
}

var _ ports.Verifier = (*Verifier)(nil)

// Verify confirms path is a well-formed, signed package of the given kind.
func (v *Verifier) Verify(ctx context.Context, path string, kind domain.OutputKind, tc domain.Toolchain) (domain.BuildArtifact, error) {
	artifact := domain.BuildArtifact{Path: path, Kind: kind}

	info, err := os.Stat(path)
	if err != nil {
		return artifact, zerr.With(zerr.Wrap(domain.ErrVerificationFailed, "artifact missing"), "path", path)
	}
	artifact.Size = info.Size()

	required := requiredAPKEntries
	if kind == domain.OutputAAB {
		required = requiredAABEntries
	}
	if err := checkStructure(path, required); err != nil {
		return artifact, err
	}

	if err := v.checkSignature(ctx, path, kind, tc); err != nil {
		return artifact, err
	}

	artifact.Verified = true
	return artifact, nil
}

func (v *Verifier) checkSignature(ctx context.Context, path string, kind domain.OutputKind, tc domain.Toolchain) error {
	var inv domain.ToolInvocation
	var err error
	if kind == domain.OutputAAB {
		inv, err = v.runner.Run(ctx, filepath.Dir(path), tc.Jarsigner, "-verify", path)
	} else {
		inv, err = v.runner.Run(ctx, filepath.Dir(path), tc.Apksigner, "verify", path)
	}
	if err != nil {
		err = zerr.With(zerr.Wrap(domain.ErrVerificationFailed, "signature check failed"), "path", path)
		return zerr.With(err, "stderr", inv.Stderr)
	}
	return nil
}

// checkStructure opens the archive and reads every required entry to the end.
// Reading forces the CRC comparison, so a flipped bit anywhere in a required
// entry fails verification even without the native tools.
func checkStructure(path string, required []string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrVerificationFailed, "artifact is not a readable zip archive"), "path", path)
	}
	defer func() { _ = r.Close() }()

	entries := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		entries[f.Name] = f
	}

	for _, name := range required {
		f, ok := entries[name]
		if !ok {
			err := zerr.With(zerr.Wrap(domain.ErrVerificationFailed, "required archive entry missing"), "path", path)
			return zerr.With(err, "entry", name)
		}
		rc, err := f.Open()
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrVerificationFailed, err.Error()), "entry", name)
		}
		_, err = io.Copy(io.Discard, rc)
		_ = rc.Close()
		if err != nil {
			err = zerr.With(zerr.Wrap(domain.ErrVerificationFailed, "archive entry is corrupt"), "path", path)
			return zerr.With(err, "entry", name)
		}
	}
	return nil
}
