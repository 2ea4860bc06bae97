// Package pipeline orchestrates the native Android build tools that turn a
// scaffolded workspace into signed, verified packages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
	"go.webdroid.dev/webdroid/internal/core/domain"
	"go.webdroid.dev/webdroid/internal/core/ports"
)

// Options carry per-build settings from the CLI and config into the pipeline.
type Options struct {
	// KeystorePath is the signing keystore location.
	KeystorePath string
	// KeystoreAlias names the key pair inside the store.
	KeystoreAlias string
	// OutputDir receives the final artifacts.
	OutputDir string
	// KeepWorkspace retains the workspace after a successful build.
	KeepWorkspace bool
}

// Pipeline drives one build through its stages. Each stage either advances
// the state or moves the build to Failed; there are no partial successes and
// no artifact is reported without passing verification.
type Pipeline struct {
	runner     ports.ToolRunner
	keystore   ports.KeystoreProvider
	scaffolder ports.Scaffolder
	embedder   ports.AssetEmbedder
	manifest   ports.ManifestWriter
	verifier   ports.Verifier
	tracer     ports.Tracer
	logger     ports.Logger
}

// New creates a Pipeline from its collaborating ports.
func New(
	runner ports.ToolRunner,
	keystore ports.KeystoreProvider,
	scaffolder ports.Scaffolder,
	embedder ports.AssetEmbedder,
	manifest ports.ManifestWriter,
	verifier ports.Verifier,
	tracer ports.Tracer,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		runner:     runner,
		keystore:   keystore,
		scaffolder: scaffolder,
		embedder:   embedder,
		manifest:   manifest,
		verifier:   verifier,
		tracer:     tracer,
		logger:     logger,
	}
}

// run is the mutable state of one build.
type run struct {
	spec   domain.ProjectSpec
	tc     domain.Toolchain
	opts   Options
	stage  domain.Stage
	ws     domain.BuildWorkspace
	record domain.KeystoreRecord

	// unsigned outputs awaiting signing, final artifact paths by kind
	finalAPK string
	finalAAB string
}

// Run executes the full build for spec and returns the verified artifacts.
func (p *Pipeline) Run(ctx context.Context, spec domain.ProjectSpec, tc domain.Toolchain, opts Options) ([]domain.BuildArtifact, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if spec.Output.WantsAAB() && tc.Bundletool == "" {
		return nil, zerr.Wrap(domain.ErrToolUnavailable, "bundletool.jar not found in the SDK root, required for app bundles")
	}

	r := &run{spec: spec, tc: tc, opts: opts, stage: domain.StageInit}

	record, err := p.keystore.Obtain(ctx, opts.KeystorePath, opts.KeystoreAlias)
	if err != nil {
		return nil, err
	}
	r.record = record

	steps := []struct {
		name string
		next domain.Stage
		fn   func(context.Context, *run) error
	}{
		{"scaffold", domain.StageScaffolded, p.scaffold},
		{"embed-assets", domain.StageAssetsEmbedded, p.embedAssets},
		{"write-manifest", domain.StageManifestWritten, p.writeManifest},
		{"compile-resources", domain.StageResourcesCompiled, p.compileResources},
		{"package", domain.StagePackaged, p.packageOutputs},
		{"align", domain.StageAligned, p.align},
		{"sign", domain.StageSigned, p.sign},
	}

	for _, step := range steps {
		if err := p.runStage(ctx, r, step.name, step.fn); err != nil {
			r.stage = domain.StageFailed
			p.retainWorkspace(r)
			return nil, err
		}
		r.stage = step.next
	}

	artifacts, err := p.verifyArtifacts(ctx, r)
	if err != nil {
		r.stage = domain.StageFailed
		p.retainWorkspace(r)
		return nil, err
	}
	r.stage = domain.StageDone

	if !r.opts.KeepWorkspace {
		if err := r.ws.Remove(); err != nil {
			p.logger.Warn(fmt.Sprintf("failed to remove workspace %s", r.ws.Root))
		}
	}
	for _, artifact := range artifacts {
		p.logger.Info(fmt.Sprintf("wrote %s (%d bytes)", artifact.Path, artifact.Size))
	}
	return artifacts, nil
}

// runStage traces one stage and classifies its failure.
func (p *Pipeline) runStage(ctx context.Context, r *run, name string, fn func(context.Context, *run) error) error {
	if err := ctx.Err(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrBuildFailed, "build cancelled"), "stage", string(r.stage))
	}

	ctx, span := p.tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx, r); err != nil {
		span.RecordError(err)
		return p.classify(err, r.stage)
	}
	return nil
}

// classify annotates err with the failing stage. Errors that are not already
// one of the build's sentinels are wrapped in ErrBuildFailed so callers have
// a single failure root to test against.
func (p *Pipeline) classify(err error, stage domain.Stage) error {
	err = zerr.With(err, "stage", string(stage))
	for _, sentinel := range []error{
		domain.ErrInvalidSpec, domain.ErrAssetRejected, domain.ErrScaffoldConflict,
		domain.ErrToolUnavailable, domain.ErrStageFailed, domain.ErrSigningIdentity,
		domain.ErrSigningRejected, domain.ErrVerificationFailed, domain.ErrBuildFailed,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return zerr.Wrap(domain.ErrBuildFailed, err.Error())
}

func (p *Pipeline) scaffold(_ context.Context, r *run) error {
	ws, err := p.scaffolder.Scaffold(r.spec)
	if err != nil {
		return err
	}
	r.ws = ws
	return nil
}

func (p *Pipeline) embedAssets(ctx context.Context, r *run) error {
	return p.embedder.Embed(ctx, r.spec, r.ws)
}

func (p *Pipeline) writeManifest(_ context.Context, r *run) error {
	_, err := p.manifest.Write(r.spec, r.ws)
	return err
}

func (p *Pipeline) compileResources(ctx context.Context, r *run) error {
	_, err := p.runner.Run(ctx, r.ws.Root, r.tc.AAPT2,
		"compile",
		"--dir", r.ws.ResDir(),
		"-o", r.ws.CompiledResPath(),
	)
	return err
}

// packageOutputs assembles the unsigned APK and, when requested, the unsigned
// bundle. Both start from the same compiled resources and dex output.
func (p *Pipeline) packageOutputs(ctx context.Context, r *run) error {
	if err := p.linkAPK(ctx, r); err != nil {
		return err
	}
	if err := p.compileJava(ctx, r); err != nil {
		return err
	}
	if err := p.dex(ctx, r); err != nil {
		return err
	}
	if err := injectDex(r.ws.UnsignedAPKPath(), r.ws.DexPath()); err != nil {
		return err
	}
	if r.spec.Output.WantsAAB() {
		return p.assembleBundle(ctx, r)
	}
	return nil
}

// linkAPK always runs, even for bundle-only builds, because it generates the
// R.java the java compilation stage needs.
func (p *Pipeline) linkAPK(ctx context.Context, r *run) error {
	_, err := p.runner.Run(ctx, r.ws.Root, r.tc.AAPT2,
		"link",
		"-I", r.tc.AndroidJar,
		"--manifest", r.ws.ManifestPath(),
		"-o", r.ws.UnsignedAPKPath(),
		"-A", r.ws.AssetsDir(),
		"--java", r.ws.GenDir(),
		r.ws.CompiledResPath(),
		"--auto-add-overlay",
	)
	return err
}

func (p *Pipeline) compileJava(ctx context.Context, r *run) error {
	_, err := p.runner.Run(ctx, r.ws.Root, r.tc.Javac,
		"-source", "1.8",
		"-target", "1.8",
		"-bootclasspath", r.tc.AndroidJar,
		"-classpath", r.tc.AndroidJar,
		filepath.Join(r.ws.SrcDir, "MainActivity.java"),
		r.rJavaPath(),
	)
	return err
}

func (p *Pipeline) dex(ctx context.Context, r *run) error {
	classFiles := []string{
		filepath.Join(r.ws.SrcDir, "MainActivity.class"),
		strings.TrimSuffix(r.rJavaPath(), ".java") + ".class",
	}
	// R emits inner classes (R$mipmap and friends) when resources exist.
	inner, _ := filepath.Glob(strings.TrimSuffix(r.rJavaPath(), ".java") + "$*.class")
	classFiles = append(classFiles, inner...)

	args := append([]string{"--output", r.ws.Root, "--lib", r.tc.AndroidJar}, classFiles...)
	_, err := p.runner.Run(ctx, r.ws.Root, r.tc.D8, args...)
	return err
}

// assembleBundle builds the unsigned AAB: proto-format link, restructure into
// the bundle module layout, zip, bundletool.
func (p *Pipeline) assembleBundle(ctx context.Context, r *run) error {
	_, err := p.runner.Run(ctx, r.ws.Root, r.tc.AAPT2,
		"link",
		"--proto-format",
		"-I", r.tc.AndroidJar,
		"--manifest", r.ws.ManifestPath(),
		"-o", r.ws.ProtoAPKPath(),
		"-A", r.ws.AssetsDir(),
		r.ws.CompiledResPath(),
		"--auto-add-overlay",
	)
	if err != nil {
		return err
	}

	base := r.ws.BundleModuleDir()
	for _, dir := range []string{filepath.Join(base, "manifest"), filepath.Join(base, "dex")} {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.Wrap(err, "failed to prepare bundle module")
		}
	}
	if err := unzipDir(r.ws.ProtoAPKPath(), base); err != nil {
		return err
	}
	if err := os.Rename(filepath.Join(base, "AndroidManifest.xml"), filepath.Join(base, "manifest", "AndroidManifest.xml")); err != nil {
		return zerr.Wrap(err, "proto-format link produced no manifest")
	}
	if err := copyFile(r.ws.DexPath(), filepath.Join(base, "dex", "classes.dex")); err != nil {
		return err
	}
	if err := zipDir(base, r.ws.BundleZipPath()); err != nil {
		return err
	}

	_, err = p.runner.Run(ctx, r.ws.Root, r.tc.Java,
		"-jar", r.tc.Bundletool,
		"build-bundle",
		"--modules="+r.ws.BundleZipPath(),
		"--output="+r.ws.UnsignedAABPath(),
	)
	return err
}

func (p *Pipeline) align(ctx context.Context, r *run) error {
	if !r.spec.Output.WantsAPK() {
		return nil
	}
	_, err := p.runner.Run(ctx, r.ws.Root, r.tc.Zipalign,
		"-f", "4",
		r.ws.UnsignedAPKPath(),
		r.ws.AlignedAPKPath(),
	)
	return err
}

func (p *Pipeline) sign(ctx context.Context, r *run) error {
	if r.spec.Output.WantsAPK() {
		r.finalAPK = filepath.Join(r.opts.OutputDir, r.spec.BaseName()+".apk")
		inv, err := p.runner.Run(ctx, r.ws.Root, r.tc.Apksigner,
			"sign",
			"--ks", r.record.Path,
			"--ks-key-alias", r.record.Alias,
			"--ks-pass", "pass:"+r.record.StorePass,
			"--key-pass", "pass:"+r.record.KeyPass,
			"--out", r.finalAPK,
			r.ws.AlignedAPKPath(),
		)
		if err != nil {
			// A missing or unspawnable signer is a toolchain problem, not a
			// rejected identity. Only a signer that ran and refused is.
			if !errors.Is(err, domain.ErrStageFailed) {
				return err
			}
			return zerr.With(
				zerr.Wrap(domain.ErrSigningRejected, "apksigner rejected the signing identity"),
				"stderr", inv.Stderr)
		}
	}

	if r.spec.Output.WantsAAB() {
		inv, err := p.runner.Run(ctx, r.ws.Root, r.tc.Jarsigner,
			"-keystore", r.record.Path,
			"-storepass", r.record.StorePass,
			"-keypass", r.record.KeyPass,
			r.ws.UnsignedAABPath(),
			r.record.Alias,
		)
		if err != nil {
			if !errors.Is(err, domain.ErrStageFailed) {
				return err
			}
			return zerr.With(
				zerr.Wrap(domain.ErrSigningRejected, "jarsigner rejected the signing identity"),
				"stderr", inv.Stderr)
		}
		r.finalAAB = filepath.Join(r.opts.OutputDir, r.spec.BaseName()+".aab")
		if err := copyFile(r.ws.UnsignedAABPath(), r.finalAAB); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) verifyArtifacts(ctx context.Context, r *run) ([]domain.BuildArtifact, error) {
	ctx, span := p.tracer.Start(ctx, "verify")
	defer span.End()

	var artifacts []domain.BuildArtifact
	if r.spec.Output.WantsAPK() {
		artifact, err := p.verifier.Verify(ctx, r.finalAPK, domain.OutputAPK, r.tc)
		if err != nil {
			span.RecordError(err)
			return nil, p.classify(err, r.stage)
		}
		artifacts = append(artifacts, artifact)
	}
	if r.spec.Output.WantsAAB() {
		artifact, err := p.verifier.Verify(ctx, r.finalAAB, domain.OutputAAB, r.tc)
		if err != nil {
			span.RecordError(err)
			return nil, p.classify(err, r.stage)
		}
		artifacts = append(artifacts, artifact)
	}
	r.stage = domain.StageVerified
	return artifacts, nil
}

func (p *Pipeline) retainWorkspace(r *run) {
	if r.ws.Root == "" {
		return
	}
	p.logger.Warn(fmt.Sprintf("workspace retained for diagnostics: %s", r.ws.Root))
}

func (r *run) rJavaPath() string {
	parts := append([]string{r.ws.GenDir()}, strings.Split(r.spec.PackageID, ".")...)
	return filepath.Join(append(parts, "R.java")...)
}
