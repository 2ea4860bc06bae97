// Package app implements the application layer for webdroid.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.trai.ch/zerr"
	"go.webdroid.dev/webdroid/internal/adapters/config"
	"go.webdroid.dev/webdroid/internal/core/domain"
	"go.webdroid.dev/webdroid/internal/core/ports"
	"go.webdroid.dev/webdroid/internal/engine/pipeline"
)

// ToolchainLocator resolves the native toolchain. Satisfied by the toolchain
// adapter's Locator.
type ToolchainLocator interface {
	Locate() (domain.Toolchain, error)
}

// BuildRunner runs one build through the pipeline. Satisfied by
// pipeline.Pipeline.
type BuildRunner interface {
	Run(ctx context.Context, spec domain.ProjectSpec, tc domain.Toolchain, opts pipeline.Options) ([]domain.BuildArtifact, error)
}

// App wires the ports into the webdroid use cases.
type App struct {
	cfg      *config.Config
	pipeline BuildRunner
	locator  ToolchainLocator
	keystore ports.KeystoreProvider
	watcher  ports.Watcher
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	cfg *config.Config,
	p BuildRunner,
	locator ToolchainLocator,
	keystore ports.KeystoreProvider,
	watcher ports.Watcher,
	logger ports.Logger,
) *App {
	return &App{
		cfg:      cfg,
		pipeline: p,
		locator:  locator,
		keystore: keystore,
		watcher:  watcher,
		logger:   logger,
	}
}

// BuildOptions carry the build command's flags.
type BuildOptions struct {
	EntryFile     string
	AppName       string
	PackageID     string
	VersionName   string
	VersionCode   int
	IconFile      string
	Output        string
	OutputDir     string
	KeystorePath  string
	KeystoreAlias string
	KeepWorkspace bool
	Watch         bool
}

// Components holds the resolved application components for the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

// Build runs the pipeline for the given options, once or in watch mode.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	spec, pipelineOpts, err := a.resolve(opts)
	if err != nil {
		return err
	}

	tc, err := a.locator.Locate()
	if err != nil {
		return err
	}

	if !opts.Watch {
		_, err := a.pipeline.Run(ctx, spec, tc, pipelineOpts)
		return err
	}
	return a.watch(ctx, spec, tc, pipelineOpts)
}

// resolve fills unset options from the configuration and derives the spec.
func (a *App) resolve(opts BuildOptions) (domain.ProjectSpec, pipeline.Options, error) {
	kind, err := domain.ParseOutputKind(opts.Output)
	if err != nil {
		return domain.ProjectSpec{}, pipeline.Options{}, err
	}

	spec := domain.ProjectSpec{
		EntryFile:   opts.EntryFile,
		AppName:     strings.TrimSpace(opts.AppName),
		PackageID:   opts.PackageID,
		VersionName: opts.VersionName,
		VersionCode: opts.VersionCode,
		IconFile:    opts.IconFile,
		Output:      kind,
	}
	if spec.AppName == "" {
		spec.AppName = "MyWebApp"
	}
	if spec.VersionName == "" {
		spec.VersionName = "1.0"
	}
	// VersionCode is passed through untouched. An explicit zero must reach
	// Validate and be rejected rather than silently promoted.
	if spec.PackageID == "" {
		spec.PackageID = domain.DefaultPackageID(spec.AppName)
	}
	if err := spec.Validate(); err != nil {
		return spec, pipeline.Options{}, err
	}

	pOpts := pipeline.Options{
		KeystorePath:  opts.KeystorePath,
		KeystoreAlias: opts.KeystoreAlias,
		OutputDir:     opts.OutputDir,
		KeepWorkspace: opts.KeepWorkspace || a.cfg.KeepWorkspace,
	}
	if pOpts.KeystorePath == "" {
		pOpts.KeystorePath = a.cfg.KeystorePath
	}
	if pOpts.KeystoreAlias == "" {
		pOpts.KeystoreAlias = a.cfg.KeystoreAlias
	}
	if pOpts.OutputDir == "" {
		pOpts.OutputDir = a.cfg.OutputDir
	}
	return spec, pOpts, nil
}

// watch rebuilds on every change to the entry file or icon until ctx ends.
// A failing rebuild is reported and watching continues.
func (a *App) watch(ctx context.Context, spec domain.ProjectSpec, tc domain.Toolchain, opts pipeline.Options) error {
	paths := []string{spec.EntryFile}
	if spec.IconFile != "" {
		paths = append(paths, spec.IconFile)
	}
	if err := a.watcher.Start(ctx, paths); err != nil {
		return zerr.Wrap(err, "failed to start watch mode")
	}
	defer func() { _ = a.watcher.Stop() }()

	if _, err := a.pipeline.Run(ctx, spec, tc, opts); err != nil {
		a.logger.Error(err)
	}
	a.logger.Info("watching for changes, interrupt to stop")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-a.watcher.Events():
			if !ok {
				return nil
			}
			a.logger.Info(fmt.Sprintf("%s changed, rebuilding", event.Path))
			if _, err := a.pipeline.Run(ctx, spec, tc, opts); err != nil {
				a.logger.Error(err)
			}
		}
	}
}

// KeystoreInfo describes the signing identity for the keystore commands.
type KeystoreInfo struct {
	Path   string
	Alias  string
	Exists bool
}

// InspectKeystore reports the configured signing identity without creating it.
func (a *App) InspectKeystore(_ context.Context) KeystoreInfo {
	info := KeystoreInfo{Path: a.cfg.KeystorePath, Alias: a.cfg.KeystoreAlias}
	if stat, err := os.Stat(info.Path); err == nil && !stat.IsDir() {
		info.Exists = true
	}
	return info
}

// InitKeystore creates the configured signing identity if it does not exist
// and validates it if it does.
func (a *App) InitKeystore(ctx context.Context) (KeystoreInfo, error) {
	record, err := a.keystore.Obtain(ctx, a.cfg.KeystorePath, a.cfg.KeystoreAlias)
	if err != nil {
		return KeystoreInfo{}, err
	}
	return KeystoreInfo{Path: record.Path, Alias: record.Alias, Exists: true}, nil
}
