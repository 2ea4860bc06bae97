package domain

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600

	// WorkspacePrefix prefixes every build workspace directory name.
	WorkspacePrefix = "webdroid-"
)

// DensityBucket is one launcher-icon resource density.
type DensityBucket struct {
	// Name is the mipmap qualifier, e.g. "mipmap-hdpi".
	Name string
	// Size is the icon edge length in pixels for this density.
	Size int
}

// IconDensities lists the launcher-icon buckets the scaffolder prepares and
// the embedder fills, ordered from lowest to highest density.
var IconDensities = []DensityBucket{
	{Name: "mipmap-mdpi", Size: 48},
	{Name: "mipmap-hdpi", Size: 72},
	{Name: "mipmap-xhdpi", Size: 96},
	{Name: "mipmap-xxhdpi", Size: 144},
	{Name: "mipmap-xxxhdpi", Size: 192},
}

// BuildWorkspace is the ephemeral, exclusively-owned directory tree of one
// build. All intermediate paths are derived from Root so the generated
// project layout stays in one place.
type BuildWorkspace struct {
	// Root is the absolute workspace directory.
	Root string
	// SrcDir is the java source directory for the generated entry-point stub.
	SrcDir string
}

// NewWorkspace derives the workspace layout for a package identifier under root.
func NewWorkspace(root, packageID string) BuildWorkspace {
	parts := append([]string{root, "java"}, strings.Split(packageID, ".")...)
	return BuildWorkspace{
		Root:   root,
		SrcDir: filepath.Join(parts...),
	}
}

// ResDir returns the resource directory.
func (w BuildWorkspace) ResDir() string { return filepath.Join(w.Root, "res") }

// AssetsDir returns the asset directory holding the embedded entry file.
func (w BuildWorkspace) AssetsDir() string { return filepath.Join(w.Root, "assets") }

// GenDir returns the directory for generated sources (R.java).
func (w BuildWorkspace) GenDir() string { return filepath.Join(w.Root, "gen") }

// ManifestPath returns the path of the rendered AndroidManifest.xml.
func (w BuildWorkspace) ManifestPath() string { return filepath.Join(w.Root, "AndroidManifest.xml") }

// CompiledResPath returns the aapt2 compile output archive.
func (w BuildWorkspace) CompiledResPath() string { return filepath.Join(w.Root, "resources.zip") }

// UnsignedAPKPath returns the linked, not yet aligned or signed APK.
func (w BuildWorkspace) UnsignedAPKPath() string { return filepath.Join(w.Root, "unsigned.apk") }

// AlignedAPKPath returns the zip-aligned unsigned APK.
func (w BuildWorkspace) AlignedAPKPath() string { return filepath.Join(w.Root, "aligned.apk") }

// ProtoAPKPath returns the proto-format link output the AAB path starts from.
func (w BuildWorkspace) ProtoAPKPath() string { return filepath.Join(w.Root, "proto.apk") }

// BundleModuleDir returns the directory the base bundle module is assembled in.
func (w BuildWorkspace) BundleModuleDir() string { return filepath.Join(w.Root, "base_module") }

// BundleZipPath returns the zipped base module consumed by bundletool.
func (w BuildWorkspace) BundleZipPath() string { return filepath.Join(w.Root, "base.zip") }

// UnsignedAABPath returns the bundletool output prior to jarsigner.
func (w BuildWorkspace) UnsignedAABPath() string { return filepath.Join(w.Root, "unsigned.aab") }

// DexPath returns the d8 output dex file.
func (w BuildWorkspace) DexPath() string { return filepath.Join(w.Root, "classes.dex") }

// Remove deletes the workspace tree.
func (w BuildWorkspace) Remove() error {
	return os.RemoveAll(w.Root)
}
