package ports

import (
	"context"

	"go.webdroid.dev/webdroid/internal/core/domain"
)

// KeystoreProvider manages the persistent signing identity. Obtainment is
// serialized per keystore path; an existing keystore is never overwritten.
//
//go:generate mockgen -source=pipeline.go -destination=mocks/mock_pipeline.go -package=mocks
type KeystoreProvider interface {
	// Obtain loads the keystore at path, creating it on first use. The alias
	// is validated against the store; a mismatch, a corrupt store, or an
	// interrupted generation surfaces domain.ErrSigningIdentity.
	Obtain(ctx context.Context, path, alias string) (domain.KeystoreRecord, error)
}

// Scaffolder materializes the Android project skeleton for one build.
type Scaffolder interface {
	// Scaffold creates the workspace tree and the entry-point stub. It fails
	// with domain.ErrScaffoldConflict if the workspace path already exists
	// and is not empty.
	Scaffold(spec domain.ProjectSpec) (domain.BuildWorkspace, error)
}

// AssetEmbedder copies the web assets into a scaffolded workspace.
type AssetEmbedder interface {
	// Embed copies the entry file verbatim into the asset directory and, if
	// an icon is supplied, fills every density bucket. Unusable inputs fail
	// with domain.ErrAssetRejected before any native tool is invoked.
	Embed(ctx context.Context, spec domain.ProjectSpec, ws domain.BuildWorkspace) error
}

// ManifestWriter renders the Android manifest.
type ManifestWriter interface {
	// Render produces the manifest bytes. It is a pure function of the spec:
	// identical specs yield byte-identical output.
	Render(spec domain.ProjectSpec) ([]byte, error)

	// Write renders the manifest into the workspace.
	Write(spec domain.ProjectSpec, ws domain.BuildWorkspace) (string, error)
}

// Verifier performs the final structural and signature check on an artifact.
type Verifier interface {
	// Verify confirms path is a well-formed package of the given kind and
	// that its signature verifies. Only a passing check produces an artifact.
	Verify(ctx context.Context, path string, kind domain.OutputKind, tc domain.Toolchain) (domain.BuildArtifact, error)
}
