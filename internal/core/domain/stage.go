package domain

// Stage is one state of the build pipeline. Transitions are strictly
// sequential; a failure at any stage moves the build to StageFailed carrying
// the originating stage name.
type Stage string

const (
	// StageInit is the initial state before any work happens.
	StageInit Stage = "Init"
	// StageScaffolded means the workspace tree and entry-point stub exist.
	StageScaffolded Stage = "Scaffolded"
	// StageAssetsEmbedded means the entry file and icon buckets are in place.
	StageAssetsEmbedded Stage = "AssetsEmbedded"
	// StageManifestWritten means AndroidManifest.xml has been rendered.
	StageManifestWritten Stage = "ManifestWritten"
	// StageResourcesCompiled means aapt2 compile succeeded.
	StageResourcesCompiled Stage = "ResourcesCompiled"
	// StagePackaged means the unsigned package(s) have been assembled.
	StagePackaged Stage = "Packaged"
	// StageAligned means the APK has been zip-aligned.
	StageAligned Stage = "Aligned"
	// StageSigned means all requested packages have been signed.
	StageSigned Stage = "Signed"
	// StageVerified means all artifacts passed verification.
	StageVerified Stage = "Verified"
	// StageDone is the successful terminal state.
	StageDone Stage = "Done"
	// StageFailed is the failure terminal state.
	StageFailed Stage = "Failed"
)

// Terminal reports whether the stage is a terminal state.
func (s Stage) Terminal() bool {
	return s == StageDone || s == StageFailed
}

// Order lists the non-terminal stages in transition order.
var Order = []Stage{
	StageInit,
	StageScaffolded,
	StageAssetsEmbedded,
	StageManifestWritten,
	StageResourcesCompiled,
	StagePackaged,
	StageAligned,
	StageSigned,
	StageVerified,
}
