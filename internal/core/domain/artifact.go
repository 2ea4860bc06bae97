package domain

import "time"

// ToolInvocation records one external build-tool call. It exists purely for
// diagnostics: on failure the pipeline attaches it to the surfaced error, on
// success it is dropped with the workspace.
type ToolInvocation struct {
	// Tool is the command that was (or could not be) spawned.
	Tool string
	// Args are the arguments the tool was invoked with.
	Args []string
	// Dir is the working directory of the invocation.
	Dir string
	// ExitCode is the tool's exit status; -1 if it never ran.
	ExitCode int
	// Stdout and Stderr hold the captured output streams.
	Stdout string
	Stderr string
	// Duration is the wall time from spawn to exit.
	Duration time.Duration
	// Attempts counts spawn attempts, including transient-failure retries.
	Attempts int
}

// BuildArtifact is one verified output file. It is only constructed after the
// verifier succeeds; an unverified file on disk is never reported as one.
type BuildArtifact struct {
	// Path is the absolute artifact path.
	Path string
	// Kind is OutputAPK or OutputAAB.
	Kind OutputKind
	// Size is the artifact byte size.
	Size int64
	// Verified is true once the structural and signature checks passed.
	Verified bool
}
