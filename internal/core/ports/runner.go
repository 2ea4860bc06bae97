// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.webdroid.dev/webdroid/internal/core/domain"
)

// ToolRunner abstracts one external build-tool process invocation so the
// pipeline can be exercised without the Android toolchain present.
//
// Implementations must distinguish the two failure classes of the error
// taxonomy: a tool that could not be spawned surfaces
// domain.ErrToolUnavailable (after the bounded transient retry), a tool that
// ran and exited non-zero surfaces domain.ErrStageFailed. The returned
// invocation always carries whatever diagnostics were captured.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ToolRunner interface {
	// Run spawns tool with args in dir, waits for it to exit, and returns the
	// invocation record. Cancelling ctx terminates the running process.
	Run(ctx context.Context, dir, tool string, args ...string) (domain.ToolInvocation, error)
}
