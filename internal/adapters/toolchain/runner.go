package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"go.trai.ch/zerr"
	"go.webdroid.dev/webdroid/internal/adapters/config"
	"go.webdroid.dev/webdroid/internal/core/domain"
	"go.webdroid.dev/webdroid/internal/core/ports"
)

const (
	maxAttempts  = 3
	retryBackoff = 250 * time.Millisecond
)

// Runner executes external tools with captured output and a per-invocation
// timeout. Spawn failures other than a missing binary and timed-out runs are
// retried with backoff; a non-zero exit is never retried.
type Runner struct {
	timeout time.Duration
	logger  ports.Logger
}

// NewRunner creates a Runner with the configured stage timeout.
func NewRunner(cfg *config.Config, logger ports.Logger) *Runner {
	return &Runner{timeout: cfg.StageTimeout, logger: logger}
}

var _ ports.ToolRunner = (*Runner)(nil)

// Run executes tool with args in dir and returns the invocation record.
func (r *Runner) Run(ctx context.Context, dir, tool string, args ...string) (domain.ToolInvocation, error) {
	inv := domain.ToolInvocation{Tool: tool, Args: args, Dir: dir, ExitCode: -1}

	backoff := retryBackoff
	start := time.Now()
	for inv.Attempts = 1; ; inv.Attempts++ {
		exitCode, stdout, stderr, timedOut, err := r.runOnce(ctx, dir, tool, args)
		inv.ExitCode = exitCode
		inv.Stdout = stdout
		inv.Stderr = stderr
		inv.Duration = time.Since(start)

		if err == nil {
			return inv, nil
		}

		if errors.Is(err, exec.ErrNotFound) {
			return inv, zerr.With(zerr.Wrap(domain.ErrToolUnavailable, err.Error()), "tool", tool)
		}

		// A killed, timed-out process also surfaces as an ExitError, so the
		// timeout check must come first: timeouts are transient, a tool that
		// ran to completion and exited non-zero is not.
		var exitErr *exec.ExitError
		if !timedOut && errors.As(err, &exitErr) {
			err = zerr.With(zerr.Wrap(domain.ErrStageFailed, "tool exited with an error"), "tool", tool)
			err = zerr.With(err, "exit_code", inv.ExitCode)
			return inv, zerr.With(err, "stderr", inv.Stderr)
		}

		// Spawn failure or timeout, possibly transient.
		if inv.Attempts >= maxAttempts || ctx.Err() != nil {
			err = zerr.With(zerr.Wrap(domain.ErrToolUnavailable, err.Error()), "tool", tool)
			return inv, zerr.With(err, "attempts", inv.Attempts)
		}
		r.logger.Warn(fmt.Sprintf("retrying %s after transient failure (attempt %d)", tool, inv.Attempts))
		time.Sleep(backoff)
		backoff *= 2
	}
}

func (r *Runner) runOnce(ctx context.Context, dir, tool string, args []string) (int, string, string, bool, error) {
	runCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, tool, args...) //nolint:gosec // tool paths come from the locator
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	exitCode := -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}
	timedOut := err != nil && runCtx.Err() != nil && ctx.Err() == nil
	if timedOut {
		err = zerr.Wrap(err, "tool timed out")
	}
	return exitCode, stdout.String(), stderr.String(), timedOut, err
}
