package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.webdroid.dev/webdroid/internal/adapters/logger"
	"go.webdroid.dev/webdroid/internal/adapters/telemetry"
)

// syncWriter serializes writes from the span processor and the test.
type syncWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *syncWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

func TestStageTracer_LogsCompletedSpans(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := &syncWriter{}
	lg := logger.New()
	lg.SetOutput(out)

	tracer := telemetry.NewStageTracer(lg)
	_, span := tracer.Start(context.Background(), "Compiled")
	span.SetAttribute("tool", "aapt2")
	span.End()
	require.NoError(t, tracer.Shutdown(context.Background()))

	assert.Contains(t, out.String(), "Compiled completed in")
}

func TestStageTracer_LogsFailedSpans(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := &syncWriter{}
	lg := logger.New()
	lg.SetOutput(out)

	tracer := telemetry.NewStageTracer(lg)
	_, span := tracer.Start(context.Background(), "Signed")
	span.RecordError(errors.New("keystore rejected"))
	span.End()
	require.NoError(t, tracer.Shutdown(context.Background()))

	assert.Contains(t, out.String(), "Signed failed after")
}

func TestStageTracer_NestedSpans(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := &syncWriter{}
	lg := logger.New()
	lg.SetOutput(out)

	tracer := telemetry.NewStageTracer(lg)
	ctx, parent := tracer.Start(context.Background(), "Packaged")
	_, child := tracer.Start(ctx, "Dexed")
	child.End()
	parent.End()
	require.NoError(t, tracer.Shutdown(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Dexed completed in")
	assert.Contains(t, output, "Packaged completed in")
}
