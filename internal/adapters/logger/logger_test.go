package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
	"go.webdroid.dev/webdroid/internal/adapters/logger"
	"go.webdroid.dev/webdroid/internal/core/ports"
)

func newTestLogger(t *testing.T) (ports.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String(), "nil error must not log")
}

func TestLogger_Error_Golden(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        errors.New("permission denied"),
			goldenName: "error_simple",
		},
		{
			name: "two level zerr chain",
			err: zerr.Wrap(
				errors.New("exit status 1"),
				"failed to link resources",
			),
			goldenName: "error_chain_two",
		},
		{
			name: "three level zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("no such file or directory"),
					"failed to spawn aapt2",
				),
				"build failed",
			),
			goldenName: "error_chain_three",
		},
		{
			name: "metadata on main error",
			err: zerr.With(
				zerr.New("keystore alias not found"),
				"alias", "webdroid",
			),
			goldenName: "error_metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_InfoWarn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("scaffolding workspace")
	lg.Warn("icon not supplied, using platform default")

	assert.Contains(t, buf.String(), "scaffolding workspace")
	assert.Contains(t, buf.String(), "! icon not supplied, using platform default")
}

func TestLogger_JSONMode(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("aligning package")
	assert.Contains(t, buf.String(), `"msg":"aligning package"`)

	buf.Reset()
	lg.Error(zerr.New("verification failed"))
	assert.Contains(t, buf.String(), `"operation failed"`)
	assert.Contains(t, buf.String(), "verification failed")
}
