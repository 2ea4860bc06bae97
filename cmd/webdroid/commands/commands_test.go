package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.webdroid.dev/webdroid/cmd/webdroid/commands"
	"go.webdroid.dev/webdroid/internal/app"
)

type mockApp struct {
	buildFunc   func(ctx context.Context, opts app.BuildOptions) error
	inspectFunc func(ctx context.Context) app.KeystoreInfo
	initFunc    func(ctx context.Context) (app.KeystoreInfo, error)
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) InspectKeystore(ctx context.Context) app.KeystoreInfo {
	if m.inspectFunc != nil {
		return m.inspectFunc(ctx)
	}
	return app.KeystoreInfo{}
}

func (m *mockApp) InitKeystore(ctx context.Context) (app.KeystoreInfo, error) {
	if m.initFunc != nil {
		return m.initFunc(ctx)
	}
	return app.KeystoreInfo{}, nil
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.BuildOptions
		called := false

		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"build", "index.html",
			"--name", "My App",
			"--package", "dev.web.myapp",
			"--version-name", "2.0",
			"--version-code", "5",
			"--icon", "logo.png",
			"--output", "both",
			"--out", "dist",
			"--keep-workspace",
			"--watch",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "index.html", captured.EntryFile)
		assert.Equal(t, "My App", captured.AppName)
		assert.Equal(t, "dev.web.myapp", captured.PackageID)
		assert.Equal(t, "2.0", captured.VersionName)
		assert.Equal(t, 5, captured.VersionCode)
		assert.Equal(t, "logo.png", captured.IconFile)
		assert.Equal(t, "both", captured.Output)
		assert.Equal(t, "dist", captured.OutputDir)
		assert.True(t, captured.KeepWorkspace)
		assert.True(t, captured.Watch)
	})

	t.Run("requires the entry file argument", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ app.BuildOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"build"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})

	t.Run("version code defaults to one", func(t *testing.T) {
		var captured app.BuildOptions
		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build", "index.html"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, 1, captured.VersionCode)
	})

	t.Run("explicit zero version code is passed through", func(t *testing.T) {
		var captured app.BuildOptions
		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build", "index.html", "--version-code", "0"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, 0, captured.VersionCode)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ app.BuildOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build", "index.html"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Keystore(t *testing.T) {
	t.Run("inspect prints identity", func(t *testing.T) {
		mock := &mockApp{
			inspectFunc: func(_ context.Context) app.KeystoreInfo {
				return app.KeystoreInfo{Path: "/keys/debug.keystore", Alias: "androiddebugkey", Exists: true}
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"keystore", "inspect"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "/keys/debug.keystore")
		assert.Contains(t, buf.String(), "androiddebugkey")
		assert.Contains(t, buf.String(), "present")
	})

	t.Run("init reports created identity", func(t *testing.T) {
		mock := &mockApp{
			initFunc: func(_ context.Context) (app.KeystoreInfo, error) {
				return app.KeystoreInfo{Path: "/keys/debug.keystore", Alias: "androiddebugkey", Exists: true}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"keystore", "init"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "Keystore ready")
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "webdroid version")
}
