package keystore_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.webdroid.dev/webdroid/internal/adapters/config"
	"go.webdroid.dev/webdroid/internal/adapters/keystore"
	"go.webdroid.dev/webdroid/internal/adapters/logger"
	"go.webdroid.dev/webdroid/internal/core/domain"
	"go.webdroid.dev/webdroid/internal/core/ports"
	"go.webdroid.dev/webdroid/internal/core/ports/mocks"
)

func discardLogger(t *testing.T) ports.Logger {
	t.Helper()
	lg := logger.New()
	lg.SetOutput(io.Discard)
	return lg
}

func newManager(t *testing.T, runner ports.ToolRunner) *keystore.Manager {
	t.Helper()
	cfg := &config.Config{StorePass: "android", KeyPass: "android"}
	return keystore.NewManager(cfg, runner, discardLogger(t), "keytool")
}

func TestObtain_GeneratesMissingKeystore(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockToolRunner(ctrl)

	path := filepath.Join(t.TempDir(), "debug.keystore")
	runner.EXPECT().
		Run(gomock.Any(), filepath.Dir(path), "keytool", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, args ...string) (domain.ToolInvocation, error) {
			require.Equal(t, "-genkey", args[0])
			assert.Contains(t, args, path+".tmp")
			assert.Contains(t, args, "CN=Android Debug,O=Android,C=US")
			require.NoError(t, os.WriteFile(path+".tmp", []byte("JKS"), 0o644))
			return domain.ToolInvocation{Tool: "keytool", ExitCode: 0}, nil
		})

	record, err := newManager(t, runner).Obtain(context.Background(), path, "androiddebugkey")
	require.NoError(t, err)

	assert.Equal(t, "androiddebugkey", record.Alias)
	assert.Equal(t, "android", record.StorePass)
	assert.FileExists(t, path)
	assert.NoFileExists(t, path+".tmp")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestObtain_ValidatesExistingKeystore(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockToolRunner(ctrl)

	path := filepath.Join(t.TempDir(), "debug.keystore")
	require.NoError(t, os.WriteFile(path, []byte("JKS"), 0o600))

	runner.EXPECT().
		Run(gomock.Any(), filepath.Dir(path), "keytool", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, args ...string) (domain.ToolInvocation, error) {
			require.Equal(t, "-list", args[0])
			return domain.ToolInvocation{Tool: "keytool", ExitCode: 0}, nil
		})

	_, err := newManager(t, runner).Obtain(context.Background(), path, "androiddebugkey")
	require.NoError(t, err)
}

func TestObtain_RejectsBadAlias(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockToolRunner(ctrl)

	path := filepath.Join(t.TempDir(), "debug.keystore")
	require.NoError(t, os.WriteFile(path, []byte("JKS"), 0o600))

	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ToolInvocation{ExitCode: 1, Stderr: "Alias <release> does not exist"}, domain.ErrStageFailed)

	_, err := newManager(t, runner).Obtain(context.Background(), path, "release")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSigningIdentity))
}

func TestObtain_RefusesStaleTempFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockToolRunner(ctrl)

	path := filepath.Join(t.TempDir(), "debug.keystore")
	require.NoError(t, os.WriteFile(path+".tmp", []byte("partial"), 0o600))

	_, err := newManager(t, runner).Obtain(context.Background(), path, "androiddebugkey")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSigningIdentity))
}

func TestObtain_GenerationFailureCleansUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockToolRunner(ctrl)

	path := filepath.Join(t.TempDir(), "debug.keystore")
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, _ ...string) (domain.ToolInvocation, error) {
			require.NoError(t, os.WriteFile(path+".tmp", []byte("partial"), 0o644))
			return domain.ToolInvocation{ExitCode: 1}, domain.ErrStageFailed
		})

	_, err := newManager(t, runner).Obtain(context.Background(), path, "androiddebugkey")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSigningIdentity))
	assert.NoFileExists(t, path+".tmp")
	assert.NoFileExists(t, path)
}

func TestObtain_RandomPasswordWhenUnconfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockToolRunner(ctrl)

	path := filepath.Join(t.TempDir(), "debug.keystore")
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, _ ...string) (domain.ToolInvocation, error) {
			require.NoError(t, os.WriteFile(path+".tmp", []byte("JKS"), 0o600))
			return domain.ToolInvocation{ExitCode: 0}, nil
		})

	mgr := keystore.NewManager(&config.Config{}, runner, discardLogger(t), "keytool")
	record, err := mgr.Obtain(context.Background(), path, "androiddebugkey")
	require.NoError(t, err)

	assert.Len(t, record.StorePass, 32, "16 random bytes hex encoded")
	assert.Equal(t, record.StorePass, record.KeyPass)
}
