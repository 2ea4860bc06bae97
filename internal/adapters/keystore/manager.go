// Package keystore manages the persistent signing identity.
package keystore

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rogpeppe/go-internal/lockedfile"
	"go.trai.ch/zerr"
	"go.webdroid.dev/webdroid/internal/adapters/config"
	"go.webdroid.dev/webdroid/internal/core/domain"
	"go.webdroid.dev/webdroid/internal/core/ports"
)

const (
	keyAlg      = "RSA"
	keySize     = "2048"
	keyValidity = "10000"
	debugDName  = "CN=Android Debug,O=Android,C=US"
)

// Manager creates the debug keystore on first use and validates it on every
// build. Concurrent builds sharing a keystore path are serialized through a
// file lock so only one process generates the key.
type Manager struct {
	cfg     *config.Config
	runner  ports.ToolRunner
	logger  ports.Logger
	keytool string
}

// NewManager creates a Manager that shells out to the given keytool binary.
func NewManager(cfg *config.Config, runner ports.ToolRunner, logger ports.Logger, keytool string) *Manager {
	return &Manager{cfg: cfg, runner: runner, logger: logger, keytool: keytool}
}

var _ ports.KeystoreProvider = (*Manager)(nil)

// Obtain returns a usable signing identity at path, generating the keystore
// when it does not exist yet.
func (m *Manager) Obtain(ctx context.Context, path, alias string) (domain.KeystoreRecord, error) {
	record := domain.KeystoreRecord{
		Path:      path,
		Alias:     alias,
		StorePass: m.cfg.StorePass,
		KeyPass:   m.cfg.KeyPass,
	}
	if record.StorePass == "" {
		pass, err := randomPassword()
		if err != nil {
			return record, err
		}
		record.StorePass = pass
	}
	if record.KeyPass == "" {
		record.KeyPass = record.StorePass
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return record, zerr.With(zerr.Wrap(domain.ErrSigningIdentity, err.Error()), "path", path)
	}

	mu := lockedfile.MutexAt(path + ".lock")
	unlock, err := mu.Lock()
	if err != nil {
		return record, zerr.With(zerr.Wrap(domain.ErrSigningIdentity, err.Error()), "path", path)
	}
	defer unlock()

	// A leftover temp file means a previous generation died mid-write.
	if _, err := os.Stat(path + ".tmp"); err == nil {
		return record, zerr.With(
			zerr.Wrap(domain.ErrSigningIdentity, "found partial keystore from an interrupted run, remove it and retry"),
			"path", path+".tmp")
	}

	if _, err := os.Stat(path); err == nil {
		if err := m.validate(ctx, record); err != nil {
			return record, err
		}
		return record, nil
	}

	if err := m.generate(ctx, &record); err != nil {
		return record, err
	}
	m.logger.Info(fmt.Sprintf("generated debug keystore at %s", path))
	return record, nil
}

// validate checks that the alias exists and the store password opens the file.
func (m *Manager) validate(ctx context.Context, record domain.KeystoreRecord) error {
	inv, err := m.runner.Run(ctx, filepath.Dir(record.Path), m.keytool,
		"-list",
		"-keystore", record.Path,
		"-alias", record.Alias,
		"-storepass", record.StorePass,
	)
	if err != nil {
		err := zerr.With(
			zerr.Wrap(domain.ErrSigningIdentity, "existing keystore rejected the configured alias or password"),
			"path", record.Path)
		err = zerr.With(err, "alias", record.Alias)
		return zerr.With(err, "stderr", inv.Stderr)
	}
	return nil
}

// generate writes the keystore to a temp path and renames it into place so a
// crash mid-generation never leaves a half-written keystore behind.
func (m *Manager) generate(ctx context.Context, record *domain.KeystoreRecord) error {
	tmp := record.Path + ".tmp"
	inv, err := m.runner.Run(ctx, filepath.Dir(record.Path), m.keytool,
		"-genkey",
		"-keystore", tmp,
		"-alias", record.Alias,
		"-keyalg", keyAlg,
		"-keysize", keySize,
		"-validity", keyValidity,
		"-storepass", record.StorePass,
		"-keypass", record.KeyPass,
		"-dname", debugDName,
	)
	if err != nil {
		_ = os.Remove(tmp)
		err := zerr.With(
			zerr.Wrap(domain.ErrSigningIdentity, "keystore generation failed"),
			"path", record.Path)
		return zerr.With(err, "stderr", inv.Stderr)
	}

	if err := os.Chmod(tmp, domain.PrivateFilePerm); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(domain.ErrSigningIdentity, err.Error()), "path", tmp)
	}
	if err := os.Rename(tmp, record.Path); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(domain.ErrSigningIdentity, err.Error()), "path", record.Path)
	}
	record.CreatedAt = time.Now()
	return nil
}

func randomPassword() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", zerr.Wrap(domain.ErrSigningIdentity, err.Error())
	}
	return hex.EncodeToString(buf), nil
}
