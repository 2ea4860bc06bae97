package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.webdroid.dev/webdroid/internal/app"
	"go.webdroid.dev/webdroid/internal/core/ports/mocks"
)

func TestRun_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: &app.App{}, Logger: mockLogger}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "init failed")
}

func TestRun_UnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any())

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: &app.App{}, Logger: mockLogger}, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"no-such-command"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
