package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wl/internal/adapters/telemetry"
	"go.trai.ch/wl/internal/app"
	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/wl/internal/core/ports/mocks"
	"go.trai.ch/wl/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

func newTestComponents(ctrl *gomock.Controller) (*app.Components, *mocks.MockConfigLoader, *mocks.MockLogger) {
	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	events := mocks.NewMockEventLog(ctrl)
	sched := scheduler.NewScheduler(
		mocks.NewMockRuntimeRegistry(ctrl),
		mocks.NewMockSourceResolver(ctrl),
		mocks.NewMockProcessRunner(ctrl),
		events,
		telemetry.NewNoOpTracer(),
	)
	application := app.New(loader, mocks.NewMockRuntimeProber(ctrl), sched, mocks.NewMockSampleWriter(ctrl), logger, events)
	return &app.Components{App: application, Logger: logger}, loader, logger
}

func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, _, _ := newTestComponents(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "wl version")
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, loader, logger := newTestComponents(ctrl)

	loader.EXPECT().Load("broken.yaml").Return(nil, domain.ErrNoSteps)
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrNoSteps)
	})

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() { cleaned = true }, nil
	}

	exitCode := run(context.Background(), []string{"gen", "-c", "broken.yaml"}, new(bytes.Buffer), new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
	assert.True(t, cleaned)
}

func TestRun_UnknownLogFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, _, logger := newTestComponents(ctrl)
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, app.ErrUnknownLogFormat)
	})

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"--log-format", "xml", "list"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

func TestRun_AppliesOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, _, _ := newTestComponents(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	applied := false
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer), provider, func(*app.App) {
		applied = true
	})

	assert.Equal(t, 0, exitCode)
	assert.True(t, applied)
}
