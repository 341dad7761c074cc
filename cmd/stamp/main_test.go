package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/assetstamp/stamp/internal/adapters/telemetry"
	"github.com/assetstamp/stamp/internal/app"
	"github.com/assetstamp/stamp/internal/core/domain"
	"github.com/assetstamp/stamp/internal/core/ports"
	"github.com/assetstamp/stamp/internal/core/ports/mocks"
	"github.com/assetstamp/stamp/internal/engine/stamper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testComponents struct {
	loader   *mocks.MockConfigLoader
	store    *mocks.MockManifestStore
	provider *mocks.MockIdentityProvider
	logger   *mocks.MockLogger
	app      *app.App
}

func newTestComponents(t *testing.T) *testComponents {
	t.Helper()
	ctrl := gomock.NewController(t)

	c := &testComponents{
		loader:   mocks.NewMockConfigLoader(ctrl),
		store:    mocks.NewMockManifestStore(ctrl),
		provider: mocks.NewMockIdentityProvider(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	s := stamper.NewStamper(c.provider, telemetry.NewNoOpTracer())
	factory := func(string) ports.ManifestStore { return c.store }
	c.app = app.New(c.loader, factory, s, mocks.NewMockIdentityProvider(ctrl), mocks.NewMockWatcher(ctrl), c.logger)
	return c
}

func (c *testComponents) provide(context.Context) (*app.Components, func(), error) {
	return &app.Components{App: c.app, Logger: c.logger}, func() {}, nil
}

func TestRun_Success(t *testing.T) {
	c := newTestComponents(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, c.provide)
	assert.Equal(t, 0, exitCode)
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_ExecutionError(t *testing.T) {
	c := newTestComponents(t)
	c.loader.EXPECT().DiscoverRoot(".").Return("", domain.ErrConfigNotFound)
	c.logger.EXPECT().Error(gomock.Any())

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"clean"}, stderr, c.provide)
	assert.Equal(t, 1, exitCode)
}

func TestRun_CheckModeStale(t *testing.T) {
	c := newTestComponents(t)

	project := domain.NewProject()
	project.SetRoot("/site")
	require.NoError(t, project.AddUnit(&domain.Unit{
		Name:   domain.NewInternedString("web"),
		Inputs: []domain.InternedString{domain.NewInternedString("assets")},
	}))

	c.loader.EXPECT().Load(".").Return(project, nil)
	c.store.EXPECT().Get("web").Return(nil, nil)
	c.provider.EXPECT().IdentityOf(gomock.Any(), gomock.Any()).Return(domain.VersionTag("00000000deadbeef"), nil)
	// No logger.Error: the stale exit is already explained by the rendered results.

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"resolve", "--check"}, stderr, c.provide)
	assert.Equal(t, 1, exitCode)
}
