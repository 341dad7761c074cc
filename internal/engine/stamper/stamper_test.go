package stamper_test

import (
	"context"
	"testing"
	"time"

	"github.com/assetstamp/stamp/internal/adapters/telemetry"
	"github.com/assetstamp/stamp/internal/core/domain"
	"github.com/assetstamp/stamp/internal/core/ports/mocks"
	"github.com/assetstamp/stamp/internal/engine/stamper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestProject(t *testing.T, names ...string) *domain.Project {
	t.Helper()
	project := domain.NewProject()
	project.SetRoot("/site")
	for _, name := range names {
		unit := &domain.Unit{
			Name:   domain.NewInternedString(name),
			Inputs: []domain.InternedString{domain.NewInternedString("assets/" + name)},
		}
		require.NoError(t, project.AddUnit(unit))
	}
	return project
}

// tagFor returns the provider stub tag for a unit name.
func tagFor(name string) domain.VersionTag {
	return domain.VersionTag("000000000000000" + name[len(name)-1:])
}

func stubProvider(ctrl *gomock.Controller) *mocks.MockIdentityProvider {
	provider := mocks.NewMockIdentityProvider(ctrl)
	provider.EXPECT().
		IdentityOf(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ref domain.UnitRef) (domain.VersionTag, error) {
			return tagFor(ref.Unit.Name.String()), nil
		}).
		AnyTimes()
	return provider
}

func TestStamper_Stamp_NewUnits(t *testing.T) {
	ctrl := gomock.NewController(t)
	project := newTestProject(t, "unit-b", "unit-a")

	store := mocks.NewMockManifestStore(ctrl)
	store.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(2)

	var put []domain.Record
	store.EXPECT().
		Put(gomock.Any()).
		DoAndReturn(func(record domain.Record) error {
			put = append(put, record)
			return nil
		}).
		Times(2)

	s := stamper.NewStamper(stubProvider(ctrl), telemetry.NewNoOpTracer()).
		WithNow(func() time.Time { return fixedNow })

	results, err := s.Stamp(context.Background(), project, store, stamper.Options{})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Results come back sorted by unit name.
	assert.Equal(t, "unit-a", results[0].UnitName)
	assert.Equal(t, "unit-b", results[1].UnitName)
	for _, result := range results {
		assert.Equal(t, stamper.StatusStamped, result.Status)
		assert.Equal(t, tagFor(result.UnitName), result.Tag)
		assert.True(t, result.Previous.IsZero())
	}

	require.Len(t, put, 2)
	for _, record := range put {
		assert.Equal(t, fixedNow, record.StampedAt)
	}
}

func TestStamper_Stamp_Unchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	project := newTestProject(t, "unit-a")

	store := mocks.NewMockManifestStore(ctrl)
	store.EXPECT().Get("unit-a").Return(&domain.Record{
		UnitName: "unit-a",
		Tag:      tagFor("unit-a"),
	}, nil)
	// No Put: the manifest already holds the current tag.

	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	tracer.EXPECT().EmitPlan(gomock.Any(), []string{"unit-a"})
	tracer.EXPECT().Start(gomock.Any(), "stamp unit-a").Return(context.Background(), span)
	span.EXPECT().SetAttribute("tag", tagFor("unit-a").String())
	span.EXPECT().Cached()
	span.EXPECT().End()

	s := stamper.NewStamper(stubProvider(ctrl), tracer)

	results, err := s.Stamp(context.Background(), project, store, stamper.Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, stamper.StatusUnchanged, results[0].Status)
	assert.Equal(t, tagFor("unit-a"), results[0].Previous)
}

func TestStamper_Stamp_CheckMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	project := newTestProject(t, "unit-a")

	store := mocks.NewMockManifestStore(ctrl)
	store.EXPECT().Get("unit-a").Return(&domain.Record{
		UnitName: "unit-a",
		Tag:      domain.VersionTag("00000000000000ff"),
	}, nil)
	// Check mode never writes, even though the tag is stale.

	s := stamper.NewStamper(stubProvider(ctrl), telemetry.NewNoOpTracer())

	results, err := s.Stamp(context.Background(), project, store, stamper.Options{Check: true})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, stamper.StatusStamped, results[0].Status)
	assert.Equal(t, domain.VersionTag("00000000000000ff"), results[0].Previous)
}

func TestStamper_Stamp_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	project := newTestProject(t, "unit-bad", "unit-ok")

	provider := mocks.NewMockIdentityProvider(ctrl)
	provider.EXPECT().
		IdentityOf(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ref domain.UnitRef) (domain.VersionTag, error) {
			if ref.Unit.Name.String() == "unit-bad" {
				return "", domain.ErrInputNotFound
			}
			return tagFor(ref.Unit.Name.String()), nil
		}).
		Times(2)

	store := mocks.NewMockManifestStore(ctrl)
	store.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(2)
	store.EXPECT().Put(gomock.Any()).Return(nil)

	s := stamper.NewStamper(provider, telemetry.NewNoOpTracer())

	results, err := s.Stamp(context.Background(), project, store, stamper.Options{})
	require.ErrorIs(t, err, domain.ErrInputNotFound)

	// The healthy unit is still stamped.
	require.Len(t, results, 2)
	assert.Equal(t, stamper.StatusFailed, results[0].Status)
	assert.Equal(t, stamper.StatusStamped, results[1].Status)
}

func TestStamper_Stamp_Subset(t *testing.T) {
	ctrl := gomock.NewController(t)
	project := newTestProject(t, "unit-a", "unit-b")

	store := mocks.NewMockManifestStore(ctrl)
	store.EXPECT().Get("unit-b").Return(nil, nil)
	store.EXPECT().Put(gomock.Any()).Return(nil)

	s := stamper.NewStamper(stubProvider(ctrl), telemetry.NewNoOpTracer())

	results, err := s.Stamp(context.Background(), project, store, stamper.Options{Units: []string{"unit-b"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "unit-b", results[0].UnitName)
}

func TestStamper_Stamp_UnknownUnit(t *testing.T) {
	ctrl := gomock.NewController(t)
	project := newTestProject(t, "unit-a")

	store := mocks.NewMockManifestStore(ctrl)

	s := stamper.NewStamper(stubProvider(ctrl), telemetry.NewNoOpTracer())

	_, err := s.Stamp(context.Background(), project, store, stamper.Options{Units: []string{"ghost"}})
	require.ErrorIs(t, err, domain.ErrUnitNotFound)
}

func TestStamper_Stamp_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	project := newTestProject(t, "unit-a")

	store := mocks.NewMockManifestStore(ctrl)
	store.EXPECT().Get(gomock.Any()).Return(nil, nil).AnyTimes()

	provider := mocks.NewMockIdentityProvider(ctrl)
	provider.EXPECT().
		IdentityOf(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.UnitRef) (domain.VersionTag, error) {
			return "", ctx.Err()
		}).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := stamper.NewStamper(provider, telemetry.NewNoOpTracer())

	_, err := s.Stamp(ctx, project, store, stamper.Options{})
	require.ErrorIs(t, err, context.Canceled)
}
