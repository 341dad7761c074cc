package buildinfo_test

import (
	"context"
	"runtime/debug"
	"testing"

	"github.com/assetstamp/stamp/internal/adapters/buildinfo"
	"github.com/assetstamp/stamp/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func infoReader(info *debug.BuildInfo) func() (*debug.BuildInfo, bool) {
	return func() (*debug.BuildInfo, bool) {
		return info, info != nil
	}
}

func vcsInfo(revision, vcsTime, modified string) *debug.BuildInfo {
	return &debug.BuildInfo{
		Main: debug.Module{Path: "example.com/site"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: revision},
			{Key: "vcs.time", Value: vcsTime},
			{Key: "vcs.modified", Value: modified},
		},
	}
}

func TestProvider_MainModule(t *testing.T) {
	info := vcsInfo("abc123", "2026-01-02T03:04:05Z", "false")
	provider := buildinfo.NewProviderWithReader(infoReader(info))

	tag, err := provider.IdentityOf(context.Background(), domain.UnitRef{})
	require.NoError(t, err)
	assert.Len(t, tag.String(), domain.TagLength)

	// An explicit reference to the main module path resolves identically.
	byPath, err := provider.IdentityOf(context.Background(), domain.UnitRef{Module: "example.com/site"})
	require.NoError(t, err)
	assert.Equal(t, tag, byPath)
}

func TestProvider_RevisionSensitivity(t *testing.T) {
	background := context.Background()

	a, err := buildinfo.NewProviderWithReader(infoReader(vcsInfo("abc123", "", ""))).
		IdentityOf(background, domain.UnitRef{})
	require.NoError(t, err)

	b, err := buildinfo.NewProviderWithReader(infoReader(vcsInfo("def456", "", ""))).
		IdentityOf(background, domain.UnitRef{})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestProvider_DirtyWorktree(t *testing.T) {
	background := context.Background()

	clean, err := buildinfo.NewProviderWithReader(infoReader(vcsInfo("abc123", "", "false"))).
		IdentityOf(background, domain.UnitRef{})
	require.NoError(t, err)

	dirty, err := buildinfo.NewProviderWithReader(infoReader(vcsInfo("abc123", "", "true"))).
		IdentityOf(background, domain.UnitRef{})
	require.NoError(t, err)

	assert.NotEqual(t, clean, dirty)
}

func TestProvider_NoVCSMetadata(t *testing.T) {
	info := &debug.BuildInfo{Main: debug.Module{Path: "example.com/site"}}
	provider := buildinfo.NewProviderWithReader(infoReader(info))

	_, err := provider.IdentityOf(context.Background(), domain.UnitRef{})
	require.ErrorIs(t, err, domain.ErrUnitNotResolvable)
}

func TestProvider_NoBuildInfo(t *testing.T) {
	provider := buildinfo.NewProviderWithReader(infoReader(nil))

	_, err := provider.IdentityOf(context.Background(), domain.UnitRef{})
	require.ErrorIs(t, err, domain.ErrUnitNotResolvable)
}

func TestProvider_Dependency(t *testing.T) {
	info := vcsInfo("abc123", "", "false")
	info.Deps = []*debug.Module{
		{Path: "example.com/widgets", Version: "v1.2.3", Sum: "h1:deadbeef="},
		{Path: "example.com/nosum", Version: "v0.1.0"},
		{
			Path:    "example.com/replaced",
			Version: "v2.0.0",
			Replace: &debug.Module{Path: "example.com/fork", Version: "v2.0.1", Sum: "h1:cafe="},
		},
	}
	provider := buildinfo.NewProviderWithReader(infoReader(info))
	background := context.Background()

	tag, err := provider.IdentityOf(background, domain.UnitRef{Module: "example.com/widgets"})
	require.NoError(t, err)
	assert.Len(t, tag.String(), domain.TagLength)

	// Replaced modules hash the replacement.
	replaced, err := provider.IdentityOf(background, domain.UnitRef{Module: "example.com/replaced"})
	require.NoError(t, err)
	assert.NotEqual(t, tag, replaced)

	_, err = provider.IdentityOf(background, domain.UnitRef{Module: "example.com/nosum"})
	require.ErrorIs(t, err, domain.ErrUnitNotResolvable)

	_, err = provider.IdentityOf(background, domain.UnitRef{Module: "example.com/unknown"})
	require.ErrorIs(t, err, domain.ErrUnitNotFound)
}

func TestProvider_CanceledContext(t *testing.T) {
	provider := buildinfo.NewProviderWithReader(infoReader(vcsInfo("abc123", "", "false")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.IdentityOf(ctx, domain.UnitRef{})
	require.ErrorIs(t, err, context.Canceled)
}
