package domain_test

import (
	"testing"

	"github.com/assetstamp/stamp/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionedURL(t *testing.T) {
	tag := domain.VersionTag("00000000deadbeef")

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "plain path",
			path: "a/b/c.js",
			want: "a/b/c.js?version=00000000deadbeef",
		},
		{
			name: "existing query string",
			path: "a/b/c.js?foo=1",
			want: "a/b/c.js?foo=1&version=00000000deadbeef",
		},
		{
			name: "existing version parameter is replaced",
			path: "a/b/c.js?version=0123456789abcdef",
			want: "a/b/c.js?version=00000000deadbeef",
		},
		{
			name: "version parameter replaced among others",
			path: "a/b/c.js?foo=1&version=old&bar=2",
			want: "a/b/c.js?foo=1&version=00000000deadbeef&bar=2",
		},
		{
			name: "trailing question mark",
			path: "a/b/c.js?",
			want: "a/b/c.js?version=00000000deadbeef",
		},
		{
			name: "fragment stays last",
			path: "styles/site.css#section",
			want: "styles/site.css?version=00000000deadbeef#section",
		},
		{
			name: "query and fragment",
			path: "app.js?foo=1#top",
			want: "app.js?foo=1&version=00000000deadbeef#top",
		},
		{
			name: "absolute url",
			path: "https://cdn.example.com/lib/app.js",
			want: "https://cdn.example.com/lib/app.js?version=00000000deadbeef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.VersionedURL(tt.path, tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionedURL_EmptyPath(t *testing.T) {
	_, err := domain.VersionedURL("", "00000000deadbeef")
	require.ErrorIs(t, err, domain.ErrEmptyAssetPath)
}

func TestVersionedURL_ZeroTag(t *testing.T) {
	_, err := domain.VersionedURL("a.js", "")
	require.ErrorIs(t, err, domain.ErrInvalidVersionTag)
}

func TestVersionedURL_SameTagForAllAssetsOfAUnit(t *testing.T) {
	// Granularity is the unit: every asset stamped with the unit's tag gets
	// the same token regardless of file type.
	tag := domain.NewVersionTag(0xcafe)

	js, err := domain.VersionedURL("lib/foo.js", tag)
	require.NoError(t, err)
	css, err := domain.VersionedURL("lib/foo.css", tag)
	require.NoError(t, err)

	assert.Equal(t, "lib/foo.js?version=000000000000cafe", js)
	assert.Equal(t, "lib/foo.css?version=000000000000cafe", css)
}
