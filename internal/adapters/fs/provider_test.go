package fs_test

import (
	"context"
	"testing"

	"github.com/assetstamp/stamp/internal/adapters/fs"
	"github.com/assetstamp/stamp/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentProvider_IdentityOf(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"app.js": "x"})

	provider := fs.NewContentProvider(newTestHasher())
	unit := testUnit("app.js")

	tag, err := provider.IdentityOf(context.Background(), domain.UnitRef{Unit: unit, Root: root})
	require.NoError(t, err)

	want, err := newTestHasher().ComputeUnitHash(unit, root)
	require.NoError(t, err)
	assert.Equal(t, want, tag)
}

func TestContentProvider_NoUnit(t *testing.T) {
	provider := fs.NewContentProvider(newTestHasher())

	_, err := provider.IdentityOf(context.Background(), domain.UnitRef{Root: t.TempDir()})
	require.ErrorIs(t, err, domain.ErrUnitNotResolvable)
}

func TestContentProvider_CanceledContext(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"app.js": "x"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := fs.NewContentProvider(newTestHasher())
	_, err := provider.IdentityOf(ctx, domain.UnitRef{Unit: testUnit("app.js"), Root: root})
	require.ErrorIs(t, err, context.Canceled)
}
