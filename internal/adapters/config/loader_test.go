package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/assetstamp/stamp/internal/adapters/config"
	"github.com/assetstamp/stamp/internal/core/domain"
	"github.com/assetstamp/stamp/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), domain.FilePerm))
}

func TestLoader_Load(t *testing.T) {
	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `
version: "1"
units:
  web:
    input:
      - "assets/js"
      - "assets/css"
    ignore:
      - "*.map"
  docs:
    input:
      - "site/**/*.html"
`)

	project, err := newTestLoader(t).Load(rootDir)
	require.NoError(t, err)
	require.NotNil(t, project)

	assert.Equal(t, rootDir, project.Root())
	assert.Equal(t, 2, project.UnitCount())

	web, ok := project.Unit(domain.NewInternedString("web"))
	require.True(t, ok)
	// Inputs come back sorted regardless of declaration order.
	require.Len(t, web.Inputs, 2)
	assert.Equal(t, "assets/css", web.Inputs[0].String())
	assert.Equal(t, "assets/js", web.Inputs[1].String())
	require.Len(t, web.Ignores, 1)
	assert.Equal(t, "*.map", web.Ignores[0].String())
}

func TestLoader_Load_Canonicalization(t *testing.T) {
	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `
units:
  web:
    input:
      - "assets/js/"
      - "assets/js"
      - "./assets/js"
`)

	project, err := newTestLoader(t).Load(rootDir)
	require.NoError(t, err)

	web, ok := project.Unit(domain.NewInternedString("web"))
	require.True(t, ok)
	// Equivalent spellings collapse to one input.
	require.Len(t, web.Inputs, 1)
	assert.Equal(t, "assets/js", web.Inputs[0].String())
}

func TestLoader_Load_FromSubdirectory(t *testing.T) {
	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `
units:
  web:
    input: ["assets"]
`)

	subDir := filepath.Join(rootDir, "deeply", "nested")
	require.NoError(t, os.MkdirAll(subDir, domain.DirPerm))

	project, err := newTestLoader(t).Load(subDir)
	require.NoError(t, err)
	assert.Equal(t, rootDir, project.Root())
}

func TestLoader_Load_RelativeRoot(t *testing.T) {
	rootDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(rootDir, "site"), domain.DirPerm))
	createFile(t, rootDir, domain.ConfigFileName, `
root: site
units:
  web:
    input: ["assets"]
`)

	project, err := newTestLoader(t).Load(rootDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(rootDir, "site"), project.Root())
}

func TestLoader_Load_InvalidUnitName(t *testing.T) {
	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `
units:
  "bad name!":
    input: ["assets"]
`)

	_, err := newTestLoader(t).Load(rootDir)
	require.ErrorIs(t, err, domain.ErrInvalidUnitName)
}

func TestLoader_Load_NoInputs(t *testing.T) {
	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `
units:
  web:
    ignore: ["*.map"]
`)

	_, err := newTestLoader(t).Load(rootDir)
	require.ErrorIs(t, err, domain.ErrNoInputsDefined)
}

func TestLoader_Load_MalformedYAML(t *testing.T) {
	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "units: [not: a: mapping")

	_, err := newTestLoader(t).Load(rootDir)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoader_DiscoverRoot_NotFound(t *testing.T) {
	_, err := newTestLoader(t).DiscoverRoot(t.TempDir())
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}
