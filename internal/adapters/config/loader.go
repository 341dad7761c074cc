// Package config provides the configuration loader for stamp.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"

	"github.com/assetstamp/stamp/internal/core/domain"
	"github.com/assetstamp/stamp/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML stampfile.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var validUnitNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Load reads the stampfile discovered from cwd and returns the project with
// its units canonicalized.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	configDir, err := l.DiscoverRoot(cwd)
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(configDir, domain.ConfigFileName)
	// #nosec G304 -- configPath is discovered by walking up from cwd
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var stampfile Stampfile
	if err := yaml.Unmarshal(data, &stampfile); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if stampfile.Version != "" && stampfile.Version != "1" {
		l.Logger.Warn(fmt.Sprintf("unknown stampfile version %q, parsing as version 1", stampfile.Version))
	}

	project := domain.NewProject()
	project.SetRoot(resolveRoot(configDir, stampfile.Root))

	// Iterate in sorted order so validation errors are deterministic.
	names := make([]string, 0, len(stampfile.Units))
	for name := range stampfile.Units {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		unit, err := buildUnit(name, stampfile.Units[name])
		if err != nil {
			return nil, err
		}
		if err := project.AddUnit(unit); err != nil {
			return nil, err
		}
	}

	return project, nil
}

// DiscoverRoot walks up from cwd to find the directory containing the
// stampfile.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func buildUnit(name string, dto *UnitDTO) (*domain.Unit, error) {
	if !validUnitNameRegex.MatchString(name) {
		return nil, zerr.With(domain.ErrInvalidUnitName, "unit", name)
	}
	if dto == nil || len(dto.Input) == 0 {
		return nil, zerr.With(domain.ErrNoInputsDefined, "unit", name)
	}

	return &domain.Unit{
		Name:    domain.NewInternedString(name),
		Inputs:  canonicalize(dto.Input),
		Ignores: canonicalize(dto.Ignore),
	}, nil
}

// canonicalize sorts and deduplicates the given patterns so the unit hash
// does not depend on declaration order.
func canonicalize(patterns []string) []domain.InternedString {
	cleaned := make([]string, 0, len(patterns))
	for _, p := range patterns {
		cleaned = append(cleaned, filepath.ToSlash(filepath.Clean(p)))
	}
	slices.Sort(cleaned)
	cleaned = slices.Compact(cleaned)

	interned := make([]domain.InternedString, len(cleaned))
	for i, p := range cleaned {
		interned[i] = domain.NewInternedString(p)
	}
	return interned
}

func resolveRoot(configDir, root string) string {
	if root == "" {
		return configDir
	}
	if filepath.IsAbs(root) {
		return filepath.Clean(root)
	}
	return filepath.Join(configDir, root)
}
