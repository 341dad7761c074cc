// Package app implements the application layer for stamp.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/assetstamp/stamp/internal/adapters/watcher" //nolint:depguard // Debouncer wired in app layer
	"github.com/assetstamp/stamp/internal/core/domain"
	"github.com/assetstamp/stamp/internal/core/ports"
	"github.com/assetstamp/stamp/internal/engine/stamper"
	"go.trai.ch/zerr"
)

// DefaultDebounce is the watch-mode window during which rapid file system
// events are coalesced into one re-stamp.
const DefaultDebounce = 250 * time.Millisecond

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	storeFactory ports.StoreFactory
	stamper      *stamper.Stamper
	binary       ports.IdentityProvider
	fileWatcher  ports.Watcher
	logger       ports.Logger
	cwd          string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	storeFactory ports.StoreFactory,
	s *stamper.Stamper,
	binary ports.IdentityProvider,
	fileWatcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		storeFactory: storeFactory,
		stamper:      s,
		binary:       binary,
		fileWatcher:  fileWatcher,
		logger:       log,
		cwd:          ".",
	}
}

// WithWorkingDir overrides the directory configuration discovery starts from.
// This is primarily used for testing.
func (a *App) WithWorkingDir(cwd string) *App {
	a.cwd = cwd
	return a
}

// ResolveOptions configures the Resolve operation.
type ResolveOptions struct {
	// Units restricts resolution to the named units. Empty means all.
	Units []string
	// Jobs bounds concurrent resolutions. Zero means GOMAXPROCS.
	Jobs int
	// Check verifies the manifest without writing it.
	Check bool
}

// Resolve stamps the project's units and returns the per-unit results.
// In check mode it fails with domain.ErrTagsOutOfDate when any stored tag
// no longer matches the unit's content.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) ([]stamper.Result, error) {
	project, err := a.configLoader.Load(a.cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	store := a.storeFactory(project.Root())
	results, err := a.stamper.Stamp(ctx, project, store, stamper.Options{
		Units: opts.Units,
		Jobs:  opts.Jobs,
		Check: opts.Check,
	})
	if err != nil {
		return results, err
	}

	if opts.Check {
		var stale []string
		for _, result := range results {
			if result.Status == stamper.StatusStamped {
				stale = append(stale, result.UnitName)
			}
		}
		if len(stale) > 0 {
			return results, zerr.With(domain.ErrTagsOutOfDate, "units", strings.Join(stale, ","))
		}
	}

	return results, nil
}

// URLOptions configures the URL operation.
type URLOptions struct {
	// Unit selects the unit whose tag versions the asset path. When the
	// project defines exactly one unit it may be left empty.
	Unit string
	// Module selects runtime build-metadata identity instead of a unit.
	Module string
	// Tag uses an explicit, already resolved tag instead of any lookup.
	Tag string
	// Resolve recomputes the tag from content instead of reading the manifest.
	Resolve bool
}

// URL composes a versioned URL for the given asset path.
func (a *App) URL(ctx context.Context, assetPath string, opts URLOptions) (string, error) {
	if opts.Tag != "" {
		tag, err := domain.ParseVersionTag(opts.Tag)
		if err != nil {
			return "", err
		}
		return domain.VersionedURL(assetPath, tag)
	}

	if opts.Module != "" {
		tag, err := a.binary.IdentityOf(ctx, domain.UnitRef{Module: opts.Module})
		if err != nil {
			return "", err
		}
		return domain.VersionedURL(assetPath, tag)
	}

	project, err := a.configLoader.Load(a.cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to load configuration")
	}

	name, err := pickUnit(project, opts.Unit)
	if err != nil {
		return "", err
	}

	store := a.storeFactory(project.Root())

	var tag domain.VersionTag
	if opts.Resolve {
		results, err := a.stamper.Stamp(ctx, project, store, stamper.Options{Units: []string{name}})
		if err != nil {
			return "", err
		}
		tag = results[0].Tag
	} else {
		record, err := store.Get(name)
		if err != nil {
			return "", err
		}
		if record == nil {
			return "", zerr.With(domain.ErrUnitNotStamped, "unit", name)
		}
		tag = record.Tag
	}

	return domain.VersionedURL(assetPath, tag)
}

// WatchOptions configures the Watch operation.
type WatchOptions struct {
	// Jobs bounds concurrent resolutions. Zero means GOMAXPROCS.
	Jobs int
	// Debounce is the event coalescing window. Zero means DefaultDebounce.
	Debounce time.Duration
}

// Watch stamps the project once, then keeps re-stamping units whose inputs
// change until the context is done.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	project, err := a.configLoader.Load(a.cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	store := a.storeFactory(project.Root())

	results, err := a.stamper.Stamp(ctx, project, store, stamper.Options{Jobs: opts.Jobs})
	if err != nil {
		// A broken unit must not end the session, the next change may fix it.
		a.logger.Error(err)
	}
	a.logResults(results)

	window := opts.Debounce
	if window <= 0 {
		window = DefaultDebounce
	}

	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		a.restamp(ctx, project, store, paths, opts.Jobs)
	})

	if err := a.fileWatcher.Start(ctx, project.Root()); err != nil {
		return zerr.Wrap(err, "failed to start watching "+project.Root())
	}
	defer func() { _ = a.fileWatcher.Stop() }()

	a.logger.Info("watching " + project.Root())

	for event := range a.fileWatcher.Events() {
		debouncer.Add(event.Path)
	}
	debouncer.Flush()

	return nil
}

// restamp re-resolves the units affected by the changed paths.
func (a *App) restamp(ctx context.Context, project *domain.Project, store ports.ManifestStore, paths []string, jobs int) {
	if ctx.Err() != nil {
		return
	}

	units := affectedUnits(project, paths)
	if len(units) == 0 {
		return
	}

	results, err := a.stamper.Stamp(ctx, project, store, stamper.Options{Units: units, Jobs: jobs})
	if err != nil {
		a.logger.Error(err)
	}
	a.logResults(results)
}

// Clean removes the stamp directory and everything in it.
func (a *App) Clean(_ context.Context) error {
	root, err := a.configLoader.DiscoverRoot(a.cwd)
	if err != nil {
		return err
	}

	stampDir := domain.DefaultStampPath(root)
	if err := os.RemoveAll(stampDir); err != nil {
		return zerr.Wrap(err, "failed to remove "+stampDir)
	}

	a.logger.Info("removed " + stampDir)
	return nil
}

func (a *App) logResults(results []stamper.Result) {
	for _, result := range results {
		switch result.Status {
		case stamper.StatusStamped:
			a.logger.Info(fmt.Sprintf("%s %s", result.UnitName, result.Tag))
		case stamper.StatusUnchanged:
			// Quiet: nothing changed.
		case stamper.StatusFailed:
			a.logger.Error(result.Err)
		}
	}
}

// pickUnit resolves the unit name to use for URL composition. An empty name
// is allowed only when the project defines exactly one unit.
func pickUnit(project *domain.Project, name string) (string, error) {
	if name != "" {
		if _, ok := project.Unit(domain.NewInternedString(name)); !ok {
			return "", zerr.With(domain.ErrUnitNotFound, "unit", name)
		}
		return name, nil
	}

	if project.UnitCount() == 1 {
		for unit := range project.Units() {
			return unit.Name.String(), nil
		}
	}

	return "", zerr.With(domain.ErrUnitNotFound, "reason", "project defines multiple units, pass one explicitly")
}

// affectedUnits maps changed paths onto the units whose inputs cover them.
func affectedUnits(project *domain.Project, paths []string) []string {
	root := project.Root()

	var units []string
	for unit := range project.Units() {
		if unitCovers(unit, root, paths) {
			units = append(units, unit.Name.String())
		}
	}
	return units
}

func unitCovers(unit *domain.Unit, root string, paths []string) bool {
	for _, path := range paths {
		rel, err := filepath.Rel(root, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		rel = filepath.ToSlash(rel)

		for _, input := range unit.Inputs {
			pattern := input.String()
			if rel == pattern || strings.HasPrefix(rel, pattern+"/") {
				return true
			}
			if ok, err := filepath.Match(pattern, rel); err == nil && ok {
				return true
			}
		}
	}
	return false
}
