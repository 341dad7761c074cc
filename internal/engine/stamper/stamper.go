// Package stamper implements concurrent version tag resolution for a project.
package stamper

import (
	"context"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/assetstamp/stamp/internal/core/domain"
	"github.com/assetstamp/stamp/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Status describes the outcome of stamping a single unit.
type Status string

const (
	// StatusStamped indicates the unit's tag changed against the manifest.
	StatusStamped Status = "Stamped"
	// StatusUnchanged indicates the manifest already carries the current tag.
	StatusUnchanged Status = "Unchanged"
	// StatusFailed indicates the unit could not be resolved.
	StatusFailed Status = "Failed"
)

// Result is the per-unit outcome of a stamping run.
type Result struct {
	UnitName string
	Tag      domain.VersionTag
	Previous domain.VersionTag
	Status   Status
	Err      error
}

// Options configures a stamping run.
type Options struct {
	// Units restricts the run to the named units. Empty means all.
	Units []string
	// Jobs bounds concurrent resolutions. Zero means GOMAXPROCS.
	Jobs int
	// Check verifies tags without writing the manifest.
	Check bool
}

// Stamper resolves version tags for a project's units and reconciles them
// with the manifest.
type Stamper struct {
	provider ports.IdentityProvider
	tracer   ports.Tracer
	now      func() time.Time
}

// NewStamper creates a new Stamper with the given dependencies.
func NewStamper(provider ports.IdentityProvider, tracer ports.Tracer) *Stamper {
	return &Stamper{
		provider: provider,
		tracer:   tracer,
		now:      time.Now,
	}
}

// WithNow overrides the clock used for manifest timestamps.
// This is primarily used for testing.
func (s *Stamper) WithNow(now func() time.Time) *Stamper {
	s.now = now
	return s
}

// Stamp resolves every selected unit concurrently and returns the per-unit
// results sorted by unit name. The first resolution failure (in name order)
// is returned as the error; remaining units are still attempted so a single
// broken unit does not hide the state of the others.
func (s *Stamper) Stamp(
	ctx context.Context,
	project *domain.Project,
	store ports.ManifestStore,
	opts Options,
) ([]Result, error) {
	units, err := selectUnits(project, opts.Units)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(units))
	for i, u := range units {
		names[i] = u.Name.String()
	}
	s.tracer.EmitPlan(ctx, names)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	var mu sync.Mutex
	results := make([]Result, 0, len(units))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for _, unit := range units {
		g.Go(func() error {
			result := s.stampUnit(groupCtx, project, store, unit, opts.Check)

			mu.Lock()
			results = append(results, result)
			mu.Unlock()

			// Resolution failures are reported through results, not the
			// group, so the remaining units still get stamped.
			return nil
		})
	}

	// The only group error is context cancellation, surfaced below.
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b Result) int {
		return strings.Compare(a.UnitName, b.UnitName)
	})

	return results, firstFailure(results)
}

func (s *Stamper) stampUnit(
	ctx context.Context,
	project *domain.Project,
	store ports.ManifestStore,
	unit *domain.Unit,
	check bool,
) Result {
	name := unit.Name.String()
	result := Result{UnitName: name}

	_, span := s.tracer.Start(ctx, "stamp "+name)
	defer span.End()

	previous, err := store.Get(name)
	if err != nil {
		span.RecordError(err)
		result.Status = StatusFailed
		result.Err = err
		return result
	}
	if previous != nil {
		result.Previous = previous.Tag
	}

	tag, err := s.provider.IdentityOf(ctx, domain.UnitRef{Unit: unit, Root: project.Root()})
	if err != nil {
		span.RecordError(err)
		result.Status = StatusFailed
		result.Err = err
		return result
	}
	result.Tag = tag
	span.SetAttribute("tag", tag.String())

	if previous != nil && previous.Tag == tag {
		span.Cached()
		result.Status = StatusUnchanged
		return result
	}

	result.Status = StatusStamped
	if check {
		return result
	}

	record := domain.Record{
		UnitName:  name,
		Tag:       tag,
		StampedAt: s.now().UTC(),
	}
	if err := store.Put(record); err != nil {
		span.RecordError(err)
		result.Status = StatusFailed
		result.Err = err
	}
	return result
}

// selectUnits returns the units named in selection, or all units when the
// selection is empty, in lexicographic order.
func selectUnits(project *domain.Project, selection []string) ([]*domain.Unit, error) {
	if len(selection) == 0 {
		units := make([]*domain.Unit, 0, project.UnitCount())
		for unit := range project.Units() {
			units = append(units, unit)
		}
		return units, nil
	}

	sorted := slices.Clone(selection)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	units := make([]*domain.Unit, 0, len(sorted))
	for _, name := range sorted {
		unit, ok := project.Unit(domain.NewInternedString(name))
		if !ok {
			return nil, zerr.With(domain.ErrUnitNotFound, "unit", name)
		}
		units = append(units, unit)
	}
	return units, nil
}

// firstFailure returns the error of the first failed result, if any.
func firstFailure(results []Result) error {
	for _, result := range results {
		if result.Err != nil {
			return result.Err
		}
	}
	return nil
}
