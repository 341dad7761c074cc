// Package buildinfo resolves unit identity from the running binary's
// embedded build metadata.
package buildinfo

import (
	"context"
	"runtime/debug"

	"github.com/assetstamp/stamp/internal/core/domain"
	"github.com/assetstamp/stamp/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

var _ ports.IdentityProvider = (*Provider)(nil)

// readFunc reads the build info of the running binary.
type readFunc func() (*debug.BuildInfo, bool)

// Provider derives version tags from runtime/debug.ReadBuildInfo.
//
// This is the path for binaries that embed their assets: the tag comes from
// the VCS revision of the main module or the module checksum of a dependency,
// so it changes exactly when a new build ships. It requires the binary to be
// built inside a VCS checkout (for the main module) or with module sums
// intact (for dependencies).
type Provider struct {
	read readFunc
}

// NewProvider creates a Provider reading the current binary's build info.
func NewProvider() *Provider {
	return &Provider{read: debug.ReadBuildInfo}
}

// newProvider allows tests to substitute the build info source.
func newProvider(read readFunc) *Provider {
	return &Provider{read: read}
}

// IdentityOf returns the version tag for the referenced module.
// An empty Module reference selects the main module.
func (p *Provider) IdentityOf(ctx context.Context, ref domain.UnitRef) (domain.VersionTag, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, ok := p.read()
	if !ok || info == nil {
		return "", zerr.With(domain.ErrUnitNotResolvable, "reason", "binary carries no build info")
	}

	if ref.Module == "" || ref.Module == info.Main.Path {
		return p.mainModuleTag(info)
	}
	return p.depModuleTag(info, ref.Module)
}

// mainModuleTag derives the tag from VCS metadata. The main module has no
// checksum in build info, so the revision is the only content-stable anchor.
func (p *Provider) mainModuleTag(info *debug.BuildInfo) (domain.VersionTag, error) {
	var revision, vcsTime, modified string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			vcsTime = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}

	if revision == "" {
		return "", zerr.With(domain.ErrUnitNotResolvable, "reason", "binary built without VCS metadata")
	}

	hasher := xxhash.New()
	_, _ = hasher.WriteString(revision)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(vcsTime)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(modified)

	return domain.NewVersionTag(hasher.Sum64()), nil
}

// depModuleTag derives the tag from a dependency's module checksum.
func (p *Provider) depModuleTag(info *debug.BuildInfo, module string) (domain.VersionTag, error) {
	for _, dep := range info.Deps {
		if dep.Path != module {
			continue
		}

		m := dep
		if m.Replace != nil {
			m = m.Replace
		}
		if m.Sum == "" {
			return "", zerr.With(domain.ErrUnitNotResolvable, "module", module)
		}

		hasher := xxhash.New()
		_, _ = hasher.WriteString(m.Path)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(m.Version)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(m.Sum)

		return domain.NewVersionTag(hasher.Sum64()), nil
	}

	return "", zerr.With(domain.ErrUnitNotFound, "module", module)
}
