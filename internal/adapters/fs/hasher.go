package fs

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"

	"github.com/assetstamp/stamp/internal/core/domain"
	"github.com/assetstamp/stamp/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes canonical content hashes for units and files.
//
// The digest layout is part of the tag contract: unit definition first
// (name, inputs, ignores, NUL-separated), then every input file as its
// slash-separated path relative to the root followed by its content hash.
// Paths are relative and the walk order is lexical, so identical content
// produces identical tags on any machine.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeUnitHash computes a single version tag representing the unit
// definition and the content of all its input files.
func (h *Hasher) ComputeUnitHash(unit *domain.Unit, root string) (domain.VersionTag, error) {
	hasher := xxhash.New()

	h.hashUnitDefinition(unit, hasher)

	if err := h.hashInputFiles(unit, root, hasher); err != nil {
		return "", err
	}

	return domain.NewVersionTag(hasher.Sum64()), nil
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// hashUnitDefinition hashes the unit's name, inputs and ignores.
// Changing any of these changes the tag even if file content is identical.
func (h *Hasher) hashUnitDefinition(unit *domain.Unit, hasher *xxhash.Digest) {
	_, _ = hasher.WriteString(unit.Name.String())
	_, _ = hasher.Write([]byte{0}) // Separator

	for _, input := range unit.Inputs {
		_, _ = hasher.WriteString(input.String())
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	for _, ignore := range unit.Ignores {
		_, _ = hasher.WriteString(ignore.String())
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}

// hashInputFiles hashes the actual input files, handling globs and directories.
// Inputs are canonicalized (sorted, deduplicated) at config load time, so the
// iteration order here is already deterministic.
func (h *Hasher) hashInputFiles(unit *domain.Unit, root string, hasher *xxhash.Digest) error {
	ignores := make([]string, len(unit.Ignores))
	for i, ig := range unit.Ignores {
		ignores[i] = ig.String()
	}

	for _, input := range unit.Inputs {
		path := filepath.Join(root, input.String())

		if err := h.hashInputPath(path, root, ignores, hasher); err != nil {
			return zerr.With(err, "unit", unit.Name.String())
		}
	}
	return nil
}

// hashInputPath hashes a single input path, attempting glob resolution if the
// path doesn't exist as given.
func (h *Hasher) hashInputPath(path, root string, ignores []string, hasher *xxhash.Digest) error {
	if _, err := os.Stat(path); err != nil {
		return h.globAndHash(path, root, ignores, hasher)
	}
	return h.hashPath(path, root, ignores, hasher)
}

// globAndHash resolves a path as a glob pattern and hashes all matches.
// filepath.Glob returns matches in lexical order.
func (h *Hasher) globAndHash(pattern, root string, ignores []string, hasher *xxhash.Digest) error {
	matches, globErr := filepath.Glob(pattern)
	if globErr != nil || len(matches) == 0 {
		// Not a glob, or a glob with no matches: the input is missing.
		return zerr.With(domain.ErrInputNotFound, "path", pattern)
	}
	for _, match := range matches {
		if err := h.hashPath(match, root, ignores, hasher); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hasher) hashPath(path, root string, ignores []string, mainHasher io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}

	if !info.IsDir() {
		return h.hashFile(path, root, mainHasher)
	}

	for filePath := range h.walker.WalkFiles(path, ignores) {
		if err := h.hashFile(filePath, root, mainHasher); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hasher) hashFile(path, root string, mainHasher io.Writer) error {
	// Write the path relative to the root, slash-separated, so the digest
	// does not depend on where the project is checked out or on the host OS.
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	_, _ = mainHasher.Write([]byte(filepath.ToSlash(rel)))
	_, _ = mainHasher.Write([]byte{0})

	hash, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(mainHasher, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}
