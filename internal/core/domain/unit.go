package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Unit is a compiled unit: a named group of source inputs whose combined
// content determines a single version tag. All assets belonging to the unit
// share that tag, so invalidation granularity is the unit, not the file.
type Unit struct {
	// Name identifies the unit within the project.
	Name InternedString

	// Inputs are the file paths, directories or glob patterns whose content
	// feeds the tag. They are canonicalized (sorted, deduplicated) at load
	// time so the hash is independent of declaration order.
	Inputs []InternedString

	// Ignores are directory or file name patterns excluded while walking
	// input directories.
	Ignores []InternedString
}

// UnitRef identifies which compiled unit's identity to resolve.
// Exactly one of Unit or Module is expected to be set: Unit selects
// content-based identity over the project's files, Module selects
// runtime build-metadata identity of the running binary's dependencies.
type UnitRef struct {
	// Unit is the content-based reference.
	Unit *Unit

	// Root is the project root the unit's inputs are relative to.
	Root string

	// Module is a Go module path resolved against the running binary's
	// embedded build info. Empty means "the main module".
	Module string
}

// Project holds the full set of units loaded from the stampfile.
type Project struct {
	root  InternedString
	units map[InternedString]*Unit
	order []InternedString
}

// NewProject creates an empty project.
func NewProject() *Project {
	return &Project{
		units: make(map[InternedString]*Unit),
	}
}

// SetRoot records the absolute project root directory.
func (p *Project) SetRoot(root string) {
	p.root = NewInternedString(root)
}

// Root returns the project root directory.
func (p *Project) Root() string {
	return p.root.String()
}

// AddUnit adds a unit to the project.
// It returns ErrUnitAlreadyExists if the name is already taken.
func (p *Project) AddUnit(u *Unit) error {
	if _, ok := p.units[u.Name]; ok {
		return zerr.With(ErrUnitAlreadyExists, "unit", u.Name.String())
	}
	p.units[u.Name] = u

	// Keep the iteration order sorted so every walk over the project is
	// deterministic regardless of map insertion order.
	idx, _ := slices.BinarySearchFunc(p.order, u.Name, func(a, b InternedString) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		default:
			return 0
		}
	})
	p.order = slices.Insert(p.order, idx, u.Name)
	return nil
}

// Unit returns the unit with the given name.
func (p *Project) Unit(name InternedString) (*Unit, bool) {
	u, ok := p.units[name]
	return u, ok
}

// UnitCount returns the number of units in the project.
func (p *Project) UnitCount() int {
	return len(p.units)
}

// Units yields all units in lexicographic name order.
func (p *Project) Units() iter.Seq[*Unit] {
	return func(yield func(*Unit) bool) {
		for _, name := range p.order {
			if !yield(p.units[name]) {
				return
			}
		}
	}
}
