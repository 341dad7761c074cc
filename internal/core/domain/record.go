package domain

import "time"

// Record is the manifest entry for a stamped unit.
type Record struct {
	UnitName  string     `json:"unit_name,omitzero"`
	Tag       VersionTag `json:"tag,omitzero"`
	StampedAt time.Time  `json:"stamped_at,omitzero"`
}
