package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// TagLength is the length of the canonical version tag encoding:
// a 64-bit hash rendered as 16 lowercase hex digits.
const TagLength = 16

// VersionTag is an opaque, deterministic, content-sensitive identifier for a
// unit. It is URL-safe and stable across repeated builds of identical content.
type VersionTag string

// NewVersionTag encodes a 64-bit content hash as a VersionTag.
func NewVersionTag(sum uint64) VersionTag {
	return VersionTag(fmt.Sprintf("%016x", sum))
}

// ParseVersionTag validates an externally supplied tag string.
// Tags read back from a manifest or passed on the command line must be
// exactly 16 lowercase hex digits.
func ParseVersionTag(s string) (VersionTag, error) {
	if len(s) != TagLength {
		return "", zerr.With(ErrInvalidVersionTag, "tag", s)
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", zerr.With(ErrInvalidVersionTag, "tag", s)
		}
	}
	return VersionTag(s), nil
}

// String returns the tag's canonical string encoding.
func (t VersionTag) String() string {
	return string(t)
}

// IsZero reports whether the tag is unset.
func (t VersionTag) IsZero() bool {
	return t == ""
}
