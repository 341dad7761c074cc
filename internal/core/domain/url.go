package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// VersionParam is the query parameter carrying the cache-busting tag.
const VersionParam = "version"

// VersionedURL appends the version tag to an asset path as a query parameter.
// The result is `path?version=<tag>`, or `path&version=<tag>` when the path
// already carries a query string. A pre-existing version parameter is
// replaced rather than duplicated, and a fragment stays at the end.
//
// The path is treated as an opaque string: other query parameters keep their
// order and encoding exactly as given.
func VersionedURL(basePath string, tag VersionTag) (string, error) {
	if basePath == "" {
		return "", ErrEmptyAssetPath
	}
	if tag.IsZero() {
		return "", zerr.With(ErrInvalidVersionTag, "path", basePath)
	}

	path := basePath
	fragment := ""
	if i := strings.IndexByte(path, '#'); i >= 0 {
		fragment = path[i:]
		path = path[:i]
	}

	path, query, hasQuery := strings.Cut(path, "?")
	param := VersionParam + "=" + tag.String()

	if !hasQuery || query == "" {
		return path + "?" + param + fragment, nil
	}

	// Replace an existing version parameter in place, keeping the rest of
	// the query string untouched.
	parts := strings.Split(query, "&")
	replaced := false
	for i, p := range parts {
		key, _, _ := strings.Cut(p, "=")
		if key == VersionParam {
			parts[i] = param
			replaced = true
		}
	}
	if !replaced {
		parts = append(parts, param)
	}

	return path + "?" + strings.Join(parts, "&") + fragment, nil
}
