package domain

import "path/filepath"

const (
	// StampDirName is the name of the internal metadata directory.
	StampDirName = ".stamp"

	// ManifestFileName is the name of the manifest file holding resolved tags.
	ManifestFileName = "manifest.json"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "stamp.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultStampPath returns the metadata directory under the given root.
func DefaultStampPath(root string) string {
	return filepath.Join(root, StampDirName)
}

// DefaultManifestPath returns the manifest file path under the given root.
func DefaultManifestPath(root string) string {
	return filepath.Join(root, StampDirName, ManifestFileName)
}
