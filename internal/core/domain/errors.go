package domain

import "go.trai.ch/zerr"

var (
	// ErrUnitAlreadyExists is returned when a project defines two units with the same name.
	ErrUnitAlreadyExists = zerr.New("unit already exists")

	// ErrUnitNotFound is returned when a requested unit is not defined in the project.
	ErrUnitNotFound = zerr.New("unit not found")

	// ErrUnitNotResolvable is returned when a unit's identity cannot be determined,
	// e.g. the binary carries no build metadata or the reference is empty.
	ErrUnitNotResolvable = zerr.New("unit identity not resolvable")

	// ErrUnitNotStamped is returned when the manifest has no record for a unit.
	ErrUnitNotStamped = zerr.New("unit has no manifest record, run 'stamp resolve' first")

	// ErrInvalidUnitName is returned when a unit name contains invalid characters.
	ErrInvalidUnitName = zerr.New("unit name can only contain alphanumeric characters, hyphens and underscores")

	// ErrNoInputsDefined is returned when a unit declares no input paths.
	ErrNoInputsDefined = zerr.New("unit declares no inputs")

	// ErrInputNotFound is returned when a declared input file or directory is not found.
	ErrInputNotFound = zerr.New("input not found")

	// ErrInvalidVersionTag is returned when a tag string is not 16 lowercase hex digits.
	ErrInvalidVersionTag = zerr.New("invalid version tag")

	// ErrEmptyAssetPath is returned when a versioned URL is requested for an empty path.
	ErrEmptyAssetPath = zerr.New("asset path is empty")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no stampfile is found in the directory tree.
	ErrConfigNotFound = zerr.New("could not find stampfile")

	// ErrTagsOutOfDate is returned by check mode when resolved tags differ from the manifest.
	ErrTagsOutOfDate = zerr.New("version tags are out of date")

	// ErrManifestReadFailed is returned when the manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestWriteFailed is returned when the manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")
)
