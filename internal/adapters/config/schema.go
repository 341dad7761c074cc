package config

// Stampfile represents the structure of the stamp.yaml configuration file.
type Stampfile struct {
	Version string              `yaml:"version"`
	Root    string              `yaml:"root"`
	Units   map[string]*UnitDTO `yaml:"units"`
}

// UnitDTO represents a unit definition in the configuration.
type UnitDTO struct {
	Input  []string `yaml:"input"`
	Ignore []string `yaml:"ignore"`
}
