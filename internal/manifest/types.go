package manifest

// ManifestFile is the well-known manifest file name inside a skill directory.
const ManifestFile = "SKILL.md"

// Skill holds the YAML frontmatter of a SKILL.md file.
type Skill struct {
	Name         string   `yaml:"name" json:"name"`
	Description  string   `yaml:"description" json:"description"`
	Version      string   `yaml:"version,omitempty" json:"version,omitempty"`
	License      string   `yaml:"license,omitempty" json:"license,omitempty"`
	AllowedTools []string `yaml:"allowed-tools,omitempty" json:"allowed-tools,omitempty"`
}
