package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

var frontmatterDelim = []byte("---")

// Parse extracts and unmarshals the YAML frontmatter of SKILL.md content.
func Parse(data []byte) (*Skill, error) {
	fm, err := Frontmatter(data)
	if err != nil {
		return nil, err
	}

	var s Skill
	if err := yaml.Unmarshal(fm, &s); err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	return &s, nil
}

// ParseFile reads a SKILL.md file and parses its frontmatter.
func ParseFile(path string) (*Skill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return s, nil
}

// ParseDir parses the SKILL.md inside a skill directory.
func ParseDir(skillDir string) (*Skill, error) {
	return ParseFile(filepath.Join(skillDir, ManifestFile))
}

// Frontmatter returns the raw YAML between the leading and closing "---"
// delimiter lines. The document must start with a delimiter line.
func Frontmatter(data []byte) ([]byte, error) {
	lines := bytes.SplitAfter(data, []byte("\n"))
	if len(lines) == 0 || !isDelim(lines[0]) {
		return nil, fmt.Errorf("missing frontmatter: document must start with %q", "---")
	}

	var fm bytes.Buffer
	for _, line := range lines[1:] {
		if isDelim(line) {
			return fm.Bytes(), nil
		}
		fm.Write(line)
	}
	return nil, fmt.Errorf("unterminated frontmatter: closing %q not found", "---")
}

// isDelim reports whether a line is a frontmatter delimiter, ignoring the
// trailing newline and surrounding whitespace.
func isDelim(line []byte) bool {
	return bytes.Equal(bytes.TrimSpace(line), frontmatterDelim)
}
