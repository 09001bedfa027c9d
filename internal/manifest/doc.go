// Package manifest parses and validates skill manifests. A skill directory
// carries a SKILL.md whose YAML frontmatter declares the skill's name,
// description, and version; this package extracts that frontmatter, checks it
// against an embedded JSON Schema, and verifies the version is valid semver.
// The sync pipeline uses it as a pre-flight check before overwriting the
// installed skill.
package manifest
