package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleManifest = `---
name: github-pages-deploy
description: Deploy static sites and front-end apps to GitHub Pages.
version: 1.2.0
license: MIT
allowed-tools:
  - Bash
  - Read
---

# GitHub Pages Deploy

Instructions follow.
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if s.Name != "github-pages-deploy" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.Version != "1.2.0" {
		t.Errorf("Version = %q", s.Version)
	}
	if s.License != "MIT" {
		t.Errorf("License = %q", s.License)
	}
	if len(s.AllowedTools) != 2 || s.AllowedTools[0] != "Bash" {
		t.Errorf("AllowedTools = %v", s.AllowedTools)
	}
}

func TestParseMissingFrontmatter(t *testing.T) {
	_, err := Parse([]byte("# Just a markdown file\n"))
	if err == nil {
		t.Fatal("expected error for missing frontmatter")
	}
	if !strings.Contains(err.Error(), "missing frontmatter") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseUnterminatedFrontmatter(t *testing.T) {
	_, err := Parse([]byte("---\nname: test\ndescription: no closing delimiter\n"))
	if err == nil {
		t.Fatal("expected error for unterminated frontmatter")
	}
	if !strings.Contains(err.Error(), "unterminated") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ManifestFile), []byte(sampleManifest), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := ParseDir(tmpDir)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if s.Name != "github-pages-deploy" {
		t.Errorf("Name = %q", s.Name)
	}
}

func TestParseDirMissingManifest(t *testing.T) {
	if _, err := ParseDir(t.TempDir()); err == nil {
		t.Error("expected error for missing SKILL.md")
	}
}

func TestFrontmatterBodyExcluded(t *testing.T) {
	fm, err := Frontmatter([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Frontmatter: %v", err)
	}
	if strings.Contains(string(fm), "Instructions follow") {
		t.Error("frontmatter should not include the markdown body")
	}
}
