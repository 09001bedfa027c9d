package skillsync

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pagesmith-labs/pagesmith/internal/branding"
	"github.com/pagesmith-labs/pagesmith/internal/config"
)

// Directory and file name constants for the skill install convention.
const (
	// SkillDirName is the skill folder inside the project.
	SkillDirName = "github-pages-deploy-skill"

	// SkillName is the installed skill directory name and archive stem.
	SkillName = "github-pages-deploy"

	// ArchiveExt is the extension of packaged skill bundles.
	ArchiveExt = ".skill"
)

// installSegments is the host application's skill cache layout under $HOME.
var installSegments = []string{
	".claude", "plugins", "cache",
	"anthropic-agent-skills", "example-skills",
	"a5bcdd7e58cd", "skills", SkillName,
}

// Paths holds every location the sync pipeline touches.
type Paths struct {
	ProjectDir string // originating project directory
	Source     string // skill folder inside the project
	Dest       string // installed skill directory
}

// SkillsDir returns the directory that holds installed skills (the parent of
// Dest). Packaged archives are written here.
func (p Paths) SkillsDir() string {
	return filepath.Dir(p.Dest)
}

// ArchivePath returns the target path of the packaged skill archive.
func (p Paths) ArchivePath() string {
	return filepath.Join(p.SkillsDir(), filepath.Base(p.Dest)+ArchiveExt)
}

// ProjectArchivePath returns the archive's mirror location inside the project.
func (p Paths) ProjectArchivePath() string {
	return filepath.Join(p.ProjectDir, filepath.Base(p.Dest)+ArchiveExt)
}

// DefaultPaths resolves the pipeline paths for a project directory.
//
// Resolution order for source and destination:
//  1. PAGESMITH_SOURCE / PAGESMITH_DEST environment variables
//  2. paths.source / paths.dest from ~/.pagesmith/config.yaml
//  3. the conventional layout: <project>/github-pages-deploy-skill and the
//     host application's skill cache under $HOME
func DefaultPaths(projectDir string) (Paths, error) {
	p := Paths{ProjectDir: projectDir}

	p.Source = firstNonEmpty(
		os.Getenv(branding.EnvVar("SOURCE")),
		config.Get(config.KeySourcePath),
		filepath.Join(projectDir, SkillDirName),
	)

	dest := firstNonEmpty(
		os.Getenv(branding.EnvVar("DEST")),
		config.Get(config.KeyDestPath),
	)
	if dest == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, fmt.Errorf("resolving home directory: %w", err)
		}
		dest = filepath.Join(append([]string{home}, installSegments...)...)
	}
	p.Dest = dest

	return p, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
