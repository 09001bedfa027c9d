package skillsync

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Engine drives the sync pipeline against an injected set of paths.
type Engine struct {
	paths Paths
	out   io.Writer
	now   func() time.Time
}

// New creates an Engine. Progress and diagnostics are written to out.
func New(paths Paths, out io.Writer) *Engine {
	return &Engine{
		paths: paths,
		out:   out,
		now:   time.Now,
	}
}

// Paths returns the resolved paths the engine operates on.
func (e *Engine) Paths() Paths {
	return e.paths
}

// Run executes the pipeline: backup, sync, package, update project copy.
// Only a sync failure is returned as an error; backup and packaging failures
// are reported to the engine's writer and recorded in the Result flags.
func (e *Engine) Run() (*Result, error) {
	res := &Result{
		Source: e.paths.Source,
		Dest:   e.paths.Dest,
	}

	fmt.Fprintln(e.out, "[1/4] Creating backup...")
	backup, err := e.Backup()
	switch {
	case err != nil:
		fmt.Fprintf(e.out, "  backup failed: %v (continuing without backup)\n", err)
	case backup == "":
		fmt.Fprintln(e.out, "  no installed skill found, skipping backup")
	default:
		res.BackupPath = backup
		fmt.Fprintf(e.out, "  created backup: %s\n", backup)
	}

	fmt.Fprintln(e.out, "[2/4] Syncing skill files...")
	if err := e.Sync(); err != nil {
		return res, fmt.Errorf("syncing skill files: %w", err)
	}
	res.Synced = true
	fmt.Fprintf(e.out, "  synced %s\n", e.paths.Source)
	fmt.Fprintf(e.out, "  to     %s\n", e.paths.Dest)

	fmt.Fprintln(e.out, "[3/4] Packaging skill...")
	archive, size, err := e.Package()
	if err != nil {
		fmt.Fprintf(e.out, "  packaging failed: %v\n", err)
	} else {
		res.Packaged = true
		res.ArchivePath = archive
		fmt.Fprintf(e.out, "  packaged skill to %s (%.1f KB)\n", archive, float64(size)/1024)
	}

	fmt.Fprintln(e.out, "[4/4] Updating project package...")
	if !res.Packaged {
		fmt.Fprintln(e.out, "  skipped: no archive was produced")
	} else if err := e.UpdateProjectPackage(); err != nil {
		fmt.Fprintf(e.out, "  project update failed: %v\n", err)
	} else {
		res.ProjectUpdated = true
		fmt.Fprintf(e.out, "  updated %s\n", e.paths.ProjectArchivePath())
	}

	return res, nil
}

// Sync replaces the installed skill with the project's skill folder. The
// source is verified before anything is removed, and the copy lands in a
// temporary sibling that is renamed into place, so a failed copy never
// leaves the destination missing.
func (e *Engine) Sync() error {
	if _, err := os.Stat(e.paths.Source); err != nil {
		return fmt.Errorf("source skill directory not found: %s", e.paths.Source)
	}
	return e.replaceDest(e.paths.Source)
}

// replaceDest copies src into a temp directory next to Dest, then swaps it in.
func (e *Engine) replaceDest(src string) error {
	parent := e.paths.SkillsDir()
	if err := os.MkdirAll(parent, 0755); err != nil {
		return fmt.Errorf("creating skills directory %s: %w", parent, err)
	}

	tmp, err := os.MkdirTemp(parent, "."+filepath.Base(e.paths.Dest)+".tmp-")
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(tmp)

	if err := copyDir(src, tmp); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	// MkdirTemp creates the staging dir 0700; match the source instead.
	if info, err := os.Stat(src); err == nil {
		_ = os.Chmod(tmp, info.Mode().Perm())
	}

	if err := os.RemoveAll(e.paths.Dest); err != nil {
		return fmt.Errorf("removing existing skill at %s: %w", e.paths.Dest, err)
	}
	if err := os.Rename(tmp, e.paths.Dest); err != nil {
		return fmt.Errorf("moving staged copy into place: %w", err)
	}
	return nil
}

// Package archives the installed skill into <skills-dir>/<name>.skill,
// replacing any previous archive. Returns the archive path and size.
func (e *Engine) Package() (string, int64, error) {
	archive := e.paths.ArchivePath()
	size, err := Pack(e.paths.Dest, archive)
	if err != nil {
		return "", 0, err
	}
	return archive, size, nil
}

// UpdateProjectPackage copies the packaged archive back into the project
// directory, overwriting any prior copy.
func (e *Engine) UpdateProjectPackage() error {
	src := e.paths.ArchivePath()
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("archive not found: %s", src)
	}

	dst := e.paths.ProjectArchivePath()
	if err := copyFile(src, dst); err != nil {
		return fmt.Errorf("copying archive to %s: %w", dst, err)
	}
	return nil
}
