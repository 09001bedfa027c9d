package skillsync

import (
	"archive/tar"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// newTestEngine builds an engine over a throwaway project/skills layout and
// seeds the source skill folder with a couple of files.
func newTestEngine(t *testing.T) (*Engine, Paths) {
	t.Helper()
	tmpDir := t.TempDir()

	paths := Paths{
		ProjectDir: filepath.Join(tmpDir, "project"),
		Source:     filepath.Join(tmpDir, "project", SkillDirName),
		Dest:       filepath.Join(tmpDir, "skills", SkillName),
	}

	writeSkillTree(t, paths.Source)

	return New(paths, io.Discard), paths
}

func writeSkillTree(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, "scripts"), 0755); err != nil {
		t.Fatal(err)
	}
	manifest := "---\nname: github-pages-deploy\ndescription: test skill\n---\nbody\n"
	if err := os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "scripts", "deploy.sh"), []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
}

func TestBackupNoopWhenNotInstalled(t *testing.T) {
	e, _ := newTestEngine(t)

	backup, err := e.Backup()
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}
	if backup != "" {
		t.Errorf("expected no backup path, got %q", backup)
	}
}

func TestBackupCreatesTimestampedCopy(t *testing.T) {
	e, paths := newTestEngine(t)
	writeSkillTree(t, paths.Dest)

	fixed := time.Date(2025, 8, 25, 14, 25, 30, 0, time.UTC)
	e.now = func() time.Time { return fixed }

	backup, err := e.Backup()
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}

	want := filepath.Join(paths.SkillsDir(), SkillName+"_backup_20250825_142530")
	if backup != want {
		t.Errorf("backup path = %q, want %q", backup, want)
	}
	if _, err := os.Stat(filepath.Join(backup, "SKILL.md")); err != nil {
		t.Errorf("backup missing SKILL.md: %v", err)
	}
	// Original must still be in place.
	if _, err := os.Stat(filepath.Join(paths.Dest, "SKILL.md")); err != nil {
		t.Errorf("original skill disturbed by backup: %v", err)
	}
}

func TestSyncCreatesDestFresh(t *testing.T) {
	e, paths := newTestEngine(t)

	if err := e.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if _, err := os.Stat(filepath.Join(paths.Dest, "scripts", "deploy.sh")); err != nil {
		t.Errorf("synced tree incomplete: %v", err)
	}
}

func TestSyncReplacesExistingDest(t *testing.T) {
	e, paths := newTestEngine(t)

	// Install a stale version with an extra file.
	writeSkillTree(t, paths.Dest)
	stale := filepath.Join(paths.Dest, "stale.txt")
	if err := os.WriteFile(stale, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := e.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if _, err := os.Stat(stale); err == nil {
		t.Error("stale file should be gone after sync")
	}
	if _, err := os.Stat(filepath.Join(paths.Dest, "SKILL.md")); err != nil {
		t.Errorf("synced tree incomplete: %v", err)
	}
}

func TestSyncMissingSourceLeavesDestUntouched(t *testing.T) {
	e, paths := newTestEngine(t)

	// Install a version, then remove the source.
	writeSkillTree(t, paths.Dest)
	marker := filepath.Join(paths.Dest, "keep.txt")
	if err := os.WriteFile(marker, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.RemoveAll(paths.Source); err != nil {
		t.Fatal(err)
	}

	err := e.Sync()
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if !strings.Contains(err.Error(), paths.Source) {
		t.Errorf("error should name the missing source path: %v", err)
	}

	// The destination must not have been removed or modified.
	if _, statErr := os.Stat(marker); statErr != nil {
		t.Errorf("destination was mutated despite missing source: %v", statErr)
	}
}

func TestSyncExcludesJunkEntries(t *testing.T) {
	e, paths := newTestEngine(t)

	if err := os.MkdirAll(filepath.Join(paths.Source, ".git", "objects"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(paths.Source, ".DS_Store"), []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	if err := e.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if _, err := os.Stat(filepath.Join(paths.Dest, ".git")); err == nil {
		t.Error(".git should not be copied")
	}
	if _, err := os.Stat(filepath.Join(paths.Dest, ".DS_Store")); err == nil {
		t.Error(".DS_Store should not be copied")
	}
}

func TestPackageArchiveEntries(t *testing.T) {
	e, paths := newTestEngine(t)
	if err := e.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	archive, size, err := e.Package()
	if err != nil {
		t.Fatalf("Package: %v", err)
	}
	if size <= 0 {
		t.Errorf("archive size = %d, want > 0", size)
	}
	if archive != paths.ArchivePath() {
		t.Errorf("archive path = %q, want %q", archive, paths.ArchivePath())
	}

	names := readArchiveNames(t, archive)
	want := map[string]bool{"SKILL.md": false, "scripts/deploy.sh": false}
	for _, name := range names {
		if strings.HasPrefix(name, SkillName+"/") {
			t.Errorf("entry %q should be relative to the skill directory", name)
		}
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("archive missing entry %q", name)
		}
	}
}

func TestPackageReplacesOldArchive(t *testing.T) {
	e, paths := newTestEngine(t)
	if err := e.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if err := os.WriteFile(paths.ArchivePath(), []byte("old junk"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := e.Package(); err != nil {
		t.Fatalf("Package: %v", err)
	}

	names := readArchiveNames(t, paths.ArchivePath())
	if len(names) == 0 {
		t.Error("replacement archive is empty")
	}
}

func TestRunAllStepsSucceed(t *testing.T) {
	var out bytes.Buffer
	e, paths := newTestEngine(t)
	e.out = &out
	writeSkillTree(t, paths.Dest)

	res, err := e.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !res.Synced || !res.Packaged || !res.ProjectUpdated {
		t.Errorf("flags = synced:%v packaged:%v project:%v, want all true",
			res.Synced, res.Packaged, res.ProjectUpdated)
	}
	if res.BackupPath == "" {
		t.Error("expected a backup path for a pre-existing install")
	}
	if _, err := os.Stat(paths.ProjectArchivePath()); err != nil {
		t.Errorf("project archive missing: %v", err)
	}
}

func TestRunPackagingFailureIsSoft(t *testing.T) {
	var out bytes.Buffer
	e, paths := newTestEngine(t)
	e.out = &out

	// A directory squatting on the archive path makes packaging fail.
	if err := os.MkdirAll(filepath.Join(paths.ArchivePath(), "blocker"), 0755); err != nil {
		t.Fatal(err)
	}

	res, err := e.Run()
	if err != nil {
		t.Fatalf("Run should not fail on packaging errors: %v", err)
	}

	if !res.Synced {
		t.Error("sync should have succeeded")
	}
	if res.Packaged {
		t.Error("packaging should have failed")
	}
	if res.ProjectUpdated {
		t.Error("project update should be skipped when packaging fails")
	}
}

func TestRunMissingSourceFailsWithoutMutation(t *testing.T) {
	e, paths := newTestEngine(t)
	if err := os.RemoveAll(paths.Source); err != nil {
		t.Fatal(err)
	}

	res, err := e.Run()
	if err == nil {
		t.Fatal("expected Run to fail for a missing source")
	}
	if res.Synced {
		t.Error("synced flag should be false")
	}
	if _, statErr := os.Stat(paths.Dest); statErr == nil {
		t.Error("destination should not be created when the source is missing")
	}
}

func TestUpdateProjectPackageRequiresArchive(t *testing.T) {
	e, _ := newTestEngine(t)
	if err := e.UpdateProjectPackage(); err == nil {
		t.Error("expected error when no archive exists")
	}
}

func TestRestoreFromBackup(t *testing.T) {
	e, paths := newTestEngine(t)
	writeSkillTree(t, paths.Dest)

	fixed := time.Date(2025, 8, 25, 9, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return fixed }
	backup, err := e.Backup()
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}

	// Break the installed copy, then restore.
	if err := os.RemoveAll(paths.Dest); err != nil {
		t.Fatal(err)
	}
	if err := e.Restore(backup); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if _, err := os.Stat(filepath.Join(paths.Dest, "SKILL.md")); err != nil {
		t.Errorf("restored tree incomplete: %v", err)
	}
}

func TestListBackupsNewestFirst(t *testing.T) {
	e, paths := newTestEngine(t)
	writeSkillTree(t, paths.Dest)

	stamps := []time.Time{
		time.Date(2025, 8, 23, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 25, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 24, 10, 0, 0, 0, time.UTC),
	}
	for _, ts := range stamps {
		e.now = func() time.Time { return ts }
		if _, err := e.Backup(); err != nil {
			t.Fatalf("Backup: %v", err)
		}
	}

	backups, err := paths.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("got %d backups, want 3", len(backups))
	}
	if !strings.HasSuffix(backups[0], "20250825_100000") {
		t.Errorf("newest backup should be first, got %q", backups[0])
	}
}

func readArchiveNames(t *testing.T, archivePath string) []string {
	t.Helper()
	f, err := os.Open(archivePath)
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	defer f.Close()

	var names []string
	tr := tar.NewReader(f)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("reading archive: %v", err)
		}
		names = append(names, hdr.Name)
	}
	return names
}
