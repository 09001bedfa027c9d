package skillsync

import (
	"archive/tar"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Pack archives a skill directory into archivePath, replacing any existing
// archive. Returns the archive size in bytes.
func Pack(skillDir, archivePath string) (int64, error) {
	if _, err := os.Stat(archivePath); err == nil {
		if err := os.Remove(archivePath); err != nil {
			return 0, fmt.Errorf("removing old archive %s: %w", archivePath, err)
		}
	}
	return writeArchive(skillDir, archivePath)
}

// writeArchive creates an uncompressed tar archive at archivePath containing
// every regular file under dir. Entry names are slash-separated paths relative
// to dir itself, so unpacking into an empty skill directory recreates the
// tree. Returns the archive size in bytes.
func writeArchive(dir, archivePath string) (int64, error) {
	f, err := os.Create(archivePath)
	if err != nil {
		return 0, fmt.Errorf("creating archive %s: %w", archivePath, err)
	}
	defer f.Close()

	tw := tar.NewWriter(f)

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return fmt.Errorf("building header for %s: %w", rel, err)
		}
		hdr.Name = filepath.ToSlash(rel)

		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("writing header for %s: %w", rel, err)
		}

		src, err := os.Open(path)
		if err != nil {
			return err
		}
		_, copyErr := io.Copy(tw, src)
		src.Close()
		if copyErr != nil {
			return fmt.Errorf("archiving %s: %w", rel, copyErr)
		}
		return nil
	})
	if walkErr != nil {
		return 0, walkErr
	}

	if err := tw.Close(); err != nil {
		return 0, fmt.Errorf("finalizing archive: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing archive: %w", err)
	}

	info, err := os.Stat(archivePath)
	if err != nil {
		return 0, fmt.Errorf("stating archive: %w", err)
	}
	return info.Size(), nil
}
