package skillsync

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// backupTimeLayout is the second-resolution timestamp in backup names.
const backupTimeLayout = "20060102_150405"

// backupPath returns the sibling backup location for the installed skill,
// e.g. github-pages-deploy_backup_20250825_142530.
func (p Paths) backupPath(now time.Time) string {
	return filepath.Join(p.SkillsDir(),
		filepath.Base(p.Dest)+"_backup_"+now.Format(backupTimeLayout))
}

// Backup copies the installed skill to a timestamped sibling directory and
// returns the backup path. If no skill is installed it returns "" with no
// error: nothing to back up is a successful no-op.
func (e *Engine) Backup() (string, error) {
	if _, err := os.Stat(e.paths.Dest); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("checking installed skill: %w", err)
	}

	backup := e.paths.backupPath(e.now())
	if err := copyDir(e.paths.Dest, backup); err != nil {
		return "", fmt.Errorf("copying %s to %s: %w", e.paths.Dest, backup, err)
	}
	return backup, nil
}

// ListBackups returns existing backup directories for the installed skill,
// newest first.
func (p Paths) ListBackups() ([]string, error) {
	entries, err := os.ReadDir(p.SkillsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading skills directory: %w", err)
	}

	prefix := filepath.Base(p.Dest) + "_backup_"
	var backups []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), prefix) {
			backups = append(backups, filepath.Join(p.SkillsDir(), entry.Name()))
		}
	}

	// Timestamp suffixes sort lexicographically; reverse for newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	return backups, nil
}

// Restore replaces the installed skill with the contents of a backup
// directory. The backup itself is left in place.
func (e *Engine) Restore(backup string) error {
	if _, err := os.Stat(backup); err != nil {
		return fmt.Errorf("backup not found: %s", backup)
	}
	return e.replaceDest(backup)
}
