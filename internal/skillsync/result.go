package skillsync

import (
	"fmt"
	"io"
	"strings"
)

// Result records what a pipeline run accomplished. It exists only to print
// the final summary.
type Result struct {
	Source         string
	Dest           string
	BackupPath     string
	ArchivePath    string
	Synced         bool
	Packaged       bool
	ProjectUpdated bool
}

const summaryRule = 60

// PrintSummary writes the fixed-format summary block for a run.
func (r *Result) PrintSummary(w io.Writer) {
	rule := strings.Repeat("=", summaryRule)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "SYNC SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Source:      %s\n", r.Source)
	fmt.Fprintf(w, "Destination: %s\n", r.Dest)
	fmt.Fprintf(w, "Status:      %s\n", statusWord(r.Synced))
	if r.Packaged {
		fmt.Fprintln(w, "Packaged:    YES")
	}
	if r.ProjectUpdated {
		fmt.Fprintln(w, "Project:     UPDATED")
	}
	fmt.Fprintln(w, rule)

	if r.BackupPath != "" {
		fmt.Fprintf(w, "\nBackup saved to: %s\n", r.BackupPath)
		fmt.Fprintln(w, "You can restore it if something goes wrong.")
	}
}

func statusWord(ok bool) string {
	if ok {
		return "SUCCESS"
	}
	return "FAILED"
}
