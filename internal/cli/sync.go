package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/pagesmith-labs/pagesmith/internal/branding"
	"github.com/pagesmith-labs/pagesmith/internal/manifest"
	"github.com/pagesmith-labs/pagesmith/internal/skillsync"
	"github.com/spf13/cobra"
)

var syncYes bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push the project skill to the installed-skill directory",
	Long: `Replace the installed github-pages-deploy skill with the project's version.

The pipeline backs up the installed skill, syncs the project's skill folder
over it, repackages the skill into a .skill archive, and copies the archive
back into the project. Only the sync step is fatal; backup and packaging
failures are reported and the run continues.

Source and destination default to the conventional layout and can be
overridden via PAGESMITH_SOURCE / PAGESMITH_DEST or config keys paths.source
and paths.dest.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVarP(&syncYes, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Catch SIGINT for the whole run so an interrupt — at the confirmation
	// prompt or mid-pipeline — becomes a clean zero-exit cancellation.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	projectDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	paths, err := skillsync.DefaultPaths(projectDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Project directory: %s\n", paths.ProjectDir)
	fmt.Fprintf(out, "Source skill:      %s\n", paths.Source)
	fmt.Fprintf(out, "Destination:       %s\n\n", paths.Dest)

	if _, err := os.Stat(paths.Source); err != nil {
		return fmt.Errorf("source skill directory not found: %s (expected a %q folder in your project)",
			paths.Source, skillsync.SkillDirName)
	}

	// Pre-flight manifest check: warn but never block the sync.
	checkManifest(cmd, paths.Source)

	fmt.Fprintln(out, "This will overwrite the installed skill with your project version.")
	fmt.Fprintln(out, "A backup will be created automatically.")
	fmt.Fprintln(out)

	if !syncYes {
		yes, interrupted := confirm(ctx, cmd, "Continue? (y/n) ")
		if interrupted {
			fmt.Fprintln(out, "\n\nSync cancelled by user.")
			return nil
		}
		if !yes {
			fmt.Fprintln(out, "Sync cancelled.")
			return nil
		}
	}

	engine := skillsync.New(paths, out)

	type outcome struct {
		result *skillsync.Result
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, runErr := engine.Run()
		done <- outcome{result, runErr}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(out, "\n\nSync cancelled by user.")
		return nil
	case oc := <-done:
		oc.result.PrintSummary(out)
		if oc.err != nil {
			return fmt.Errorf("sync failed: %w", oc.err)
		}
	}

	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Restart the host application to reload the skill")
	fmt.Fprintln(out, "  2. Test the skill by asking: 'deploy to GitHub Pages'")
	fmt.Fprintf(out, "  3. If something is wrong, run `%s restore`\n", branding.CLIName())
	return nil
}

// checkManifest validates the source skill's SKILL.md and prints warnings.
func checkManifest(cmd *cobra.Command, sourceDir string) {
	errOut := cmd.ErrOrStderr()

	manifestPath := filepath.Join(sourceDir, manifest.ManifestFile)
	if _, err := os.Stat(manifestPath); err != nil {
		fmt.Fprintf(errOut, "warning: skill has no %s\n", manifest.ManifestFile)
		return
	}

	result, err := manifest.ValidateFile(manifestPath)
	if err != nil {
		fmt.Fprintf(errOut, "warning: could not validate %s: %v\n", manifest.ManifestFile, err)
		return
	}
	for _, issue := range result.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		fmt.Fprintf(errOut, "warning: %s: %s\n", manifest.ManifestFile, msg)
	}
}

// confirm prompts on stdin and returns yes for y/yes (case-insensitive).
// The read runs in a goroutine so a context cancellation (SIGINT) while the
// prompt is blocked is reported as interrupted instead of hanging; the
// abandoned read is harmless because the process is about to exit.
func confirm(ctx context.Context, cmd *cobra.Command, prompt string) (yes, interrupted bool) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	answerCh := make(chan string, 1)
	go func() {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		if !scanner.Scan() {
			answerCh <- ""
			return
		}
		answerCh <- scanner.Text()
	}()

	select {
	case <-ctx.Done():
		return false, true
	case answer := <-answerCh:
		answer = strings.TrimSpace(strings.ToLower(answer))
		return answer == "y" || answer == "yes", false
	}
}
