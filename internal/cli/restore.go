package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/pagesmith-labs/pagesmith/internal/skillsync"
	"github.com/spf13/cobra"
)

var (
	restoreList bool
	restoreFrom string
	restoreYes  bool
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the installed skill from a backup",
	Long: `Replace the installed skill with a backup created by a previous sync.

Without flags the most recent backup is restored. Use --list to see available
backups, or --from to restore a specific one.`,
	Args: cobra.NoArgs,
	RunE: runRestore,
}

func init() {
	restoreCmd.Flags().BoolVar(&restoreList, "list", false, "List available backups")
	restoreCmd.Flags().StringVar(&restoreFrom, "from", "", "Backup directory to restore")
	restoreCmd.Flags().BoolVarP(&restoreYes, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

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

	backups, err := paths.ListBackups()
	if err != nil {
		return err
	}

	if restoreList {
		if len(backups) == 0 {
			fmt.Fprintln(out, "No backups found.")
			return nil
		}
		fmt.Fprintln(out, "Available backups (newest first):")
		for _, b := range backups {
			fmt.Fprintf(out, "  %s\n", b)
		}
		return nil
	}

	backup := restoreFrom
	if backup == "" {
		if len(backups) == 0 {
			return fmt.Errorf("no backups found for %s", paths.Dest)
		}
		backup = backups[0]
	}

	fmt.Fprintf(out, "Restoring %s\n", paths.Dest)
	fmt.Fprintf(out, "from      %s\n\n", backup)

	if !restoreYes {
		yes, interrupted := confirm(ctx, cmd, "Continue? (y/n) ")
		if interrupted {
			fmt.Fprintln(out, "\n\nRestore cancelled by user.")
			return nil
		}
		if !yes {
			fmt.Fprintln(out, "Restore cancelled.")
			return nil
		}
	}

	engine := skillsync.New(paths, out)
	if err := engine.Restore(backup); err != nil {
		return fmt.Errorf("restoring skill: %w", err)
	}

	fmt.Fprintln(out, "Restored installed skill from backup.")
	return nil
}
