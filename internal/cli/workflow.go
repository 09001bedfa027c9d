package cli

import (
	"fmt"

	"github.com/pagesmith-labs/pagesmith/internal/workflow"
	"github.com/spf13/cobra"
)

var workflowList bool

var workflowCmd = &cobra.Command{
	Use:   "workflow <project-type> <repo-name> [output-path]",
	Short: "Generate a GitHub Pages deployment workflow",
	Long: `Generate a GitHub Actions workflow that builds and deploys a project to
GitHub Pages. The workflow is selected by project type; react-vite and cra
projects get the repository name substituted into their base-path setting.

The default output path is .github/workflows/deploy.yml under the current
directory. Parent directories are created as needed and an existing file is
overwritten.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if workflowList {
			return nil
		}
		return cobra.RangeArgs(2, 3)(cmd, args)
	},
	RunE: runWorkflow,
}

func init() {
	workflowCmd.Flags().BoolVar(&workflowList, "list", false, "List supported project types")
	rootCmd.AddCommand(workflowCmd)
}

func runWorkflow(cmd *cobra.Command, args []string) error {
	if workflowList {
		fmt.Fprintln(cmd.OutOrStdout(), "Supported project types:")
		for _, pt := range workflow.Types() {
			note := ""
			if pt.UsesRepoName() {
				note = ", base path /<repo-name>/"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %s (artifact: %s%s)\n", pt, pt.Summary(), pt.ArtifactDir(), note)
		}
		return nil
	}

	pt, err := workflow.ParseProjectType(args[0])
	if err != nil {
		return err
	}
	repoName := args[1]

	outputPath := ""
	if len(args) > 2 {
		outputPath = args[2]
	}

	written, err := workflow.Write(pt, repoName, outputPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created GitHub Actions workflow at: %s\n", written)
	return nil
}
