package cli

import (
	"github.com/pagesmith-labs/pagesmith/internal/branding"
	"github.com/pagesmith-labs/pagesmith/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates GitHub Pages deployment workflows and keeps the
github-pages-deploy skill in sync between your project and the host
application's installed-skill directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Path overrides may come from ~/.pagesmith/config.yaml.
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
