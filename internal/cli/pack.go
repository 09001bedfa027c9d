package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pagesmith-labs/pagesmith/internal/skillsync"
	"github.com/spf13/cobra"
)

var packOutput string

var packCmd = &cobra.Command{
	Use:   "pack [skill-dir]",
	Short: "Package a skill directory into a .skill archive",
	Long: `Bundle a skill directory into a single uncompressed .skill archive.

The archive contains every regular file under the skill directory, with entry
names relative to the directory itself. By default the skill folder in the
current project is packed and the archive is written next to it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPack,
}

func init() {
	packCmd.Flags().StringVarP(&packOutput, "output", "o", "", "Archive output path")
	rootCmd.AddCommand(packCmd)
}

func runPack(cmd *cobra.Command, args []string) error {
	var skillDir string
	if len(args) > 0 {
		skillDir = args[0]
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		skillDir = filepath.Join(cwd, skillsync.SkillDirName)
	}

	info, err := os.Stat(skillDir)
	if err != nil {
		return fmt.Errorf("skill directory not found: %s", skillDir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", skillDir)
	}

	outPath := packOutput
	if outPath == "" {
		outPath = filepath.Join(filepath.Dir(skillDir), skillsync.SkillName+skillsync.ArchiveExt)
	}

	size, err := skillsync.Pack(skillDir, outPath)
	if err != nil {
		return fmt.Errorf("packing %s: %w", skillDir, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Packaged skill to: %s (%.1f KB)\n", outPath, float64(size)/1024)
	return nil
}
