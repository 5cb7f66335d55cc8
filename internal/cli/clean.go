package cli

import (
	"fmt"
	"path/filepath"

	"github.com/nix-polyglot/glot/internal/project"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cleanCmd)
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean artifacts",
	Long:  `Remove build outputs (target/, result, result-*, .cargo/, bin/, obj/, build/, __pycache__/).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveProjectDir()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		info(out, "Cleaning build artifacts...")
		removed, err := project.Clean(dir)
		for _, path := range removed {
			rel, relErr := filepath.Rel(dir, path)
			if relErr != nil {
				rel = path
			}
			fmt.Fprintf(out, "  removed %s\n", rel)
		}
		if err != nil {
			return err
		}
		success(out, "Clean completed!")
		return nil
	},
}
