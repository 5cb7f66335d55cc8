package cli

import (
	"fmt"
	"path/filepath"

	"github.com/nix-polyglot/glot/internal/depsgen"
	"github.com/spf13/cobra"
)

var depsCheck bool

func init() {
	depsCmd.Flags().BoolVar(&depsCheck, "check", false, "Validate the existing deps.json instead of regenerating it")
	rootCmd.AddCommand(depsCmd)
}

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Generate deps.json for NuGet dependencies",
	Long: `Write the default deps.json descriptor for a C#/.NET console project.

The file lists runtime dependencies for win-x64, linux-x64, osx-x64 and
osx-arm64 plus native libraries. Any existing deps.json is replaced.
With --check the existing file is validated against the descriptor schema.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveProjectDir()
		if err != nil {
			return err
		}

		if depsCheck {
			return checkDeps(cmd, filepath.Join(dir, depsgen.FileName))
		}

		_, err = depsgen.Generate(dir, cmd.OutOrStdout())
		return err
	},
}

func checkDeps(cmd *cobra.Command, path string) error {
	result, err := depsgen.ValidateFile(path)
	if err != nil {
		return err
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			fmt.Fprintf(cmd.ErrOrStderr(), "  - %s (%s)\n", issue, issue.Keyword)
		}
		return fmt.Errorf("%s is invalid (%d issues)", path, len(result.Issues))
	}
	success(cmd.OutOrStdout(), fmt.Sprintf("%s is valid", depsgen.FileName))
	return nil
}
