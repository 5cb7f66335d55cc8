package cli

import (
	"fmt"
	"strings"

	"github.com/nix-polyglot/glot/internal/project"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update dependencies",
	Long: `Update the flake lock file, then the language-level dependencies inside the
development shell. A failing language-level update is reported as a warning.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, dir, err := projectRunner(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		info(out, "Updating dependencies...")
		if err := r.Run(cmd.Context(), "flake", "update"); err != nil {
			return fmt.Errorf("failed to update flake dependencies: %w", err)
		}

		lang, err := project.Detect(dir)
		if err != nil {
			return err
		}
		if tc, err := project.ToolchainFor(lang); err == nil && len(tc.Update) > 0 {
			if err := r.Develop(cmd.Context(), tc.Update...); err != nil {
				warning(cmd.ErrOrStderr(), fmt.Sprintf("Failed to update %s dependencies (%s)", lang, strings.Join(tc.Update, " ")))
			}
		}

		success(out, "Dependencies updated!")
		return nil
	},
}
