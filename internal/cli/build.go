package cli

import (
	"fmt"

	"github.com/nix-polyglot/glot/internal/config"
	"github.com/nix-polyglot/glot/internal/project"
	"github.com/spf13/cobra"
)

var (
	buildRelease bool
	runRelease   bool
)

func init() {
	buildCmd.Flags().BoolVar(&buildRelease, "release", false, "Build release variant (default: debug)")
	runCmd.Flags().BoolVar(&runRelease, "release", false, "Run release variant (default: debug)")
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(runCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build [target]",
	Short: "Build project",
	Long: `Build the project or a specific flake output.

Without a target the variant selects the output: .#dev for debug and
.#release for release. The default variant comes from the "variant" config key.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, _, err := projectRunner(cmd)
		if err != nil {
			return err
		}

		variant, err := resolveVariant(buildRelease)
		if err != nil {
			return err
		}

		installable := variant.Target()
		if len(args) == 1 {
			installable = ".#" + args[0]
		}

		out := cmd.OutOrStdout()
		info(out, fmt.Sprintf("Building (%s variant)...", variant))
		if err := r.Run(cmd.Context(), "build", installable); err != nil {
			return fmt.Errorf("%s build failed: %w", title(string(variant)), err)
		}
		success(out, fmt.Sprintf("%s build completed", title(string(variant))))
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run [--release] [-- args...]",
	Short: "Run project",
	Long: `Run the project's flake app. Arguments after -- are passed to the program.

Example:
  glot run --release -- --name Bob`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, _, err := projectRunner(cmd)
		if err != nil {
			return err
		}

		variant, err := resolveVariant(runRelease)
		if err != nil {
			return err
		}

		info(cmd.OutOrStdout(), fmt.Sprintf("Running (%s variant)...", variant))
		nixArgs := []string{"run", variant.Target()}
		if len(args) > 0 {
			nixArgs = append(nixArgs, "--")
			nixArgs = append(nixArgs, args...)
		}
		return r.Run(cmd.Context(), nixArgs...)
	},
}

// resolveVariant picks release when the flag is set, otherwise the
// configured default.
func resolveVariant(release bool) (project.Variant, error) {
	if release {
		return project.Release, nil
	}
	return project.ParseVariant(config.Variant())
}
