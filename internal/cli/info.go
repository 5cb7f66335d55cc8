package cli

import (
	"fmt"

	"github.com/nix-polyglot/glot/internal/project"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show project info",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, dir, err := projectRunner(cmd)
		if err != nil {
			return err
		}

		lang, err := project.Detect(dir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "📋 Project Information")
		fmt.Fprintln(out, "======================")
		fmt.Fprintf(out, "Working directory: %s\n", dir)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Project type: %s\n", lang)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Flake status:")
		if err := r.Run(cmd.Context(), "flake", "show"); err != nil {
			errorMsg(cmd.ErrOrStderr(), "Flake validation failed")
			return nil
		}
		success(out, "Flake is valid")
		return nil
	},
}
