package cli

import (
	"errors"

	"github.com/nix-polyglot/glot/internal/nix"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(shellCmd)
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Enter dev environment",
	Long:  `Start the project's nix development shell. The shell's exit status becomes glot's.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, _, err := projectRunner(cmd)
		if err != nil {
			return err
		}

		info(cmd.OutOrStdout(), "Entering development shell...")
		err = r.Run(cmd.Context(), "develop")
		var exitErr *nix.ExitError
		if errors.As(err, &exitErr) {
			return &quietError{err: err}
		}
		return err
	},
}
