package cli

import (
	"github.com/nix-polyglot/glot/internal/config"
	"github.com/nix-polyglot/glot/internal/nix"
	"github.com/spf13/cobra"
)

// newRunner returns a nix runner for dir wired to the command's streams.
func newRunner(cmd *cobra.Command, dir string) *nix.Runner {
	r := nix.NewRunner(config.NixBin(), dir)
	r.Stdin = cmd.InOrStdin()
	r.Stdout = cmd.OutOrStdout()
	r.Stderr = cmd.ErrOrStderr()
	return r
}

// projectRunner resolves the project directory and verifies it can be driven
// through nix.
func projectRunner(cmd *cobra.Command) (*nix.Runner, string, error) {
	dir, err := resolveProjectDir()
	if err != nil {
		return nil, "", err
	}
	r := newRunner(cmd, dir)
	if err := r.Check(cmd.Context()); err != nil {
		return nil, "", err
	}
	return r, dir, nil
}
