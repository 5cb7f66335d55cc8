package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nix-polyglot/glot/internal/branding"
	"github.com/nix-polyglot/glot/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	projectDir string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project-dir", "C", "", "Project directory (default: current directory)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.DisplayName() + " - " + branding.Description(),
	Long: branding.DisplayName() + ` drives projects generated from the ` + branding.Generator() + ` templates.
Build, run, lint and test commands are delegated to the project's nix flake;
greet and deps run the bundled Python and C# template programs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		var quiet *quietError
		if !errors.As(err, &quiet) {
			errorMsg(rootCmd.ErrOrStderr(), err.Error())
		}
	}
	return err
}

// quietError carries an exit status that has already been reported.
type quietError struct {
	err error
}

func (q *quietError) Error() string { return q.err.Error() }
func (q *quietError) Unwrap() error { return q.err }

// resolveProjectDir returns the absolute project directory from --project-dir
// or the working directory.
func resolveProjectDir() (string, error) {
	dir := projectDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving project directory %s: %w", dir, err)
	}
	return abs, nil
}
