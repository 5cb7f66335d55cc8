package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/nix-polyglot/glot/internal/nix"
	"github.com/nix-polyglot/glot/internal/project"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(checkCmd)
}

var fmtCmd = &cobra.Command{
	Use:     "fmt",
	Aliases: []string{"format"},
	Short:   "Format code",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, _, err := projectRunner(cmd)
		if err != nil {
			return err
		}
		return formatCode(cmd.Context(), r, cmd.OutOrStdout())
	},
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint code",
	Long:  `Run the project's linter inside the nix development shell.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, dir, err := projectRunner(cmd)
		if err != nil {
			return err
		}
		tc, lang, err := toolchain(dir)
		if err != nil {
			return err
		}
		return lintCode(cmd.Context(), r, cmd.OutOrStdout(), lang, tc)
	},
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run tests",
	Long:  `Run the project's test suite inside the nix development shell.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, dir, err := projectRunner(cmd)
		if err != nil {
			return err
		}
		tc, lang, err := toolchain(dir)
		if err != nil {
			return err
		}
		return testCode(cmd.Context(), r, cmd.OutOrStdout(), lang, tc)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run all checks",
	Long:  `Format, lint, test and build the project, stopping at the first failure.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, dir, err := projectRunner(cmd)
		if err != nil {
			return err
		}
		tc, lang, err := toolchain(dir)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		info(out, "Running comprehensive checks...")

		steps := []func() error{
			func() error { return formatCode(ctx, r, out) },
			func() error { return lintCode(ctx, r, out, lang, tc) },
			func() error { return testCode(ctx, r, out, lang, tc) },
			func() error { return r.Run(ctx, "build") },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return fmt.Errorf("some checks failed, please review the output above: %w", err)
			}
		}

		success(out, "All checks passed!")
		return nil
	},
}

func toolchain(dir string) (project.Toolchain, project.Language, error) {
	lang, err := project.Detect(dir)
	if err != nil {
		return project.Toolchain{}, lang, err
	}
	tc, err := project.ToolchainFor(lang)
	if err != nil {
		return project.Toolchain{}, lang, err
	}
	return tc, lang, nil
}

func formatCode(ctx context.Context, r *nix.Runner, out io.Writer) error {
	info(out, "Formatting code...")
	if err := r.Run(ctx, "fmt"); err != nil {
		return fmt.Errorf("code formatting failed: %w", err)
	}
	success(out, "Code formatting completed")
	return nil
}

func lintCode(ctx context.Context, r *nix.Runner, out io.Writer, lang project.Language, tc project.Toolchain) error {
	info(out, fmt.Sprintf("Running %s linting (%s)...", title(string(lang)), strings.Join(tc.Lint, " ")))
	if err := r.Develop(ctx, tc.Lint...); err != nil {
		return fmt.Errorf("linting failed: %w", err)
	}
	success(out, "Linting completed")
	return nil
}

func testCode(ctx context.Context, r *nix.Runner, out io.Writer, lang project.Language, tc project.Toolchain) error {
	info(out, fmt.Sprintf("Running %s tests...", title(string(lang))))
	if err := r.Develop(ctx, tc.Test...); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	success(out, "Tests completed")
	return nil
}
