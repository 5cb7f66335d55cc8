package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nix-polyglot/glot/internal/config"
	"github.com/nix-polyglot/glot/internal/nix"
	"github.com/nix-polyglot/glot/internal/project"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		if versionJSON {
			info := map[string]string{
				"version": buildVersion,
				"commit":  buildCommit,
				"date":    buildDate,
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "Glot version: %s (commit: %s, built: %s)\n\n", buildVersion, buildCommit, buildDate)

		dir, err := resolveProjectDir()
		if err != nil {
			return err
		}
		if _, err := os.Stat(filepath.Join(dir, nix.FlakeFile)); err == nil {
			lang, _ := project.Detect(dir)
			fmt.Fprintln(out, "Nix flake project detected")
			fmt.Fprintf(out, "Project type: %s\n", lang)
		}

		fmt.Fprintln(out, "\nEnvironment:")
		r := newRunner(cmd, dir)
		r.Stderr = io.Discard
		if v, err := r.Version(cmd.Context()); err == nil {
			fmt.Fprintf(out, "Nix: %s\n", v)
		} else {
			fmt.Fprintf(out, "Nix: Not available (%s)\n", config.NixBin())
		}
		fmt.Fprintf(out, "Working directory: %s\n", dir)
		return nil
	},
}
