package main

import (
	"errors"
	"os"

	"github.com/nix-polyglot/glot/internal/cli"
	"github.com/nix-polyglot/glot/internal/nix"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "1.2.0"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		var exitErr *nix.ExitError
		if errors.As(err, &exitErr) && exitErr.Code > 0 {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
