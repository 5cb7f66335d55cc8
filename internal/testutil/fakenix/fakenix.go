// Package fakenix installs a shell-script stand-in for the nix CLI so tests
// can exercise command dispatch without a nix installation.
package fakenix

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const script = `#!/bin/sh
printf '%s\n' "$*" >> "$FAKE_NIX_LOG"
if [ "$1" = "--version" ]; then
  echo "nix (Nix) ${FAKE_NIX_VERSION:-2.18.1}"
  exit 0
fi
if [ -n "$FAKE_NIX_FAIL" ]; then
  case "$*" in
    *"$FAKE_NIX_FAIL"*)
      echo "fake nix: $* failed" >&2
      exit "${FAKE_NIX_EXIT:-1}"
      ;;
  esac
fi
echo "fake nix: $*"
`

// Nix is an installed fake nix binary.
type Nix struct {
	Bin string
	log string
}

// Install writes the fake binary into a temp dir and points FAKE_NIX_LOG at
// a fresh call log. Tests are skipped on Windows.
func Install(t *testing.T) *Nix {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake nix requires a POSIX shell")
	}

	dir := t.TempDir()
	bin := filepath.Join(dir, "nix")
	if err := os.WriteFile(bin, []byte(script), 0755); err != nil {
		t.Fatalf("writing fake nix: %v", err)
	}

	log := filepath.Join(dir, "calls.log")
	t.Setenv("FAKE_NIX_LOG", log)
	t.Setenv("FAKE_NIX_FAIL", "")
	t.Setenv("FAKE_NIX_EXIT", "")
	t.Setenv("FAKE_NIX_VERSION", "")
	return &Nix{Bin: bin, log: log}
}

// Version makes `nix --version` report v.
func (n *Nix) Version(t *testing.T, v string) {
	t.Helper()
	t.Setenv("FAKE_NIX_VERSION", v)
}

// FailOn makes any invocation whose argument line contains substr exit with code.
func (n *Nix) FailOn(t *testing.T, substr string, code string) {
	t.Helper()
	t.Setenv("FAKE_NIX_FAIL", substr)
	t.Setenv("FAKE_NIX_EXIT", code)
}

// Calls returns the argument lines the fake received, in order, excluding
// version probes.
func (n *Nix) Calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(n.log)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("reading fake nix log: %v", err)
	}
	var calls []string
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		if line == "" || line == "--version" {
			continue
		}
		calls = append(calls, line)
	}
	return calls
}

// Flake creates an empty flake.nix in dir.
func Flake(t *testing.T, dir string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "flake.nix"), []byte("{ outputs = _: { }; }\n"), 0644); err != nil {
		t.Fatalf("writing flake.nix: %v", err)
	}
}
