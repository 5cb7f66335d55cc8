package nix

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinVersion is the oldest nix release with flake support.
const MinVersion = "2.4.0"

// FlakeFile marks a directory as a nix polyglot project.
const FlakeFile = "flake.nix"

var versionPattern = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// ExitError reports a nix invocation that ran but exited non-zero.
type ExitError struct {
	Args []string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("nix %s exited with status %d", strings.Join(e.Args, " "), e.Code)
}

// Runner executes nix commands in a project directory.
type Runner struct {
	Bin string
	Dir string

	// Stdin, Stdout and Stderr default to the process streams when nil.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner returns a Runner for the given nix executable and directory.
// An empty bin means "nix" from PATH.
func NewRunner(bin, dir string) *Runner {
	if bin == "" {
		bin = "nix"
	}
	return &Runner{Bin: bin, Dir: dir}
}

// Check verifies that nix is installed, new enough for flakes, and that the
// project directory contains a flake.nix.
func (r *Runner) Check(ctx context.Context) error {
	if _, err := exec.LookPath(r.Bin); err != nil {
		return fmt.Errorf("nix is not installed or not in PATH, please install Nix first")
	}
	if _, err := os.Stat(filepath.Join(r.Dir, FlakeFile)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("no %s found in %s, are you in a nix polyglot project?", FlakeFile, r.dirName())
		}
		return fmt.Errorf("checking %s: %w", FlakeFile, err)
	}

	v, err := r.Version(ctx)
	if err != nil {
		return err
	}
	if v.LessThan(semver.MustParse(MinVersion)) {
		return fmt.Errorf("nix %s is too old: flakes need nix %s or newer", v, MinVersion)
	}
	return nil
}

// Version runs `nix --version` and parses the reported release.
func (r *Runner) Version(ctx context.Context) (*semver.Version, error) {
	out, err := r.Output(ctx, "--version")
	if err != nil {
		return nil, err
	}
	return ParseVersion(out)
}

// ParseVersion extracts the first dotted version number from `nix --version`
// output, e.g. "nix (Nix) 2.18.1" or "nix (Nix) 2.19.0pre20231108_dirty".
func ParseVersion(output string) (*semver.Version, error) {
	raw := versionPattern.FindString(output)
	if raw == "" {
		return nil, fmt.Errorf("no version found in %q", strings.TrimSpace(output))
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing nix version %q: %w", raw, err)
	}
	return v, nil
}

// Run executes nix with args, streaming its output.
func (r *Runner) Run(ctx context.Context, args ...string) error {
	cmd := r.command(ctx, args)
	cmd.Stdin = r.stdin()
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()
	return r.wrap(args, cmd.Run())
}

// Develop runs command inside the project's development shell.
func (r *Runner) Develop(ctx context.Context, command ...string) error {
	args := append([]string{"develop", "--command"}, command...)
	return r.Run(ctx, args...)
}

// Output executes nix with args and returns its stdout. Stderr is still
// streamed so failures stay visible.
func (r *Runner) Output(ctx context.Context, args ...string) (string, error) {
	cmd := r.command(ctx, args)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = r.stderr()
	if err := r.wrap(args, cmd.Run()); err != nil {
		return stdout.String(), err
	}
	return stdout.String(), nil
}

func (r *Runner) command(ctx context.Context, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, r.Bin, args...)
	cmd.Dir = r.Dir
	return cmd
}

func (r *Runner) wrap(args []string, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Args: args, Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("running nix %s: %w", strings.Join(args, " "), err)
}

func (r *Runner) dirName() string {
	if r.Dir == "" {
		return "current directory"
	}
	return r.Dir
}

func (r *Runner) stdin() io.Reader {
	if r.Stdin == nil {
		return os.Stdin
	}
	return r.Stdin
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}
	return r.Stderr
}
