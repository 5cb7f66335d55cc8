package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// artifactPatterns are the build outputs of every template, relative to the
// project root.
var artifactPatterns = []string{
	"target",
	"result",
	"result-*",
	".cargo",
	"bin",
	"obj",
	"build",
	"__pycache__",
}

// Clean removes build artifacts under dir and returns the removed paths,
// sorted.
func Clean(dir string) ([]string, error) {
	var removed []string
	for _, pattern := range artifactPatterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return removed, fmt.Errorf("matching %s: %w", pattern, err)
		}
		for _, match := range matches {
			if err := os.RemoveAll(match); err != nil {
				return removed, fmt.Errorf("removing %s: %w", match, err)
			}
			removed = append(removed, match)
		}
	}
	sort.Strings(removed)
	return removed, nil
}
