package depsgen

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Marshal renders a manifest as 2-space indented JSON.
func Marshal(m *Manifest) ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", FileName, err)
	}
	return data, nil
}

// Generate writes the default manifest to dir/deps.json, replacing any
// existing file, and reports progress to w. It returns the written path.
func Generate(dir string, w io.Writer) (string, error) {
	fmt.Fprintln(w, "🔧 Generating NuGet dependencies...")

	data, err := Marshal(NewManifest())
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(w, "✅ %s generated\n", FileName)
	fmt.Fprintln(w, "   Add NuGet packages to your .csproj, then run this script again")
	return path, nil
}
