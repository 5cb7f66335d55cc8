package depsgen

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const defaultDeps = `{
  "runtime": {
    "win-x64": [],
    "linux-x64": [],
    "osx-x64": [],
    "osx-arm64": []
  },
  "native": {}
}`

func TestMarshalDefault(t *testing.T) {
	data, err := Marshal(NewManifest())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != defaultDeps {
		t.Errorf("Marshal() =\n%s\nwant\n%s", data, defaultDeps)
	}
}

func TestNewManifestPlatformOrder(t *testing.T) {
	m := NewManifest()

	var got []string
	for pair := m.Runtime.Oldest(); pair != nil; pair = pair.Next() {
		got = append(got, pair.Key)
		if pair.Value == nil {
			t.Errorf("platform %s has nil dependency list", pair.Key)
		}
	}

	want := Platforms()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("platform order = %v, want %v", got, want)
	}
	if len(m.Native) != 0 {
		t.Errorf("Native has %d entries, want 0", len(m.Native))
	}
}

func TestGenerateWritesFile(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	path, err := Generate(dir, &out)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if path != filepath.Join(dir, FileName) {
		t.Errorf("path = %q, want %q", path, filepath.Join(dir, FileName))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if string(data) != defaultDeps {
		t.Errorf("file content =\n%s\nwant\n%s", data, defaultDeps)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		t.Fatalf("generated file is not valid JSON: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("top-level keys = %d, want 2", len(keys))
	}
	for _, k := range []string{"runtime", "native"} {
		if _, ok := keys[k]; !ok {
			t.Errorf("missing top-level key %q", k)
		}
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("status output has %d lines, want 3:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "Generating NuGet dependencies") {
		t.Errorf("first status line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "deps.json generated") {
		t.Errorf("second status line = %q", lines[1])
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	path, err := Generate(dir, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("first Generate() error: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Generate(dir, &bytes.Buffer{}); err != nil {
		t.Fatalf("second Generate() error: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("runs differ:\n%s\n---\n%s", first, second)
	}
}

func TestGenerateOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	existing := `{"runtime":{"linux-x64":[{"pname":"Serilog","version":"3.1.1"}]},"native":{}}`
	if err := os.WriteFile(path, []byte(existing), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Generate(dir, &bytes.Buffer{}); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "Serilog") {
		t.Error("previous dependency entries were merged into the new file")
	}
	if string(data) != defaultDeps {
		t.Errorf("file content =\n%s\nwant default", data)
	}
}

func TestGenerateMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	var out bytes.Buffer

	if _, err := Generate(dir, &out); err == nil {
		t.Fatal("expected error writing into a missing directory, got nil")
	}
	if strings.Contains(out.String(), "generated") {
		t.Errorf("success line printed despite failure:\n%s", out.String())
	}
}
