package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// Language identifies a project template.
type Language string

const (
	Rust    Language = "rust"
	Go      Language = "go"
	Python  Language = "python"
	CSharp  Language = "csharp"
	Cpp     Language = "cpp"
	Unknown Language = "unknown"
)

// Toolchain lists the commands run inside the dev shell for a language.
type Toolchain struct {
	Lint   []string
	Test   []string
	Update []string // may be nil when the language has no lockfile step
}

var markers = []struct {
	pattern string
	lang    Language
}{
	{"Cargo.toml", Rust},
	{"go.mod", Go},
	{"pyproject.toml", Python},
	{"*.csproj", CSharp},
	{"CMakeLists.txt", Cpp},
}

var toolchains = map[Language]Toolchain{
	Rust: {
		Lint:   []string{"cargo", "clippy", "--", "-D", "warnings"},
		Test:   []string{"cargo", "test"},
		Update: []string{"cargo", "update"},
	},
	Go: {
		Lint:   []string{"go", "vet", "./..."},
		Test:   []string{"go", "test", "./..."},
		Update: []string{"go", "get", "-u", "./..."},
	},
	Python: {
		Lint: []string{"ruff", "check", "."},
		Test: []string{"pytest"},
	},
	CSharp: {
		Lint:   []string{"dotnet", "format", "--verify-no-changes"},
		Test:   []string{"dotnet", "test"},
		Update: []string{"python3", "generate-deps.py"},
	},
	Cpp: {
		Lint: []string{"cmake", "--build", "build", "--target", "lint"},
		Test: []string{"ctest", "--test-dir", "build"},
	},
}

// Detect reports the language of the project in dir from its marker files.
// The first matching marker wins; a directory with none is Unknown.
func Detect(dir string) (Language, error) {
	for _, m := range markers {
		matches, err := filepath.Glob(filepath.Join(dir, m.pattern))
		if err != nil {
			return Unknown, fmt.Errorf("matching %s: %w", m.pattern, err)
		}
		for _, match := range matches {
			if info, err := os.Stat(match); err == nil && !info.IsDir() {
				return m.lang, nil
			}
		}
	}
	return Unknown, nil
}

// ToolchainFor returns the lint and test commands for lang.
func ToolchainFor(lang Language) (Toolchain, error) {
	tc, ok := toolchains[lang]
	if !ok {
		return Toolchain{}, fmt.Errorf("no toolchain known for %s projects", lang)
	}
	return tc, nil
}
