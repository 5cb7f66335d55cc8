package depsgen

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FileName is the descriptor file written into the project directory.
const FileName = "deps.json"

// Supported runtime identifiers, in the order they appear in deps.json.
const (
	PlatformWinX64   = "win-x64"
	PlatformLinuxX64 = "linux-x64"
	PlatformOSXX64   = "osx-x64"
	PlatformOSXArm64 = "osx-arm64"
)

// Platforms returns the runtime identifiers in file order.
func Platforms() []string {
	return []string{PlatformWinX64, PlatformLinuxX64, PlatformOSXX64, PlatformOSXArm64}
}

// Dependency describes a single NuGet package pinned for a platform.
type Dependency struct {
	Name    string `json:"pname"`
	Version string `json:"version"`
	Hash    string `json:"hash,omitempty"`
}

// Manifest is the root of deps.json. Runtime keeps insertion order so the
// file is stable across runs; Native is keyed by library name.
type Manifest struct {
	Runtime *orderedmap.OrderedMap[string, []Dependency] `json:"runtime"`
	Native  map[string][]Dependency                      `json:"native"`
}

// NewManifest returns the default manifest: every platform present with no
// dependencies and no native libraries.
func NewManifest() *Manifest {
	runtime := orderedmap.New[string, []Dependency]()
	for _, p := range Platforms() {
		runtime.Set(p, []Dependency{})
	}
	return &Manifest{
		Runtime: runtime,
		Native:  map[string][]Dependency{},
	}
}
