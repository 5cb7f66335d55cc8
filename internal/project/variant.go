package project

import "fmt"

// Variant selects the flake output a build or run targets.
type Variant string

const (
	Debug   Variant = "debug"
	Release Variant = "release"
)

// ParseVariant accepts "debug" or "release". An empty string means Debug.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case "", Debug:
		return Debug, nil
	case Release:
		return Release, nil
	default:
		return "", fmt.Errorf("unknown build variant %q: must be %q or %q", s, Debug, Release)
	}
}

// Target returns the flake installable for the variant.
func (v Variant) Target() string {
	if v == Release {
		return ".#release"
	}
	return ".#dev"
}
