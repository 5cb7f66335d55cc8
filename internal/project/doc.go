// Package project inspects a generated polyglot project: which language
// template it came from, which flake output a build variant maps to, which
// toolchain commands lint and test it, and which artifacts clean removes.
package project
