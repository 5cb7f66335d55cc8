// Package nix runs the nix CLI on behalf of glot commands. A Runner wraps one
// nix executable and a project directory; commands inherit the caller's
// stdio so build logs and interactive shells behave as if nix were invoked
// directly.
package nix
