// Package depsgen writes the deps.json descriptor consumed by the C#/.NET
// console template. The descriptor lists NuGet runtime dependencies per target
// platform plus native libraries; a freshly generated file has every platform
// present with an empty list so the nix build can evaluate it before any
// package has been added to the .csproj.
package depsgen
