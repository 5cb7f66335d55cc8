// Package greeting implements the Python console template's behavior: a
// greeting line, a fixed description, a creation timestamp and an optional
// numbered repetition block.
package greeting
