package cli

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

func success(w io.Writer, msg string) {
	fmt.Fprintf(w, "✅ %s\n", msg)
}

func info(w io.Writer, msg string) {
	fmt.Fprintf(w, "ℹ️  %s\n", msg)
}

func warning(w io.Writer, msg string) {
	fmt.Fprintf(w, "⚠️  %s\n", msg)
}

func errorMsg(w io.Writer, msg string) {
	fmt.Fprintf(w, "❌ Error: %s\n", msg)
}

// title upper-cases the first letter of each word ("release" → "Release").
func title(s string) string {
	return titleCaser.String(s)
}
